package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
)

type suggestCmd struct {
	txType string
	query  string
	limit  int
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest descriptions from past entries" }
func (*suggestCmd) Usage() string {
	return `dcf suggest [-type cash-in|cash-out] [-q <text>] [-n <limit>]

  Prints recent distinct descriptions of the given type, for autocompletion.
  With -q, suggestions are ranked by closeness to the typed text.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "cash-in", "Transaction type to draw suggestions from.")
	f.StringVar(&c.query, "q", "", "Partially typed description to rank against.")
	f.IntVar(&c.limit, "n", 5, "Maximum number of suggestions.")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := cashflow.ParseType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	suggestions := ledger.Suggestions(t, c.limit)
	if c.query != "" {
		q := strings.ToLower(c.query)
		sort.SliceStable(suggestions, func(i, j int) bool {
			di := levenshtein.ComputeDistance(q, strings.ToLower(suggestions[i]))
			dj := levenshtein.ComputeDistance(q, strings.ToLower(suggestions[j]))
			return di < dj
		})
	}

	for _, suggestion := range suggestions {
		fmt.Println(suggestion)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the six derived cash flow totals" }
func (*summaryCmd) Usage() string {
	return `dcf summary

  Shows cash sales, online sales, total sales, total cash out, net cash flow
  and the closing balance, derived from the full transaction log.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	opening := cashflow.M(ledger.OpeningBalance(), Currency())
	printMarkdown(renderer.SummaryMarkdown(ledger.Summarize(), opening, Currency()))

	return subcommands.ExitSuccess
}

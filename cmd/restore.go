package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
)

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the ledger from a backup file" }
func (*restoreCmd) Usage() string {
	return `dcf restore <file>

  Replaces the whole ledger with the content of a .csv or .json backup file.
  On any error the current ledger is kept untouched.
`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: restore takes exactly one backup file.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	in, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	s, ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	// The backup is applied onto the current ledger; on error nothing is
	// persisted.
	if err := cashflow.Restore(name, in, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring from %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	s.Save(ledger)

	fmt.Printf("Restored %d transactions from %s\n", ledger.Len(), name)
	return subcommands.ExitSuccess
}

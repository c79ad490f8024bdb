package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show or set the opening balance" }
func (*balanceCmd) Usage() string {
	return `dcf balance [<amount>]

  Without an argument, shows the current opening balance. With an argument,
  sets it. A value that does not parse as a number sets the balance to zero.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if f.NArg() == 0 {
		fmt.Printf("Opening balance: %s\n", cashflow.M(ledger.OpeningBalance(), Currency()))
		return subcommands.ExitSuccess
	}

	ledger.SetOpeningBalance(cashflow.ParseBalance(f.Arg(0)))
	s.Save(ledger)

	fmt.Printf("Opening balance set to %s\n", cashflow.M(ledger.OpeningBalance(), Currency()))
	return subcommands.ExitSuccess
}

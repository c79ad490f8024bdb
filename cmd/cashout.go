package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
)

type cashOutCmd struct {
	description string
	amount      string
	date        string
}

func (*cashOutCmd) Name() string     { return "out" }
func (*cashOutCmd) Synopsis() string { return "record money going out" }
func (*cashOutCmd) Usage() string {
	return `dcf out -d <description> [-a <amount>] [-date <date>]

  Records a cash-out entry (an expense, a withdrawal). The description is
  required and the amount must be positive; otherwise nothing is recorded.
`
}

func (c *cashOutCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the entry (required).")
	f.StringVar(&c.amount, "a", "", "Amount paid out (required, positive).")
	f.StringVar(&c.date, "date", "", "Date of the entry. Defaults to today.")
}

func (c *cashOutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -a must be a number, got %q\n", c.amount)
		return subcommands.ExitUsageError
	}

	s, ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	tx := cashflow.NewCashOut(c.date, c.description, amount)
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.Save(ledger)

	fmt.Println(renderer.Transaction(tx, Currency()))
	return subcommands.ExitSuccess
}

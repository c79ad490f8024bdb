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

type cashInCmd struct {
	description string
	category    string
	amount      string
	date        string
}

func (*cashInCmd) Name() string     { return "in" }
func (*cashInCmd) Synopsis() string { return "record money coming in" }
func (*cashInCmd) Usage() string {
	return `dcf in -d <description> [-c cash|online] [-a <amount>] [-date <date>]

  Records a cash-in entry (a sale, a payment received). The description is
  required and the amount must be positive; otherwise nothing is recorded.
`
}

func (c *cashInCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the entry (required).")
	f.StringVar(&c.category, "c", "cash", "Payment channel: cash or online.")
	f.StringVar(&c.amount, "a", "", "Amount received (required, positive).")
	f.StringVar(&c.date, "date", "", "Date of the entry. Defaults to today.")
}

func (c *cashInCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := cashflow.ParseCategory(c.category)
	if err != nil || category == cashflow.CategoryExpense {
		fmt.Fprintf(os.Stderr, "Error: -c must be cash or online, got %q\n", c.category)
		return subcommands.ExitUsageError
	}
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

	tx := cashflow.NewCashIn(c.date, c.description, category, amount)
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.Save(ledger)

	fmt.Println(renderer.Transaction(tx, Currency()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/etnz/cashflow"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the ledger to a backup file" }
func (*exportCmd) Usage() string {
	return `dcf export [-format csv|json] [-o <file>]

  Writes the full ledger to a backup file. The CSV format is a readable
  report; the JSON format is an exact copy that restores bit for bit.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Backup format: csv or json.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to cash-flow-<date>.<ext> in the current directory.")
}

// defaultBackupName returns the conventional backup file name for today.
func defaultBackupName(ext string) string {
	return fmt.Sprintf("cash-flow-%s.%s", time.Now().Format("2006-01-02"), ext)
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.format != "csv" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: -format must be csv or json, got %q\n", c.format)
		return subcommands.ExitUsageError
	}

	s, ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	name := c.output
	if name == "" {
		name = defaultBackupName(c.format)
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	switch c.format {
	case "csv":
		err = cashflow.EncodeCSV(out, ledger, Currency(), cashflow.Today())
	case "json":
		err = cashflow.EncodeJSON(out, ledger, "")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported %d transactions to %s\n", ledger.Len(), name)
	return subcommands.ExitSuccess
}

package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all transactions and reset the balance" }
func (*clearCmd) Usage() string {
	return `dcf clear [-f]

  Deletes the whole transaction log and resets the opening balance to zero.
  Asks for confirmation unless -f is given.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Clear without asking for confirmation.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Print("This deletes all transactions and the opening balance. Continue? [y/N]: ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()
	s.Clear()

	fmt.Println("Ledger cleared.")
	return subcommands.ExitSuccess
}

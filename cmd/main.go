package cmd

import "github.com/google/subcommands"

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),

	&balanceCmd{},
	&cashInCmd{},
	&cashOutCmd{},
	&txCmd{},
	&summaryCmd{},
	&exportCmd{},
	&restoreCmd{},
	&clearCmd{},
	&suggestCmd{},
	&topicCmd{},
}

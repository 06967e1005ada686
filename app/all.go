package app

import (
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var quiet bool

var AppCommands []*commander.Command = []*commander.Command{
	CompileCmd(),
	TraceCmd(),
	InfoCmd(),
	SyllabifyCmd(),
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0],
		Short:       "constructed language compiler",
		Subcommands: AppCommands,
		Flag:        *flag.NewFlagSet("conlang", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.BoolVar(&quiet, "q", false, "Only log warnings and errors")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	log.SetPrefix(cmd.Name() + " ")
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}
	return wrapped
}

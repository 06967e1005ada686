package app

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func Info(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"l"}); err != nil {
		return err
	}
	lang, err := LoadLanguage()
	if err != nil {
		return err
	}
	result, err := lang.Compile(false)
	if result != nil {
		result.Diagnostics.Log()
	}
	if err != nil {
		return err
	}
	if result.Halted {
		return fmt.Errorf("compilation halted at word #%d", result.HaltedAt)
	}
	return lang.WriteInfo(os.Stdout)
}

func InfoCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Info,
		UsageLine: "info <file options>",
		Short:     "prints the words and morphemes of a language",
		Long: `
compiles a language definition and prints its words and morphemes

	$ ./conlang info -l <definition.yaml> [-skiprootless]

`,
		Flag: *flag.NewFlagSet("info", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&langFile, "l", "", "Language definition file")
	cmd.Flag.BoolVar(&skipRootless, "skiprootless", false, "Skip words without a root instead of failing")
	return cmd
}

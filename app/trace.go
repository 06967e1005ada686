package app

import (
	"fmt"
	"os"

	"conlang/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func Trace(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"l"}); err != nil {
		return err
	}
	lang, err := LoadLanguage()
	if err != nil {
		return err
	}
	var diags util.Diagnostics
	for _, w := range lang.Words() {
		surface, renderDiags := w.Render()
		diags = append(diags, renderDiags...)
		fmt.Fprintf(os.Stdout, "%s\t%s\n", surface, w.Trace())
	}
	diags.Log()
	return nil
}

func TraceCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Trace,
		UsageLine: "trace <file options>",
		Short:     "prints every word with its aspect trace",
		Long: `
prints every word of a language definition with its aspect trace

	$ ./conlang trace -l <definition.yaml>

`,
		Flag: *flag.NewFlagSet("trace", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&langFile, "l", "", "Language definition file")
	return cmd
}

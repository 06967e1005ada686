package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"conlang/grammar"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var text string

func Syllabify(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"l", "s"}); err != nil {
		return err
	}
	lang, err := LoadLanguage()
	if err != nil {
		return err
	}
	structure := lang.Structure()
	if structure == nil {
		return grammar.ErrUnboundStructure
	}
	cluster, err := lang.Inventory().Tokenize(text)
	if err != nil {
		return err
	}
	syllables := structure.Syllabify(cluster)
	strs := make([]string, len(syllables))
	for i, syllable := range syllables {
		strs[i] = syllable.String()
	}
	fmt.Fprintln(os.Stdout, strings.Join(strs, "."))

	var errs []error
	for _, syllable := range syllables {
		if err := structure.CheckSyllable(syllable); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func SyllabifyCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Syllabify,
		UsageLine: "syllabify <file options> -s <text>",
		Short:     "splits text into syllables and checks them",
		Long: `
splits a string into syllables using a language's inventory and syllable
structure, and reports every syllable that matches no shape

	$ ./conlang syllabify -l <definition.yaml> -s <text>

`,
		Flag: *flag.NewFlagSet("syllabify", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&langFile, "l", "", "Language definition file")
	cmd.Flag.StringVar(&text, "s", "", "Text to syllabify")
	return cmd
}

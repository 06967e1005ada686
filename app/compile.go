package app

import (
	"fmt"
	"log"

	"conlang/format/lexicon"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func CompileConfigOut() {
	if quiet {
		return
	}
	log.Println("Configuration")
	log.Printf("Definition:\t\t%s", langFile)
	log.Printf("Strict:\t\t%v", strict)
	log.Printf("Rootless words:\t%v", rootPolicy())
	log.Println()
	log.Println("Output")
	if len(outLexicon) > 0 {
		log.Printf("Lexicon (tsv):\t%s", outLexicon)
	}
	if len(outJSON) > 0 {
		log.Printf("Lexicon (json):\t%s", outJSON)
	}
	log.Println()
}

func Compile(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"l"}); err != nil {
		return err
	}
	CompileConfigOut()

	lang, err := LoadLanguage()
	if err != nil {
		return err
	}
	result, err := lang.Compile(strict)
	if result != nil {
		result.Diagnostics.Log()
	}
	if err != nil {
		return err
	}
	if !quiet {
		log.Println("Compiled", len(result.Words), "of", len(lang.Words()), "words using", len(lang.Morphemes()), "morphemes")
	}
	if result.Halted {
		return fmt.Errorf("compilation halted at word #%d", result.HaltedAt)
	}

	lex := lexicon.New(lang, result)
	if len(outLexicon) > 0 {
		if err := lexicon.WriteFile(outLexicon, lex); err != nil {
			return err
		}
		log.Println("Wrote", len(lex.Words), "words to", outLexicon)
	}
	if len(outJSON) > 0 {
		if err := lexicon.WriteJSONFile(outJSON, lex); err != nil {
			return err
		}
		log.Println("Wrote", len(lex.Words), "words to", outJSON)
	}
	return nil
}

func CompileCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Compile,
		UsageLine: "compile <file options> [arguments]",
		Short:     "compiles and validates a language definition",
		Long: `
compiles every word of a language definition, checking roots and phonotactics

	$ ./conlang compile -l <definition.yaml> [-strict] [-skiprootless] [-o <lexicon.tsv>] [-json <lexicon.json>]

`,
		Flag: *flag.NewFlagSet("compile", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&langFile, "l", "", "Language definition file")
	cmd.Flag.BoolVar(&strict, "strict", false, "Fail with a compilation error on phonotactic violations")
	cmd.Flag.BoolVar(&skipRootless, "skiprootless", false, "Skip words without a root instead of failing")
	cmd.Flag.StringVar(&outLexicon, "o", "", "Optional - Output lexicon file (tsv)")
	cmd.Flag.StringVar(&outJSON, "json", "", "Optional - Output lexicon file (json)")
	return cmd
}

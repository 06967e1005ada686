package app

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"conlang/format/langdef"
	"conlang/grammar"

	"github.com/gonuts/commander"
)

var (
	// file names
	langFile   string
	outLexicon string
	outJSON    string

	// compilation options
	strict       bool
	skipRootless bool
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("required flag -%s not set", name)
		}
	}
	return nil
}

func rootPolicy() grammar.RootPolicy {
	if skipRootless {
		return grammar.SkipMissingRoot
	}
	return grammar.AbortOnMissingRoot
}

// LoadLanguage reads the definition named by -l and logs any diagnostics
// raised while building it.
func LoadLanguage() (*grammar.Language, error) {
	if !VerifyExists(langFile) {
		return nil, fmt.Errorf("definition file %s not found", langFile)
	}
	data, err := os.ReadFile(langFile)
	if err != nil {
		return nil, err
	}
	if !quiet {
		log.Printf("Definition MD5:\t%x", md5.Sum(data))
	}
	lang, diags, err := langdef.Read(bytes.NewReader(data), filepath.Dir(langFile))
	if err != nil {
		return nil, fmt.Errorf("failed reading definition %s: %w", langFile, err)
	}
	diags.Log()
	lang.RootPolicy = rootPolicy()
	if !quiet {
		log.Println("Read language", lang.Name, "with", len(lang.Words()), "words and", lang.Inventory().Len(), "phonemes")
	}
	return lang, nil
}

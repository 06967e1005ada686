// Package lexicon writes the words of a compiled language as a
// tab-separated table or as JSON.
package lexicon

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"conlang/grammar"
)

const (
	FIELD_SEPARATOR    = "\t"
	SYLLABLE_SEPARATOR = "."
)

type Entry struct {
	Index     int      `json:"index"`
	Surface   string   `json:"surface"`
	Syllables []string `json:"syllables"`
	Trace     string   `json:"trace"`
}

func (e Entry) String() string {
	fields := []string{
		fmt.Sprintf("%d", e.Index),
		e.Surface,
		strings.Join(e.Syllables, SYLLABLE_SEPARATOR),
		e.Trace,
	}
	return strings.Join(fields, FIELD_SEPARATOR)
}

type MorphemeEntry struct {
	Surface string `json:"surface"`
	Trace   string `json:"trace"`
	Root    bool   `json:"root"`
}

type Lexicon struct {
	Language  string          `json:"language"`
	Shapes    []string        `json:"shapes"`
	Words     []Entry         `json:"words"`
	Morphemes []MorphemeEntry `json:"morphemes"`
}

// New collects the compiled words of result together with the language's
// morpheme set.
func New(lang *grammar.Language, result *grammar.Result) *Lexicon {
	lex := &Lexicon{
		Language:  lang.Name,
		Words:     make([]Entry, len(result.Words)),
		Morphemes: make([]MorphemeEntry, 0, len(lang.Morphemes())),
	}
	if lang.Structure() != nil {
		lex.Shapes = lang.Structure().Shapes()
	}
	for i, w := range result.Words {
		lex.Words[i] = Entry{w.Index, w.Surface, w.Syllables, w.Trace}
	}
	for _, m := range lang.Morphemes() {
		lex.Morphemes = append(lex.Morphemes, MorphemeEntry{m.Surface(), m.Trace(), m.IsRoot()})
	}
	return lex
}

func Write(writer io.Writer, lex *Lexicon) error {
	for _, entry := range lex.Words {
		if _, err := io.WriteString(writer, entry.String()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, lex *Lexicon) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, lex)
}

func WriteJSON(writer io.Writer, lex *Lexicon) error {
	data, err := sonic.ConfigStd.MarshalIndent(lex, "", "  ")
	if err != nil {
		return err
	}
	_, err = writer.Write(append(data, '\n'))
	return err
}

func WriteJSONFile(filename string, lex *Lexicon) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, lex)
}

// Package grammar holds the Language: its inventory, syllable structure
// and words, and the compiler that validates them.
package grammar

import (
	"fmt"
	"io"

	"conlang/grammar/morphology"
	"conlang/phon/phonotactics"
	"conlang/phon/types"
	"conlang/util"
)

// RootPolicy decides what Compile does with a word that has no root.
type RootPolicy int

const (
	// AbortOnMissingRoot stops compilation with a *CompilationError.
	AbortOnMissingRoot RootPolicy = iota
	// SkipMissingRoot records a warning and moves on to the next word.
	SkipMissingRoot
)

func (p RootPolicy) String() string {
	switch p {
	case AbortOnMissingRoot:
		return "abort"
	case SkipMissingRoot:
		return "skip"
	default:
		return fmt.Sprintf("RootPolicy(%d)", int(p))
	}
}

type Language struct {
	Name       string
	RootPolicy RootPolicy

	inventory *types.Inventory
	structure *phonotactics.SyllableStructure
	words     []*morphology.Word
	morphemes []*morphology.Morpheme
}

func New(name string) *Language {
	return &Language{
		Name:      name,
		inventory: types.NewInventory(),
	}
}

func (l *Language) Inventory() *types.Inventory {
	return l.inventory
}

func (l *Language) AddConsonants(ps ...*types.Phoneme) error {
	return l.inventory.AddConsonants(ps...)
}

func (l *Language) AddVowels(ps ...*types.Phoneme) error {
	return l.inventory.AddVowels(ps...)
}

func (l *Language) SetSyllableStructure(s *phonotactics.SyllableStructure) {
	l.structure = s
}

func (l *Language) Structure() *phonotactics.SyllableStructure {
	return l.structure
}

// AddWords appends words to the language. A bare morpheme becomes a
// single-morpheme word; any other unit is a type mismatch and nothing is
// added.
func (l *Language) AddWords(units ...morphology.Unit) (util.Diagnostics, error) {
	var diags util.Diagnostics
	words := make([]*morphology.Word, 0, len(units))
	for _, unit := range units {
		switch u := unit.(type) {
		case *morphology.Word:
			if u != nil {
				words = append(words, u)
				continue
			}
		case *morphology.Morpheme:
			if u != nil {
				w, wordDiags := morphology.NewWord(u)
				diags = append(diags, wordDiags...)
				words = append(words, w)
				continue
			}
		}
		return nil, &morphology.TypeMismatchError{Left: "Language", Right: fmt.Sprintf("%T", unit)}
	}
	l.words = append(l.words, words...)
	return diags, nil
}

// AddMorphemes seeds the language's morpheme set; structurally equal
// morphemes are kept once.
func (l *Language) AddMorphemes(ms ...*morphology.Morpheme) {
	l.mergeMorphemes(ms)
}

func (l *Language) mergeMorphemes(ms []*morphology.Morpheme) {
	for _, m := range ms {
		if _, exists := l.findMorpheme(m); !exists {
			l.morphemes = append(l.morphemes, m)
		}
	}
}

func (l *Language) findMorpheme(m *morphology.Morpheme) (int, bool) {
	for i, cur := range l.morphemes {
		if cur.Equal(m) {
			return i, true
		}
	}
	return 0, false
}

func (l *Language) Words() []*morphology.Word {
	return append([]*morphology.Word(nil), l.words...)
}

func (l *Language) Morphemes() []*morphology.Morpheme {
	return append([]*morphology.Morpheme(nil), l.morphemes...)
}

// WriteInfo prints the language name, its words and its morphemes.
func (l *Language) WriteInfo(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nWords are: %s\nMorphemes are: %s\n",
		l.Name,
		util.JoinStringers(l.words, ", "),
		util.JoinStringers(l.morphemes, ", "))
	return err
}

package types

import (
	"errors"
	"fmt"

	"conlang/util"
)

var ErrDuplicateSymbol = errors.New("duplicate phoneme symbol")

type UnknownSymbolError struct {
	Text   string
	Offset int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("no phoneme matches %q at offset %d", e.Text[e.Offset:], e.Offset)
}

// Inventory holds a language's consonants and vowels. Clusters built by
// Tokenize reference the inventory's own phonemes.
type Inventory struct {
	consonants []*Phoneme
	vowels     []*Phoneme
	symbols    *util.EnumSet
	phonemes   []*Phoneme
	maxSymLen  int
}

func NewInventory() *Inventory {
	return &Inventory{symbols: util.NewEnumSet(32)}
}

func (inv *Inventory) add(kind Kind, ps []*Phoneme) error {
	for _, p := range ps {
		if p.Kind != kind {
			return fmt.Errorf("phoneme %q is a %v, not a %v", p.Symbol, p.Kind, kind)
		}
		if p.Symbol == "" {
			return errors.New("phoneme with empty symbol")
		}
		if _, added := inv.symbols.Add(p.Symbol); !added {
			return fmt.Errorf("%w: %q", ErrDuplicateSymbol, p.Symbol)
		}
		inv.phonemes = append(inv.phonemes, p)
		inv.maxSymLen = util.Max(inv.maxSymLen, len(p.Symbol))
		if kind == Consonant {
			inv.consonants = append(inv.consonants, p)
		} else {
			inv.vowels = append(inv.vowels, p)
		}
	}
	return nil
}

func (inv *Inventory) AddConsonants(ps ...*Phoneme) error {
	return inv.add(Consonant, ps)
}

func (inv *Inventory) AddVowels(ps ...*Phoneme) error {
	return inv.add(Vowel, ps)
}

func (inv *Inventory) Consonants() []*Phoneme {
	return append([]*Phoneme(nil), inv.consonants...)
}

func (inv *Inventory) Vowels() []*Phoneme {
	return append([]*Phoneme(nil), inv.vowels...)
}

func (inv *Inventory) Len() int {
	return len(inv.phonemes)
}

func (inv *Inventory) Lookup(symbol string) (*Phoneme, bool) {
	i, exists := inv.symbols.IndexOf(symbol)
	if !exists {
		return nil, false
	}
	return inv.phonemes[i], true
}

// Tokenize segments text into inventory phonemes, preferring the longest
// symbol at each position.
func (inv *Inventory) Tokenize(text string) (Cluster, error) {
	retval := make(Cluster, 0, len(text))
	for i := 0; i < len(text); {
		var found *Phoneme
		for l := util.Min(inv.maxSymLen, len(text)-i); l > 0; l-- {
			if p, exists := inv.Lookup(text[i : i+l]); exists {
				found = p
				break
			}
		}
		if found == nil {
			return nil, &UnknownSymbolError{text, i}
		}
		retval = append(retval, found)
		i += len(found.Symbol)
	}
	return retval, nil
}

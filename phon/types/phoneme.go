package types

import (
	"fmt"
	"strings"
)

type Kind int

const (
	Consonant Kind = iota
	Vowel
)

func (k Kind) String() string {
	switch k {
	case Consonant:
		return "C"
	case Vowel:
		return "V"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Category is the phonotactic class of a sound unit: its kind and an
// optional sub-category such as "nasal".
type Category struct {
	Kind  Kind
	Class string
}

func (c Category) String() string {
	if c.Class == "" {
		return c.Kind.String()
	}
	return fmt.Sprintf("%v{%s}", c.Kind, c.Class)
}

type Categories []Category

func (cs Categories) String() string {
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = c.String()
	}
	return strings.Join(strs, "")
}

type Phoneme struct {
	Symbol string
	Kind   Kind
	Class  string
}

func NewConsonant(symbol string, class ...string) *Phoneme {
	return &Phoneme{symbol, Consonant, strings.Join(class, "")}
}

func NewVowel(symbol string, class ...string) *Phoneme {
	return &Phoneme{symbol, Vowel, strings.Join(class, "")}
}

func (p *Phoneme) Category() Category {
	return Category{p.Kind, p.Class}
}

func (p *Phoneme) String() string {
	return p.Symbol
}

func (p *Phoneme) Equal(other *Phoneme) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Symbol == other.Symbol && p.Kind == other.Kind && p.Class == other.Class
}

// Cluster is an ordered sequence of inventory phonemes. Phonemes are
// referenced, never copied.
type Cluster []*Phoneme

func (c Cluster) String() string {
	var b strings.Builder
	for _, p := range c {
		b.WriteString(p.Symbol)
	}
	return b.String()
}

func (c Cluster) Categories() Categories {
	retval := make(Categories, len(c))
	for i, p := range c {
		retval[i] = p.Category()
	}
	return retval
}

func (c Cluster) Equal(other Cluster) bool {
	if len(c) != len(other) {
		return false
	}
	for i, p := range c {
		if !p.Equal(other[i]) {
			return false
		}
	}
	return true
}

// Concat returns a new cluster holding c followed by each of others.
func (c Cluster) Concat(others ...Cluster) Cluster {
	size := len(c)
	for _, o := range others {
		size += len(o)
	}
	retval := make(Cluster, 0, size)
	retval = append(retval, c...)
	for _, o := range others {
		retval = append(retval, o...)
	}
	return retval
}

package morphology

import (
	"fmt"
	"strings"

	"conlang/phon/types"
	"conlang/util"
)

// Unit is anything that can take part in a combination: a *Morpheme, a
// *Word or a Sentence.
type Unit interface {
	fmt.Stringer
	Trace() string
}

type Morpheme struct {
	cluster types.Cluster
	aspects []Aspect
}

var _ Unit = &Morpheme{}
var _ util.Equaler = &Morpheme{}

func NewMorpheme(cluster types.Cluster, aspects ...Aspect) (*Morpheme, util.Diagnostics) {
	m := &Morpheme{
		cluster: append(types.Cluster(nil), cluster...),
		aspects: append([]Aspect(nil), aspects...),
	}
	var diags util.Diagnostics
	if len(aspects) == 0 {
		diags = append(diags, util.Warnf(m.Surface(), "no aspects assigned to morpheme"))
	}
	return m, diags
}

// Cluster returns a copy of the morpheme's phoneme sequence.
func (m *Morpheme) Cluster() types.Cluster {
	return append(types.Cluster(nil), m.cluster...)
}

func (m *Morpheme) Aspects() []Aspect {
	return append([]Aspect(nil), m.aspects...)
}

func (m *Morpheme) Surface() string {
	return m.cluster.String()
}

func (m *Morpheme) String() string {
	return m.Surface()
}

func (m *Morpheme) IsRoot() bool {
	for _, a := range m.aspects {
		if a.IsRoot() {
			return true
		}
	}
	return false
}

// Trace joins the short docs of the morpheme's aspects with '+'.
func (m *Morpheme) Trace() string {
	docs := make([]string, len(m.aspects))
	for i, a := range m.aspects {
		docs[i] = a.ShortDoc
	}
	return strings.Join(docs, "+")
}

func hasAspect(aspects []Aspect, a Aspect) bool {
	for _, cur := range aspects {
		if cur == a {
			return true
		}
	}
	return false
}

// Equal compares clusters phoneme by phoneme and aspects as sets.
func (m *Morpheme) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Morpheme)
	if !ok || m == nil || other == nil {
		return ok && m == other
	}
	if m == other {
		return true
	}
	if !m.cluster.Equal(other.cluster) {
		return false
	}
	for _, a := range m.aspects {
		if !hasAspect(other.aspects, a) {
			return false
		}
	}
	for _, a := range other.aspects {
		if !hasAspect(m.aspects, a) {
			return false
		}
	}
	return true
}

// With returns a new word made of m followed by other.
func (m *Morpheme) With(other *Morpheme) (*Word, util.Diagnostics) {
	return NewWord(m, other)
}

// Prepend inserts m at the start of w and returns w. A nil w yields a new
// word holding only m; a nil m leaves w unchanged.
func (m *Morpheme) Prepend(w *Word) *Word {
	if w == nil {
		w, _ = NewWord(m)
		return w
	}
	if m == nil {
		return w
	}
	w.morphemes = append(w.morphemes, nil)
	copy(w.morphemes[1:], w.morphemes)
	w.morphemes[0] = m
	w.invalidate()
	return w
}

package morphology

import (
	"errors"
	"fmt"
	"strings"

	"conlang/phon/types"
	"conlang/util"
)

// Word is an ordered sequence of morphemes. Morphemes may be shared
// between words; the sequence itself belongs to a single word.
type Word struct {
	morphemes []*Morpheme
	compiled  string
	valid     bool
}

var _ Unit = &Word{}

// NewWord never fails; every morpheme without a root aspect yields a
// warning. Nil morphemes are dropped with a warning.
func NewWord(morphemes ...*Morpheme) (*Word, util.Diagnostics) {
	w := &Word{morphemes: make([]*Morpheme, 0, len(morphemes))}
	var diags util.Diagnostics
	for i, m := range morphemes {
		if m == nil {
			diags = append(diags, util.Warnf(fmt.Sprintf("#%d", i), "nil morpheme dropped from word"))
			continue
		}
		w.morphemes = append(w.morphemes, m)
	}
	for _, m := range w.morphemes {
		if !m.IsRoot() {
			diags = append(diags, util.Warnf(w.raw(), "morpheme %q is not a root, consider adding one", m.Surface()))
		}
	}
	return w, diags
}

func (w *Word) Len() int {
	return len(w.morphemes)
}

func (w *Word) Morphemes() []*Morpheme {
	return append([]*Morpheme(nil), w.morphemes...)
}

func (w *Word) invalidate() {
	w.compiled = ""
	w.valid = false
}

func (w *Word) raw() string {
	var b strings.Builder
	for _, m := range w.morphemes {
		b.WriteString(m.Surface())
	}
	return b.String()
}

func (w *Word) hasRoot() bool {
	for _, m := range w.morphemes {
		if m.IsRoot() {
			return true
		}
	}
	return false
}

// Compile fails with *NoRootError unless some morpheme is a root, and
// otherwise returns the concatenated surface forms.
func (w *Word) Compile() (string, error) {
	if !w.hasRoot() {
		return "", &NoRootError{w.raw()}
	}
	w.compiled = w.raw()
	w.valid = true
	return w.compiled, nil
}

// Render returns the compiled surface, falling back to the raw
// concatenation with a warning when the word has no root.
func (w *Word) Render() (string, util.Diagnostics) {
	if w.valid {
		return w.compiled, nil
	}
	s, err := w.Compile()
	if errors.Is(err, ErrNoRoot) {
		raw := w.raw()
		return raw, util.Diagnostics{util.Warnf(raw, "word still has no root, rendering it uncompiled")}
	}
	return s, nil
}

func (w *Word) String() string {
	s, _ := w.Render()
	return s
}

func (w *Word) Trace() string {
	traces := make([]string, len(w.morphemes))
	for i, m := range w.morphemes {
		traces[i] = m.Trace()
	}
	return strings.Join(traces, "+")
}

// Cluster concatenates the phoneme clusters of all morphemes.
func (w *Word) Cluster() types.Cluster {
	clusters := make([]types.Cluster, len(w.morphemes))
	for i, m := range w.morphemes {
		clusters[i] = m.Cluster()
	}
	return types.Cluster(nil).Concat(clusters...)
}

// Append adds m to the end of w in place and returns w. A nil m is
// ignored.
func (w *Word) Append(m *Morpheme) *Word {
	if m == nil {
		return w
	}
	w.morphemes = append(w.morphemes, m)
	w.invalidate()
	return w
}

func (w *Word) Join(other *Word) Sentence {
	return NewSentence(w, other)
}

package morphology

import "strings"

// Sentence is an ordered sequence of words. The compiler treats it as
// opaque; it only results from joining two words.
type Sentence []*Word

var _ Unit = Sentence{}

func NewSentence(words ...*Word) Sentence {
	return append(Sentence(nil), words...)
}

func (s Sentence) String() string {
	strs := make([]string, len(s))
	for i, w := range s {
		strs[i] = w.String()
	}
	return strings.Join(strs, " ")
}

func (s Sentence) Trace() string {
	traces := make([]string, len(s))
	for i, w := range s {
		traces[i] = w.Trace()
	}
	return strings.Join(traces, " ")
}

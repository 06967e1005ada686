package grammar

import (
	"errors"
	"fmt"

	"conlang/grammar/morphology"
	"conlang/util"
)

type CompiledWord struct {
	Index     int
	Surface   string
	Trace     string
	Syllables []string
}

// Result is what a compilation produced before it finished or halted.
// HaltedAt is the index of the word that stopped a non-raising
// compilation, or -1.
type Result struct {
	Words       []CompiledWord
	Diagnostics util.Diagnostics
	Halted      bool
	HaltedAt    int
}

// Compile validates every word in order: it compiles the word, merges its
// morphemes into the language's morpheme set, then checks each syllable
// against the bound structure.
//
// On a phonotactic violation, raiseOnError returns a *CompilationError;
// otherwise the violation is reported as an error diagnostic and
// compilation halts at that word with a nil error. Words without a root
// are handled according to RootPolicy.
func (l *Language) Compile(raiseOnError bool) (*Result, error) {
	if l.structure == nil {
		return nil, ErrUnboundStructure
	}
	result := &Result{HaltedAt: -1}
	for i, w := range l.words {
		surface, err := w.Compile()
		if err != nil {
			raw := w.Cluster().String()
			if errors.Is(err, morphology.ErrNoRoot) && l.RootPolicy == SkipMissingRoot {
				result.Diagnostics = append(result.Diagnostics, util.Warnf(raw, "skipping word without a root"))
				continue
			}
			return result, &CompilationError{i, raw, err}
		}
		l.mergeMorphemes(w.Morphemes())
		if surface == "" {
			result.Diagnostics = append(result.Diagnostics, util.Warnf(fmt.Sprintf("#%d", i), "word has an empty surface and no syllables"))
		}

		syllables := l.structure.Syllabify(w.Cluster())
		compiled := CompiledWord{
			Index:     i,
			Surface:   surface,
			Trace:     w.Trace(),
			Syllables: make([]string, len(syllables)),
		}
		for j, syllable := range syllables {
			compiled.Syllables[j] = syllable.String()
			if err := l.structure.CheckSyllable(syllable); err != nil {
				if raiseOnError {
					return result, &CompilationError{i, surface, err}
				}
				result.Diagnostics = append(result.Diagnostics, util.Errorf(surface, "%v in word", err))
				result.Halted = true
				result.HaltedAt = i
				return result, nil
			}
		}
		result.Words = append(result.Words, compiled)
	}
	return result, nil
}

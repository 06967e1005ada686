package grammar

import (
	"errors"
	"fmt"

	"conlang/phon/phonotactics"
)

var ErrUnboundStructure = errors.New("no syllable structure bound to language")

// CompilationError aborts Language.Compile. Err is the word-level cause:
// a *phonotactics.Violation or a *morphology.NoRootError.
type CompilationError struct {
	Index int
	Word  string
	Err   error
}

func (e *CompilationError) Error() string {
	kind := "compilation error"
	if errors.Is(e.Err, phonotactics.ErrViolation) {
		kind = "phonetics compilation error"
	}
	return fmt.Sprintf("%s in word #%d %q: %v", kind, e.Index, e.Word, e.Err)
}

func (e *CompilationError) Unwrap() error { return e.Err }

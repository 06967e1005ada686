package morphology

import (
	"fmt"

	"conlang/util"
)

func unitName(u Unit) string {
	switch v := u.(type) {
	case nil:
		return "nil"
	case *Morpheme:
		if v == nil {
			return "nil Morpheme"
		}
		return "Morpheme"
	case *Word:
		if v == nil {
			return "nil Word"
		}
		return "Word"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("%T", u)
	}
}

// Concat combines two units:
//
//	Morpheme + Morpheme -> new Word of both
//	Morpheme + Word     -> Word with the morpheme prepended (in place)
//	Word + Morpheme     -> Word with the morpheme appended (in place)
//	Word + Word         -> Sentence of both
//
// Anything else fails with *TypeMismatchError.
func Concat(left, right Unit) (Unit, util.Diagnostics, error) {
	mismatch := &TypeMismatchError{unitName(left), unitName(right)}
	switch l := left.(type) {
	case *Morpheme:
		if l == nil {
			return nil, nil, mismatch
		}
		switch r := right.(type) {
		case *Morpheme:
			if r != nil {
				w, diags := l.With(r)
				return w, diags, nil
			}
		case *Word:
			if r != nil {
				return l.Prepend(r), nil, nil
			}
		}
	case *Word:
		if l == nil {
			return nil, nil, mismatch
		}
		switch r := right.(type) {
		case *Morpheme:
			if r != nil {
				return l.Append(r), nil, nil
			}
		case *Word:
			if r != nil {
				return l.Join(r), nil, nil
			}
		}
	}
	return nil, nil, mismatch
}

package morphology

import (
	"errors"
	"fmt"
)

var (
	ErrNoRoot       = errors.New("word has no root")
	ErrTypeMismatch = errors.New("type mismatch")
)

// NoRootError is returned by Word.Compile when none of the word's
// morphemes carries a root aspect.
type NoRootError struct {
	Word string
}

func (e *NoRootError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNoRoot, e.Word)
}

func (e *NoRootError) Unwrap() error { return ErrNoRoot }

// TypeMismatchError is returned when two units cannot be combined.
type TypeMismatchError struct {
	Left, Right string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: cannot combine %s with %s", ErrTypeMismatch, e.Left, e.Right)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

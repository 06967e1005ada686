package phonotactics

import (
	"errors"
	"fmt"

	"conlang/phon/types"
)

var ErrViolation = errors.New("phonotactic violation")

// Violation reports a syllable candidate that matches none of a structure's
// shapes. Syllable is set when the candidate came from a cluster.
type Violation struct {
	Candidate types.Categories
	Syllable  types.Cluster
	Structure *SyllableStructure
}

func (v *Violation) Error() string {
	if v.Syllable != nil {
		return fmt.Sprintf("%v: syllable %q (%v) matches no shape of %v", ErrViolation, v.Syllable.String(), v.Candidate, v.Structure)
	}
	return fmt.Sprintf("%v: %v matches no shape of %v", ErrViolation, v.Candidate, v.Structure)
}

func (v *Violation) Unwrap() error { return ErrViolation }

// Package phonotactics describes the permitted syllable shapes of a
// language and checks sound sequences against them.
package phonotactics

import (
	"strings"

	"conlang/phon/types"
)

type SyllableStructure struct {
	shapes []*Shape
}

func NewSyllableStructure(patterns ...string) (*SyllableStructure, error) {
	s := &SyllableStructure{shapes: make([]*Shape, 0, len(patterns))}
	seen := make(map[string]bool, len(patterns))
	for _, pattern := range patterns {
		if seen[pattern] {
			continue
		}
		seen[pattern] = true
		shape, err := ParseShape(pattern)
		if err != nil {
			return nil, err
		}
		s.shapes = append(s.shapes, shape)
	}
	return s, nil
}

func MustSyllableStructure(patterns ...string) *SyllableStructure {
	s, err := NewSyllableStructure(patterns...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *SyllableStructure) Shapes() []string {
	retval := make([]string, len(s.shapes))
	for i, shape := range s.shapes {
		retval[i] = shape.Pattern
	}
	return retval
}

func (s *SyllableStructure) String() string {
	return "{" + strings.Join(s.Shapes(), ", ") + "}"
}

func (s *SyllableStructure) Match(candidate types.Categories) bool {
	for _, shape := range s.shapes {
		for _, variant := range shape.Variants {
			if variant.Matches(candidate) {
				return true
			}
		}
	}
	return false
}

// Check returns a *Violation unless candidate matches some shape exactly.
func (s *SyllableStructure) Check(candidate types.Categories) error {
	if s.Match(candidate) {
		return nil
	}
	return &Violation{Candidate: candidate, Structure: s}
}

// CheckCluster syllabifies cluster and checks every syllable in order,
// returning the first violation.
func (s *SyllableStructure) CheckCluster(cluster types.Cluster) error {
	for _, syllable := range s.Syllabify(cluster) {
		if err := s.CheckSyllable(syllable); err != nil {
			return err
		}
	}
	return nil
}

func (s *SyllableStructure) CheckSyllable(syllable types.Cluster) error {
	cats := syllable.Categories()
	if s.Match(cats) {
		return nil
	}
	return &Violation{Candidate: cats, Syllable: syllable, Structure: s}
}

// onsetAllowed reports whether some shape variant opens with consonant
// slots matching onset, followed by a vowel slot matching nucleus.
func (s *SyllableStructure) onsetAllowed(onset types.Categories, nucleus types.Category) bool {
	for _, shape := range s.shapes {
	variants:
		for _, variant := range shape.Variants {
			if len(variant) <= len(onset) {
				continue
			}
			for i, cat := range onset {
				if variant[i].Kind != types.Consonant || !variant[i].Matches(cat) {
					continue variants
				}
			}
			if variant[len(onset)].Kind == types.Vowel && variant[len(onset)].Matches(nucleus) {
				return true
			}
		}
	}
	return false
}

// Syllabify splits cluster into syllable candidates. Every vowel is a
// nucleus; leading consonants join the first syllable and trailing ones the
// last. Consonants between two nuclei give the later syllable the longest
// onset some shape permits, the rest close the earlier syllable. A cluster
// without vowels is a single candidate.
func (s *SyllableStructure) Syllabify(cluster types.Cluster) []types.Cluster {
	if len(cluster) == 0 {
		return nil
	}
	cats := cluster.Categories()
	var nuclei []int
	for i, cat := range cats {
		if cat.Kind == types.Vowel {
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) == 0 {
		return []types.Cluster{cluster[:len(cluster):len(cluster)]}
	}

	starts := make([]int, len(nuclei))
	for n := 1; n < len(nuclei); n++ {
		prev, cur := nuclei[n-1], nuclei[n]
		onset := 0
		for j := cur - prev - 1; j > 0; j-- {
			if s.onsetAllowed(cats[cur-j:cur], cats[cur]) {
				onset = j
				break
			}
		}
		starts[n] = cur - onset
	}

	retval := make([]types.Cluster, len(starts))
	for n, start := range starts {
		end := len(cluster)
		if n+1 < len(starts) {
			end = starts[n+1]
		}
		retval[n] = cluster[start:end:end]
	}
	return retval
}

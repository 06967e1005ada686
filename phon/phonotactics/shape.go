package phonotactics

import (
	"fmt"
	"strings"

	"conlang/phon/types"
)

// Slot is one position of a syllable shape. An empty Class matches any
// phoneme of the slot's kind.
type Slot struct {
	Kind  types.Kind
	Class string
}

func (s Slot) Matches(c types.Category) bool {
	return s.Kind == c.Kind && (s.Class == "" || s.Class == c.Class)
}

func (s Slot) String() string {
	return types.Category{Kind: s.Kind, Class: s.Class}.String()
}

type Slots []Slot

func (ss Slots) String() string {
	strs := make([]string, len(ss))
	for i, s := range ss {
		strs[i] = s.String()
	}
	return strings.Join(strs, "")
}

// Matches reports whether candidate has exactly the slots' length and every
// category matches the slot at the same position.
func (ss Slots) Matches(candidate types.Categories) bool {
	if len(ss) != len(candidate) {
		return false
	}
	for i, s := range ss {
		if !s.Matches(candidate[i]) {
			return false
		}
	}
	return true
}

// Shape is a parsed syllable pattern such as "(C)V(C{nasal})". Optional
// groups are expanded into the concrete slot sequences in Variants.
type Shape struct {
	Pattern  string
	Variants []Slots
}

func (s *Shape) String() string {
	return s.Pattern
}

type PatternError struct {
	Pattern string
	Offset  int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("bad syllable pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Msg)
}

type element struct {
	slot  Slot
	group []element
}

type patternParser struct {
	pattern string
	pos     int
}

func (p *patternParser) errorf(format string, args ...interface{}) error {
	return &PatternError{p.pattern, p.pos, fmt.Sprintf(format, args...)}
}

func (p *patternParser) skipSpace() {
	for p.pos < len(p.pattern) && (p.pattern[p.pos] == ' ' || p.pattern[p.pos] == '\t') {
		p.pos++
	}
}

func (p *patternParser) parseSeq(nested bool) ([]element, error) {
	var elems []element
	for {
		p.skipSpace()
		if p.pos >= len(p.pattern) {
			if nested {
				return nil, p.errorf("unclosed '('")
			}
			return elems, nil
		}
		switch c := p.pattern[p.pos]; c {
		case ')':
			if !nested {
				return nil, p.errorf("unexpected ')'")
			}
			p.pos++
			if len(elems) == 0 {
				return nil, p.errorf("empty optional group")
			}
			return elems, nil
		case '(':
			p.pos++
			group, err := p.parseSeq(true)
			if err != nil {
				return nil, err
			}
			elems = append(elems, element{group: group})
		case 'C', 'V':
			p.pos++
			slot := Slot{Kind: types.Consonant}
			if c == 'V' {
				slot.Kind = types.Vowel
			}
			if p.pos < len(p.pattern) && p.pattern[p.pos] == '{' {
				end := strings.IndexByte(p.pattern[p.pos:], '}')
				if end < 0 {
					return nil, p.errorf("unclosed '{'")
				}
				slot.Class = strings.TrimSpace(p.pattern[p.pos+1 : p.pos+end])
				if slot.Class == "" {
					return nil, p.errorf("empty class")
				}
				p.pos += end + 1
			}
			elems = append(elems, element{slot: slot})
		default:
			return nil, p.errorf("unexpected %q, expected C, V or '('", c)
		}
	}
}

func expand(elems []element) []Slots {
	retval := []Slots{{}}
	for _, el := range elems {
		if el.group == nil {
			for i := range retval {
				retval[i] = append(retval[i][:len(retval[i]):len(retval[i])], el.slot)
			}
			continue
		}
		sub := expand(el.group)
		next := make([]Slots, 0, len(retval)*(len(sub)+1))
		next = append(next, retval...)
		for _, prefix := range retval {
			for _, s := range sub {
				variant := make(Slots, 0, len(prefix)+len(s))
				variant = append(variant, prefix...)
				variant = append(variant, s...)
				next = append(next, variant)
			}
		}
		retval = next
	}
	return retval
}

func ParseShape(pattern string) (*Shape, error) {
	p := &patternParser{pattern: pattern}
	elems, err := p.parseSeq(false)
	if err != nil {
		return nil, err
	}
	shape := &Shape{Pattern: pattern}
	seen := make(map[string]bool)
	for _, variant := range expand(elems) {
		key := variant.String()
		if len(variant) == 0 || seen[key] {
			continue
		}
		seen[key] = true
		shape.Variants = append(shape.Variants, variant)
	}
	if len(shape.Variants) == 0 {
		return nil, &PatternError{pattern, 0, "pattern matches only the empty syllable"}
	}
	return shape, nil
}

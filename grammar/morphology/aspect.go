package morphology

import (
	"fmt"
	"strings"
)

type AspectKind int

const (
	RootKind AspectKind = iota
	AffixKind
	PartOfSpeechKind
	OtherKind
)

var aspectKindNames = map[AspectKind]string{
	RootKind:         "root",
	AffixKind:        "affix",
	PartOfSpeechKind: "pos",
	OtherKind:        "other",
}

func (k AspectKind) String() string {
	if name, exists := aspectKindNames[k]; exists {
		return name
	}
	return fmt.Sprintf("AspectKind(%d)", int(k))
}

func ParseAspectKind(s string) (AspectKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "root":
		return RootKind, nil
	case "affix":
		return AffixKind, nil
	case "pos", "part of speech":
		return PartOfSpeechKind, nil
	case "other", "":
		return OtherKind, nil
	}
	return OtherKind, fmt.Errorf("unknown aspect kind %q", s)
}

// Aspect tags a morpheme with a grammatical role. ShortDoc is the label
// used in traces. Subkind refines AffixKind (e.g. "suffix", "plural").
type Aspect struct {
	Kind     AspectKind
	Subkind  string
	Label    string
	ShortDoc string
}

func Root(label, shortDoc string) Aspect {
	return Aspect{Kind: RootKind, Label: label, ShortDoc: shortDoc}
}

func Affix(subkind, label, shortDoc string) Aspect {
	return Aspect{Kind: AffixKind, Subkind: subkind, Label: label, ShortDoc: shortDoc}
}

func PartOfSpeech(name, shortDoc string) Aspect {
	return Aspect{Kind: PartOfSpeechKind, Label: name, ShortDoc: shortDoc}
}

func (a Aspect) IsRoot() bool {
	return a.Kind == RootKind
}

func (a Aspect) String() string {
	if a.Subkind != "" {
		return fmt.Sprintf("%v:%s(%s)", a.Kind, a.Subkind, a.Label)
	}
	return fmt.Sprintf("%v(%s)", a.Kind, a.Label)
}

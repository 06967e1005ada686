package langdef

import (
	"reflect"
	"strings"
	"testing"

	"conlang/grammar/morphology"
)

func TestReadFile(t *testing.T) {
	lang, diags, err := ReadFile("testdata/toki.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if lang.Name != "Toki" {
		t.Error("Wrong name", lang.Name)
	}
	if len(lang.Inventory().Consonants()) != 6 || len(lang.Inventory().Vowels()) != 3 {
		t.Error("Wrong inventory", lang.Inventory().Consonants(), lang.Inventory().Vowels())
	}
	if shapes := lang.Structure().Shapes(); !reflect.DeepEqual(shapes, []string{"(C)V", "(C)VC{nasal}"}) {
		t.Error("Wrong shapes", shapes)
	}
	// one warning per word containing the rootless plural suffix
	if len(diags) != 2 {
		t.Error("Expected 2 diagnostics, got", diags)
	}

	result, err := lang.Compile(true)
	if err != nil {
		t.Fatal(err)
	}
	var surfaces, traces []string
	for _, w := range result.Words {
		surfaces = append(surfaces, w.Surface)
		traces = append(traces, w.Trace)
	}
	if !reflect.DeepEqual(surfaces, []string{"toki", "tokin", "shan"}) {
		t.Error("Wrong surfaces", surfaces)
	}
	if !reflect.DeepEqual(traces, []string{"R+N", "R+N+PL", "R+PL"}) {
		t.Error("Wrong traces", traces)
	}
	if !reflect.DeepEqual(result.Words[1].Syllables, []string{"to", "kin"}) {
		t.Error("Wrong syllables", result.Words[1].Syllables)
	}
	if len(lang.Morphemes()) != 3 {
		t.Error("Expected 3 morphemes, got", lang.Morphemes())
	}
	aspects := lang.Morphemes()[1].Aspects()
	if len(aspects) != 1 || aspects[0].Label != "plural" || aspects[0].Kind != morphology.AffixKind {
		t.Error("Wrong plural aspect", aspects)
	}
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"unknown field":    "name: X\nphonemes: []\n",
		"unknown aspect":   "name: X\nvowels: [{symbol: a}]\nmorphemes:\n  a: {form: a, aspects: [root]}\n",
		"unknown morpheme": "name: X\nwords: [[a]]\n",
		"unknown symbol":   "name: X\nvowels: [{symbol: a}]\nmorphemes:\n  a: {form: ab}\n",
		"bad kind":         "name: X\naspects:\n  r: {kind: stem}\n",
		"bad pattern":      "name: X\nsyllables: [CX]\n",
		"duplicate symbol": "name: X\nvowels: [{symbol: a}, {symbol: a}]\n",
		"empty":            "",
	}
	for name, input := range tests {
		if _, _, err := Read(strings.NewReader(input), ""); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNoSyllables(t *testing.T) {
	lang, _, err := Read(strings.NewReader("name: X\nvowels: [{symbol: a}]\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	if lang.Structure() != nil {
		t.Error("Structure should be unbound when no syllables are given")
	}
}

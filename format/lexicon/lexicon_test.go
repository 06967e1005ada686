package lexicon

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/bytedance/sonic"

	"conlang/grammar"
	"conlang/grammar/morphology"
	"conlang/phon/phonotactics"
	"conlang/phon/types"
)

func testLexicon(t *testing.T) *Lexicon {
	lang := grammar.New("Test")
	lang.AddConsonants(types.NewConsonant("b"), types.NewConsonant("k"))
	lang.AddVowels(types.NewVowel("a"), types.NewVowel("i"))
	lang.SetSyllableStructure(phonotactics.MustSyllableStructure("CV"))
	ba, _ := lang.Inventory().Tokenize("ba")
	ki, _ := lang.Inventory().Tokenize("ki")
	root, _ := morphology.NewMorpheme(ba, morphology.Root("root", "R"))
	suffix, _ := morphology.NewMorpheme(ki, morphology.Affix("suffix", "plural", "PL"))
	w, _ := morphology.NewWord(root, suffix)
	if _, err := lang.AddWords(root, w); err != nil {
		t.Fatal(err)
	}
	result, err := lang.Compile(true)
	if err != nil {
		t.Fatal(err)
	}
	return New(lang, result)
}

func TestWrite(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := Write(buf, testLexicon(t)); err != nil {
		t.Fatal(err)
	}
	expected := "0\tba\tba\tR\n1\tbaki\tba.ki\tR+PL\n"
	if buf.String() != expected {
		t.Errorf("Got %q expected %q", buf.String(), expected)
	}
}

func TestWriteJSON(t *testing.T) {
	lex := testLexicon(t)
	buf := new(bytes.Buffer)
	if err := WriteJSON(buf, lex); err != nil {
		t.Fatal(err)
	}
	decoded := new(Lexicon)
	if err := sonic.Unmarshal(buf.Bytes(), decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, lex) {
		t.Errorf("Got %+v expected %+v", decoded, lex)
	}
	expectedMorphs := []MorphemeEntry{{"ba", "R", true}, {"ki", "PL", false}}
	if !reflect.DeepEqual(decoded.Morphemes, expectedMorphs) {
		t.Error("Wrong morphemes", decoded.Morphemes)
	}
}

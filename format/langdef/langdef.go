// Package langdef reads language definition files (YAML) and builds a
// grammar.Language from them.
package langdef

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"conlang/grammar"
	"conlang/grammar/morphology"
	"conlang/phon/phonotactics"
	"conlang/phon/types"
	"conlang/util"
	"conlang/util/conf"
)

type PhonemeDef struct {
	Symbol string `yaml:"symbol"`
	Class  string `yaml:"class"`
}

type AspectDef struct {
	Kind    string `yaml:"kind"`
	Subkind string `yaml:"subkind"`
	Label   string `yaml:"label"`
	Doc     string `yaml:"doc"`
}

type MorphemeDef struct {
	Form    string   `yaml:"form"`
	Aspects []string `yaml:"aspects"`
}

type Definition struct {
	Name         string                 `yaml:"name"`
	Consonants   []PhonemeDef           `yaml:"consonants"`
	Vowels       []PhonemeDef           `yaml:"vowels"`
	Syllables    []string               `yaml:"syllables"`
	SyllableFile string                 `yaml:"syllable file"`
	Aspects      map[string]AspectDef   `yaml:"aspects"`
	Morphemes    map[string]MorphemeDef `yaml:"morphemes"`
	Words        [][]string             `yaml:"words"`
}

func Decode(r io.Reader) (*Definition, error) {
	def := new(Definition)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty language definition")
		}
		return nil, err
	}
	return def, nil
}

// Read decodes a definition and builds its language. A relative syllable
// file is resolved against baseDir.
func Read(r io.Reader, baseDir string) (*grammar.Language, util.Diagnostics, error) {
	def, err := Decode(r)
	if err != nil {
		return nil, nil, err
	}
	return Build(def, baseDir)
}

func ReadFile(filename string) (*grammar.Language, util.Diagnostics, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	return Read(file, filepath.Dir(filename))
}

func phonemes(defs []PhonemeDef, ctor func(string, ...string) *types.Phoneme) []*types.Phoneme {
	retval := make([]*types.Phoneme, len(defs))
	for i, def := range defs {
		retval[i] = ctor(def.Symbol, def.Class)
	}
	return retval
}

func (def *Definition) shapes(baseDir string) ([]string, error) {
	shapes := append([]string(nil), def.Syllables...)
	if def.SyllableFile != "" {
		filename := def.SyllableFile
		if !filepath.IsAbs(filename) {
			filename = filepath.Join(baseDir, filename)
		}
		shapeConf, err := conf.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading syllable file: %w", err)
		}
		shapes = append(shapes, shapeConf.Values...)
	}
	return shapes, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Build(def *Definition, baseDir string) (*grammar.Language, util.Diagnostics, error) {
	var diags util.Diagnostics
	lang := grammar.New(def.Name)
	if err := lang.AddConsonants(phonemes(def.Consonants, types.NewConsonant)...); err != nil {
		return nil, nil, err
	}
	if err := lang.AddVowels(phonemes(def.Vowels, types.NewVowel)...); err != nil {
		return nil, nil, err
	}

	shapes, err := def.shapes(baseDir)
	if err != nil {
		return nil, nil, err
	}
	if len(shapes) > 0 {
		structure, err := phonotactics.NewSyllableStructure(shapes...)
		if err != nil {
			return nil, nil, err
		}
		lang.SetSyllableStructure(structure)
	}

	aspects := make(map[string]morphology.Aspect, len(def.Aspects))
	for _, key := range sortedKeys(def.Aspects) {
		aspectDef := def.Aspects[key]
		kind, err := morphology.ParseAspectKind(aspectDef.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("aspect %q: %w", key, err)
		}
		label := aspectDef.Label
		if label == "" {
			label = key
		}
		aspects[key] = morphology.Aspect{Kind: kind, Subkind: aspectDef.Subkind, Label: label, ShortDoc: aspectDef.Doc}
	}

	morphemes := make(map[string]*morphology.Morpheme, len(def.Morphemes))
	for _, key := range sortedKeys(def.Morphemes) {
		morphDef := def.Morphemes[key]
		cluster, err := lang.Inventory().Tokenize(morphDef.Form)
		if err != nil {
			return nil, nil, fmt.Errorf("morpheme %q: %w", key, err)
		}
		morphAspects := make([]morphology.Aspect, len(morphDef.Aspects))
		for i, name := range morphDef.Aspects {
			aspect, exists := aspects[name]
			if !exists {
				return nil, nil, fmt.Errorf("morpheme %q: unknown aspect %q", key, name)
			}
			morphAspects[i] = aspect
		}
		m, morphDiags := morphology.NewMorpheme(cluster, morphAspects...)
		diags = append(diags, morphDiags...)
		morphemes[key] = m
	}

	for i, entry := range def.Words {
		parts := make([]*morphology.Morpheme, len(entry))
		for j, name := range entry {
			m, exists := morphemes[name]
			if !exists {
				return nil, nil, fmt.Errorf("word #%d: unknown morpheme %q", i, name)
			}
			parts[j] = m
		}
		w, wordDiags := morphology.NewWord(parts...)
		diags = append(diags, wordDiags...)
		if _, err := lang.AddWords(w); err != nil {
			return nil, nil, err
		}
	}
	return lang, diags, nil
}

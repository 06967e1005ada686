package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"conlang/grammar"
	"conlang/phon/phonotactics"

	"github.com/gonuts/commander"
)

// runCommand builds a fresh command (registering its flags resets the
// option variables), points it at definition and then applies opts.
func runCommand(t *testing.T, newCmd func() *commander.Command, definition string, opts func()) error {
	cmd := newCmd()
	langFile = definition
	if opts != nil {
		opts()
	}
	defer func() {
		langFile, outLexicon, outJSON, text = "", "", "", ""
		strict, skipRootless = false, false
	}()
	return cmd.Run(cmd, nil)
}

func runCompile(t *testing.T, definition string, opts func()) error {
	return runCommand(t, CompileCmd, definition, opts)
}

func TestCompileCommand(t *testing.T) {
	dir := t.TempDir()
	tsv, json := filepath.Join(dir, "ba.tsv"), filepath.Join(dir, "ba.json")
	err := runCompile(t, "testdata/ba.yaml", func() {
		outLexicon, outJSON = tsv, json
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(tsv)
	if err != nil {
		t.Fatal(err)
	}
	expected := "0\tba\tba\tR\n1\tbaka\tba.ka\tR+PL\n"
	if string(data) != expected {
		t.Errorf("Got %q expected %q", string(data), expected)
	}
	if _, err := os.Stat(json); err != nil {
		t.Error("JSON lexicon not written", err)
	}
}

func TestCompileCommandHalts(t *testing.T) {
	err := runCompile(t, "testdata/brk.yaml", nil)
	if err == nil {
		t.Fatal("Expected a halted compilation to fail the command")
	}
	var compErr *grammar.CompilationError
	if errors.As(err, &compErr) {
		t.Error("Soft mode should not produce a CompilationError", err)
	}

	err = runCompile(t, "testdata/brk.yaml", func() { strict = true })
	if !errors.As(err, &compErr) || !errors.Is(err, phonotactics.ErrViolation) {
		t.Error("Strict mode should fail with a phonetics CompilationError, got", err)
	}
}

func TestCompileCommandRequiresDefinition(t *testing.T) {
	if err := runCompile(t, "", nil); err == nil {
		t.Error("Expected missing -l to fail")
	}
}

func TestSyllabifyCommand(t *testing.T) {
	err := runCommand(t, SyllabifyCmd, "testdata/brk.yaml", func() { text = "brk" })
	if !errors.Is(err, phonotactics.ErrViolation) {
		t.Error("Expected a violation for brk, got", err)
	}
	if err := runCommand(t, SyllabifyCmd, "testdata/brk.yaml", func() { text = "baba" }); err != nil {
		t.Error("Unexpected error for baba", err)
	}
	if err := runCommand(t, SyllabifyCmd, "testdata/ba.yaml", nil); err == nil {
		t.Error("Expected missing -s to fail")
	}
}

func TestSyllabifyCommandUnboundStructure(t *testing.T) {
	err := runCommand(t, SyllabifyCmd, "testdata/nosyllables.yaml", func() { text = "ba" })
	if !errors.Is(err, grammar.ErrUnboundStructure) {
		t.Error("Expected ErrUnboundStructure, got", err)
	}
}

func TestTraceCommand(t *testing.T) {
	if err := runCommand(t, TraceCmd, "testdata/ba.yaml", nil); err != nil {
		t.Error(err)
	}
}

func TestInfoCommand(t *testing.T) {
	if err := runCommand(t, InfoCmd, "testdata/ba.yaml", nil); err != nil {
		t.Error(err)
	}
	if err := runCommand(t, InfoCmd, "testdata/brk.yaml", nil); err == nil {
		t.Error("Expected a halted compilation to fail the command")
	}
}

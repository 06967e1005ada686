package types

import (
	"errors"
	"testing"
)

func testInventory(t *testing.T) *Inventory {
	inv := NewInventory()
	if err := inv.AddConsonants(NewConsonant("b"), NewConsonant("s"), NewConsonant("sh"), NewConsonant("m", "nasal")); err != nil {
		t.Fatal(err)
	}
	if err := inv.AddVowels(NewVowel("a"), NewVowel("i")); err != nil {
		t.Fatal(err)
	}
	return inv
}

func TestClusterString(t *testing.T) {
	inv := testInventory(t)
	b, _ := inv.Lookup("b")
	a, _ := inv.Lookup("a")
	c := Cluster{b, a}
	if c.String() != "ba" {
		t.Error("Wrong surface", c.String())
	}
	if cats := c.Categories().String(); cats != "CV" {
		t.Error("Wrong categories", cats)
	}
}

func TestClusterEqual(t *testing.T) {
	c1 := Cluster{NewConsonant("b"), NewVowel("a")}
	c2 := Cluster{NewConsonant("b"), NewVowel("a")}
	if !c1.Equal(c2) {
		t.Error("Clusters with equal phonemes should be equal")
	}
	c3 := Cluster{NewVowel("b"), NewVowel("a")}
	if c1.Equal(c3) {
		t.Error("Kind should take part in equality")
	}
	if c1.Equal(c1[:1]) {
		t.Error("Different lengths should not be equal")
	}
}

func TestClusterConcat(t *testing.T) {
	c1 := Cluster{NewConsonant("b")}
	c2 := Cluster{NewVowel("a")}
	joined := c1.Concat(c2, c1)
	if joined.String() != "bab" {
		t.Error("Wrong concat", joined.String())
	}
	joined[0] = NewConsonant("m")
	if c1[0].Symbol != "b" {
		t.Error("Concat must not share backing storage")
	}
}

func TestTokenizeLongestMatch(t *testing.T) {
	inv := testInventory(t)
	c, err := inv.Tokenize("shasma")
	if err != nil {
		t.Fatal(err)
	}
	if len(c) != 5 {
		t.Fatal("Expected 5 phonemes, got", len(c), c)
	}
	if c[0].Symbol != "sh" || c[2].Symbol != "s" {
		t.Error("Longest match not preferred", c)
	}
	if c.Categories().String() != "CVCC{nasal}V" {
		t.Error("Wrong categories", c.Categories())
	}
	sh, _ := inv.Lookup("sh")
	if c[0] != sh {
		t.Error("Tokenize should reference inventory phonemes")
	}
}

func TestTokenizeUnknown(t *testing.T) {
	inv := testInventory(t)
	_, err := inv.Tokenize("bax")
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatal("Expected UnknownSymbolError, got", err)
	}
	if unknown.Offset != 2 {
		t.Error("Wrong offset", unknown.Offset)
	}
}

func TestInventoryDuplicatesAndKinds(t *testing.T) {
	inv := testInventory(t)
	if err := inv.AddVowels(NewVowel("a")); !errors.Is(err, ErrDuplicateSymbol) {
		t.Error("Expected duplicate error, got", err)
	}
	if err := inv.AddVowels(NewConsonant("k")); err == nil {
		t.Error("Expected kind mismatch error")
	}
	if len(inv.Consonants()) != 4 || len(inv.Vowels()) != 2 {
		t.Error("Wrong inventory sizes", len(inv.Consonants()), len(inv.Vowels()))
	}
}

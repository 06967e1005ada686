package util

import (
	"reflect"
	"testing"
)

func TestEnumSet(t *testing.T) {
	e := NewEnumSet(2)
	if i, added := e.Add("a"); i != 0 || !added {
		t.Error("Expected first value at 0, got", i, added)
	}
	e.Add("sh")
	if i, added := e.Add("a"); i != 0 || added {
		t.Error("Re-adding existing value should not add, got", i, added)
	}
	if i, exists := e.IndexOf("sh"); !exists || i != 1 {
		t.Error("Wrong index for sh", i, exists)
	}
	if e.ValueOf(1) != "sh" {
		t.Error("Wrong value at 1", e.ValueOf(1))
	}
	if !reflect.DeepEqual(e.Values(), []string{"a", "sh"}) {
		t.Error("Wrong values", e.Values())
	}
}

func TestFrozenEnumSetPanics(t *testing.T) {
	e := NewEnumSet(1)
	e.Frozen = true
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic adding to frozen set")
		}
	}()
	e.Add("a")
}

func TestDiagnostics(t *testing.T) {
	ds := Diagnostics{Warnf("ba", "no root")}
	if ds.HasErrors() {
		t.Error("Warnings are not errors")
	}
	ds = append(ds, Errorf("brk", "violation"))
	if !ds.HasErrors() {
		t.Error("Expected errors")
	}
	if s := ds[0].String(); s != `WARNING: no root ("ba")` {
		t.Error("Wrong diagnostic string", s)
	}
}

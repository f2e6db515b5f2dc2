package gooey

import "testing"

func TestNamedIDStableAndEqual(t *testing.T) {
	a := NamedID("sidebar")
	b := NamedID("sidebar")
	if a != b {
		t.Errorf("NamedID(%q) not stable: %v != %v", "sidebar", a, b)
	}
}

func TestNamedIDDistinctFromInteger(t *testing.T) {
	name := NamedID("x")
	integer := IntegerID(name.Hash())
	if name == integer {
		t.Error("named ID and integer ID with same numeric hash compared equal")
	}
}

func TestNamedIDDifferentStrings(t *testing.T) {
	a := NamedID("alpha")
	b := NamedID("beta")
	if a == b {
		t.Error("distinct names hashed to equal IDs")
	}
}

func TestFocusHandleDistinctFromInteger(t *testing.T) {
	a := FocusHandleID(42)
	b := IntegerID(42)
	if a == b {
		t.Error("focus-handle ID and integer ID with same payload compared equal")
	}
}

package fixed

import "testing"

func TestBitSetSetClearTest(t *testing.T) {
	b := NewBitSet(70)
	if b.Test(10) {
		t.Fatal("bit 10 should start clear")
	}
	b.Set(10)
	b.Set(65)
	if !b.Test(10) || !b.Test(65) {
		t.Fatal("bits 10 and 65 should be set")
	}
	if b.Test(11) {
		t.Fatal("bit 11 should remain clear")
	}
	b.Clear(10)
	if b.Test(10) {
		t.Fatal("bit 10 should be clear after Clear")
	}
	if b.Count() != 1 {
		t.Fatalf("Count = %d, want 1", b.Count())
	}
}

func TestBitSetReset(t *testing.T) {
	b := NewBitSet(8)
	b.Set(0)
	b.Set(7)
	b.Reset()
	if b.Count() != 0 {
		t.Fatalf("Count after Reset = %d, want 0", b.Count())
	}
}

func TestBitSetOutOfRange(t *testing.T) {
	b := NewBitSet(4)
	b.Set(100)
	if b.Test(100) {
		t.Fatal("out-of-range Set should be a no-op")
	}
}

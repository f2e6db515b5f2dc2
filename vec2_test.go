package gooey

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add = %v, want {4 6}", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, -2}) {
		t.Errorf("Sub = %v, want {-2 -2}", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale = %v, want {2 4}", got)
	}
	if got := a.Negate(); got != (Vec2{-1, -2}) {
		t.Errorf("Negate = %v, want {-1 -2}", got)
	}
}

func TestVec2DotCross(t *testing.T) {
	a := Vec2{1, 0}
	b := Vec2{0, 1}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot = %v, want 0", got)
	}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
}

func TestVec2NormalizeNonZero(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	if math.Abs(float64(n.Length()-1)) > 1e-6 {
		t.Errorf("|length-1| too large: length=%v", n.Length())
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	v := Vec2{0, 0}
	n := v.Normalize()
	if n != (Vec2{1, 0}) {
		t.Errorf("Normalize(zero) = %v, want {1 0}", n)
	}
	if math.IsNaN(float64(n.X)) || math.IsNaN(float64(n.Y)) {
		t.Error("Normalize(zero) produced NaN")
	}
}

func TestVec2Perp(t *testing.T) {
	v := Vec2{1, 0}
	if got := v.Perp(); got != (Vec2{0, 1}) {
		t.Errorf("Perp = %v, want {0 1}", got)
	}
}

func TestIndexSliceLen(t *testing.T) {
	s := IndexSlice{Start: 3, End: 7}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

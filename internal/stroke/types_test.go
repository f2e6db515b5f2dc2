package stroke

import "testing"

func TestVec2NormalizeZeroIsUnitX(t *testing.T) {
	v := Vec2{}.Normalize()
	if v != (Vec2{1, 0}) {
		t.Errorf("Normalize() of zero vector = %v, want (1,0)", v)
	}
}

func TestVec2Perp(t *testing.T) {
	got := Vec2{1, 0}.Perp()
	if got != (Vec2{0, 1}) {
		t.Errorf("Perp() = %v, want (0,1)", got)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Width != 1 || s.Cap != CapButt || s.Join != JoinMiter || s.MiterLimit != 4 {
		t.Errorf("DefaultStyle() = %+v", s)
	}
}

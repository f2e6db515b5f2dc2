package stroke

import "testing"

func TestExpandStrokeToTrianglesOpenLine(t *testing.T) {
	e := newTestExpander()
	style := Style{Width: 10, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}
	out, err := e.ExpandStrokeToTriangles([]Vec2{{0, 0}, {100, 0}}, style, false)
	if err != nil {
		t.Fatalf("ExpandStrokeToTriangles() = %v", err)
	}
	if out.Vertices.Len() != 4 {
		t.Fatalf("got %d vertices, want 4 (one left/right pair per input point)", out.Vertices.Len())
	}
	if out.Indices.Len() != 6 {
		t.Fatalf("got %d indices, want 6 (one quad)", out.Indices.Len())
	}
}

func TestExpandStrokeToTrianglesMultiSegment(t *testing.T) {
	e := newTestExpander()
	style := DefaultStyle()
	out, err := e.ExpandStrokeToTriangles([]Vec2{{0, 0}, {10, 0}, {10, 10}}, style, false)
	if err != nil {
		t.Fatalf("ExpandStrokeToTriangles() = %v", err)
	}
	if out.Vertices.Len() != 6 {
		t.Fatalf("got %d vertices, want 6 (one left/right pair per input point)", out.Vertices.Len())
	}
	if out.Indices.Len() != 12 {
		t.Fatalf("got %d indices, want 12 (two quads)", out.Indices.Len())
	}
}

func TestExpandStrokeToTrianglesSquareCapAddsPatch(t *testing.T) {
	e := newTestExpander()
	style := Style{Width: 10, Cap: CapSquare, Join: JoinMiter, MiterLimit: 4}
	out, err := e.ExpandStrokeToTriangles([]Vec2{{0, 0}, {100, 0}}, style, false)
	if err != nil {
		t.Fatalf("ExpandStrokeToTriangles() = %v", err)
	}
	// 4 base vertices + 2 extensions per cap x 2 caps.
	if out.Vertices.Len() != 8 {
		t.Fatalf("got %d vertices, want 8", out.Vertices.Len())
	}
	// 1 quad (6 indices) + 2 cap patches x 2 triangles each (12 indices).
	if out.Indices.Len() != 18 {
		t.Fatalf("got %d indices, want 18", out.Indices.Len())
	}
}

func TestExpandStrokeToTrianglesRoundCapAddsFan(t *testing.T) {
	e := newTestExpander()
	style := Style{Width: 10, Cap: CapRound, Join: JoinMiter, MiterLimit: 4}
	out, err := e.ExpandStrokeToTriangles([]Vec2{{0, 0}, {100, 0}}, style, false)
	if err != nil {
		t.Fatalf("ExpandStrokeToTriangles() = %v", err)
	}
	if out.Vertices.Len() <= 4 {
		t.Errorf("expected round cap to add fan vertices, got %d", out.Vertices.Len())
	}
	if out.Indices.Len() <= 6 {
		t.Errorf("expected round cap to add fan triangles, got %d indices", out.Indices.Len())
	}
}

func TestExpandStrokeToTrianglesClosedLoop(t *testing.T) {
	e := newTestExpander()
	style := DefaultStyle()
	out, err := e.ExpandStrokeToTriangles([]Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, style, true)
	if err != nil {
		t.Fatalf("ExpandStrokeToTriangles() = %v", err)
	}
	if out.Vertices.Len() != 8 {
		t.Fatalf("got %d vertices, want 8", out.Vertices.Len())
	}
	if out.Indices.Len() != 24 {
		t.Fatalf("got %d indices, want 24 (four quads)", out.Indices.Len())
	}
}

func TestExpandStrokeToTrianglesTooManyInputPoints(t *testing.T) {
	e := NewExpander(2, 64, 8)
	_, err := e.ExpandStrokeToTriangles([]Vec2{{0, 0}, {1, 0}, {2, 0}}, DefaultStyle(), false)
	if err != ErrTooManyInputPoints {
		t.Fatalf("ExpandStrokeToTriangles() = %v, want ErrTooManyInputPoints", err)
	}
}

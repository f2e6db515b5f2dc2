package gooey

import "testing"

func TestTriangulatorSquareCCW(t *testing.T) {
	points := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tri := NewTriangulator()
	indices, err := tri.Triangulate(points, IndexSlice{Start: 0, End: 4})
	if err != nil {
		t.Fatalf("Triangulate() = %v", err)
	}
	if len(indices) != 6 {
		t.Fatalf("got %d indices, want 6", len(indices))
	}
}

func TestTriangulatorDegeneratePolygonFails(t *testing.T) {
	points := []Vec2{{0, 0}, {1, 0}}
	tri := NewTriangulator()
	if _, err := tri.Triangulate(points, IndexSlice{Start: 0, End: 2}); err != ErrDegeneratePolygon {
		t.Errorf("Triangulate() = %v, want ErrDegeneratePolygon", err)
	}
}

func TestTriangulatorResetIsIdempotent(t *testing.T) {
	points := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tri := NewTriangulator()
	first, err := tri.Triangulate(points, IndexSlice{Start: 0, End: 4})
	if err != nil {
		t.Fatalf("Triangulate() = %v", err)
	}
	firstCopy := append([]uint32(nil), first...)
	tri.Reset()
	second, err := tri.Triangulate(points, IndexSlice{Start: 0, End: 4})
	if err != nil {
		t.Fatalf("Triangulate() after Reset() = %v", err)
	}
	if len(firstCopy) != len(second) {
		t.Fatalf("got %d indices after reset, want %d", len(second), len(firstCopy))
	}
	for i := range firstCopy {
		if firstCopy[i] != second[i] {
			t.Errorf("indices[%d] = %d, want %d", i, second[i], firstCopy[i])
		}
	}
}

func TestTriangulatorTooManyVerticesFails(t *testing.T) {
	tri := NewTriangulator(WithTriangulatorMaxVertices(3))
	points := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	if _, err := tri.Triangulate(points, IndexSlice{Start: 0, End: 4}); err != ErrTooManyVertices {
		t.Errorf("Triangulate() = %v, want ErrTooManyVertices", err)
	}
}

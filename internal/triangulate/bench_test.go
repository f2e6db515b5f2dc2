package triangulate

import (
	"math"
	"testing"
)

func gearPolygon(n int) []Vec2 {
	points := make([]Vec2, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := float32(10)
		if i%2 != 0 {
			r = 6 // alternate radius to force reflex vertices, like a gear
		}
		points[i] = Vec2{
			X: r * float32(math.Cos(angle)),
			Y: r * float32(math.Sin(angle)),
		}
	}
	return points
}

func convexPolygon(n int) []Vec2 {
	points := make([]Vec2, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Vec2{X: 10 * float32(math.Cos(angle)), Y: 10 * float32(math.Sin(angle))}
	}
	return points
}

func BenchmarkTriangulateConvexPolygon(b *testing.B) {
	points := convexPolygon(64)
	tri := NewTriangulator(128)
	slice := IndexSlice{Start: 0, End: uint32(len(points))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tri.Reset()
		if _, err := tri.Triangulate(points, slice); err != nil {
			b.Fatalf("Triangulate() = %v", err)
		}
	}
}

func BenchmarkTriangulateGearPolygon(b *testing.B) {
	points := gearPolygon(64)
	tri := NewTriangulator(128)
	slice := IndexSlice{Start: 0, End: uint32(len(points))}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tri.Reset()
		if _, err := tri.Triangulate(points, slice); err != nil {
			b.Fatalf("Triangulate() = %v", err)
		}
	}
}

package triangulate

// Vec2 is a 2D point in 32-bit floats (internal copy of the root
// package's Vec2 to avoid an import cycle: the root package imports
// this package, so this package cannot import the root package back).
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Cross(o Vec2) float32 { return v.X*o.Y - v.Y*o.X }

// IndexSlice is a half-open range [Start, End) into a shared vertex
// buffer delineating one sub-polygon (internal copy of the root
// package's IndexSlice, for the same import-cycle reason as Vec2).
type IndexSlice struct {
	Start, End uint32
}

func (s IndexSlice) Len() uint32 { return s.End - s.Start }

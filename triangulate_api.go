package gooey

import "github.com/duanebester/gooey-sub002/internal/triangulate"

// Triangulator ear-clips simple polygons (possibly concave, either
// winding) into triangle indices referencing the caller's vertex
// buffer. Output triangles are always emitted CCW regardless of input
// winding. One Triangulator per render thread; not safe for
// concurrent use.
type Triangulator struct {
	inner *triangulate.Triangulator
}

// NewTriangulator allocates a Triangulator. See
// WithTriangulatorMaxVertices for its sizing option.
func NewTriangulator(opts ...TriangulateOption) *Triangulator {
	o := defaultTriangulateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Triangulator{inner: triangulate.NewTriangulator(o.maxVertices)}
}

// Reset returns the internal index buffer to empty without
// deallocating, so the Triangulator can be reused for the next
// polygon.
func (t *Triangulator) Reset() { t.inner.Reset() }

// Triangulate triangulates the sub-polygon points[slice.Start:slice.End]
// and returns the indices appended by this call. The returned slice is
// only valid until the next call to Triangulate or Reset.
func (t *Triangulator) Triangulate(points []Vec2, slice IndexSlice) ([]uint32, error) {
	indices, err := t.inner.Triangulate(toTriangulateVec2(points), triangulate.IndexSlice{Start: slice.Start, End: slice.End})
	if err != nil {
		return nil, translateTriangulateError(err)
	}
	return indices, nil
}

func toTriangulateVec2(points []Vec2) []triangulate.Vec2 {
	out := make([]triangulate.Vec2, len(points))
	for i, p := range points {
		out[i] = triangulate.Vec2{X: p.X, Y: p.Y}
	}
	return out
}

func translateTriangulateError(err error) error {
	switch err {
	case triangulate.ErrTooManyVertices:
		return ErrTooManyVertices
	case triangulate.ErrDegeneratePolygon:
		return ErrDegeneratePolygon
	case triangulate.ErrEarClippingFailed:
		Logger().Debug("ear clipping made no progress", "error", err)
		return ErrEarClippingFailed
	default:
		return err
	}
}

package gooey

import (
	"sync"

	"github.com/duanebester/gooey-sub002/internal/stroke"
)

// LineCap selects the geometry appended at an open path's endpoints.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin selects the geometry connecting two stroke segments.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// StrokeStyle parameterizes stroke expansion.
type StrokeStyle struct {
	Width      float32
	Cap        LineCap
	Join       LineJoin
	MiterLimit float32
	// Closed treats the input polyline as a loop (no caps, wrap-around
	// joins at both ends) rather than an open path.
	Closed bool
}

// DefaultStrokeStyle returns a 1-unit-wide butt-capped miter-joined
// open stroke with a miter limit of 4, a conventional default shared
// by most 2D vector graphics APIs.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Width: 1, Cap: CapButt, Join: JoinMiter, MiterLimit: 4}
}

// ExpandedStroke is a single closed polygon outline ready for
// triangulation.
type ExpandedStroke struct {
	Points []Vec2
	Closed bool
}

// StrokeTriangles is a directly-indexed triangle mesh produced by the
// stroke expander's fast path, bypassing triangulation entirely.
type StrokeTriangles struct {
	Vertices []Vec2
	Indices  []uint32
}

// StrokeExpander converts polylines into stroke outlines or triangle
// meshes using fixed-capacity scratch buffers sized once at
// construction. One StrokeExpander per render thread; not safe for
// concurrent use.
type StrokeExpander struct {
	inner *stroke.Expander
}

// NewStrokeExpander allocates a StrokeExpander. See WithMaxStrokeInput,
// WithMaxStrokeOutput, and WithRoundSegments for its sizing options.
func NewStrokeExpander(opts ...StrokeOption) *StrokeExpander {
	o := defaultStrokeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &StrokeExpander{inner: stroke.NewExpander(o.maxInput, o.maxOutput, o.roundSegments)}
}

// ExpandStroke converts points plus style into a single closed outline
// polygon.
func (e *StrokeExpander) ExpandStroke(points []Vec2, style StrokeStyle) (*ExpandedStroke, error) {
	result, err := e.inner.ExpandStroke(toStrokeVec2(points), toStrokeStyle(style), style.Closed)
	if err != nil {
		return nil, translateStrokeError(err)
	}
	return &ExpandedStroke{
		Points: fromStrokeVec2(result.Points.Slice()),
		Closed: result.Closed,
	}, nil
}

// ExpandStrokeToTriangles converts points plus style directly into a
// triangle mesh, bypassing the outline-then-triangulate path.
func (e *StrokeExpander) ExpandStrokeToTriangles(points []Vec2, style StrokeStyle) (*StrokeTriangles, error) {
	result, err := e.inner.ExpandStrokeToTriangles(toStrokeVec2(points), toStrokeStyle(style), style.Closed)
	if err != nil {
		return nil, translateStrokeError(err)
	}
	return &StrokeTriangles{
		Vertices: fromStrokeVec2(result.Vertices.Slice()),
		Indices:  append([]uint32(nil), result.Indices.Slice()...),
	}, nil
}

func toStrokeVec2(points []Vec2) []stroke.Vec2 {
	out := make([]stroke.Vec2, len(points))
	for i, p := range points {
		out[i] = stroke.Vec2{X: p.X, Y: p.Y}
	}
	return out
}

func fromStrokeVec2(points []stroke.Vec2) []Vec2 {
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = Vec2{X: p.X, Y: p.Y}
	}
	return out
}

func toStrokeStyle(s StrokeStyle) stroke.Style {
	return stroke.Style{
		Width:      s.Width,
		Cap:        stroke.LineCap(s.Cap),
		Join:       stroke.LineJoin(s.Join),
		MiterLimit: s.MiterLimit,
	}
}

func translateStrokeError(err error) error {
	switch err {
	case stroke.ErrTooManyInputPoints:
		return ErrTooManyInputPoints
	case stroke.ErrTooManyOutputPoints:
		return ErrTooManyOutputPoints
	case stroke.ErrDegeneratePath:
		return ErrDegeneratePath
	default:
		return err
	}
}

// ExpandStrokeToTriangles converts points plus style directly into a
// triangle mesh using a package-level default-sized StrokeExpander.
// For repeated use on a render thread, construct a StrokeExpander
// directly instead so its buffers are reused across calls.
func ExpandStrokeToTriangles(points []Vec2, style StrokeStyle) (*StrokeTriangles, error) {
	return defaultStrokeExpander().ExpandStrokeToTriangles(points, style)
}

// ExpandStroke converts points plus style into a single closed outline
// polygon using a package-level default-sized StrokeExpander.
func ExpandStroke(points []Vec2, style StrokeStyle) (*ExpandedStroke, error) {
	return defaultStrokeExpander().ExpandStroke(points, style)
}

var (
	defaultStrokeExpanderOnce sync.Once
	defaultStrokeExpanderInst *StrokeExpander
)

func defaultStrokeExpander() *StrokeExpander {
	defaultStrokeExpanderOnce.Do(func() {
		defaultStrokeExpanderInst = NewStrokeExpander()
	})
	return defaultStrokeExpanderInst
}

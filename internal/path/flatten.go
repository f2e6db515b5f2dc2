package path

import (
	"math"

	"github.com/duanebester/gooey-sub002/internal/fixed"
)

// Point is a 2D point in 32-bit floats (internal copy of the root
// package's Vec2 to avoid an import cycle: the root package imports
// this package, so this package cannot import the root package back).
type Point struct {
	X, Y float32
}

func (p Point) Lerp(q Point, t float32) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
func (p Point) Sub(q Point) Point   { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Add(q Point) Point   { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Mul(s float32) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Dot(q Point) float32 { return p.X*q.X + p.Y*q.Y }
func (p Point) Length() float32     { return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y))) }
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// PolySlice is a half-open range [Start, End) of point-buffer indices
// delineating one sub-polygon (internal copy of the root package's
// IndexSlice, for the same import-cycle reason as Point).
type PolySlice struct {
	Start, End uint32
}

// maxSubdivisionDepth caps curve flattening recursion; at the cap the
// current endpoint is emitted unconditionally rather than recursing
// further.
const maxSubdivisionDepth = 16

// FlattenPath walks the command stream in p and writes its flattened
// sub-polygons into outPoints/outPolygons, clearing both first. Each
// sub-polygon's vertices land in outPoints; outPolygons records the
// index range of each one.
//
// tolerance bounds the piecewise-linear approximation error: a cubic
// segment is accepted as flat once the combined perpendicular distance
// of its two control points from its chord is at most tolerance (for a
// quadratic, the single control point's distance); for elliptical arcs
// it bounds the per-segment sagitta.
func FlattenPath(p *SvgPath, tolerance float32, outPoints *fixed.Array[Point], outPolygons *fixed.Array[PolySlice]) error {
	outPoints.Clear()
	outPolygons.Clear()

	var pen Point
	var subpathStart Point
	var subpathStartIdx uint32
	haveSubpath := false

	var lastCubicCtrl2 Point
	var lastQuadCtrl Point
	prevWasCubic := false
	prevWasQuad := false

	emit := func(pt Point) error {
		if err := outPoints.Append(pt); err != nil {
			return ErrTooManyVertices
		}
		pen = pt
		return nil
	}

	closeSubpath := func() error {
		if !haveSubpath {
			return nil
		}
		end := uint32(outPoints.Len())
		if err := outPolygons.Append(PolySlice{Start: subpathStartIdx, End: end}); err != nil {
			return ErrTooManyVertices
		}
		haveSubpath = false
		return nil
	}

	opIdx := 0
	for _, cmd := range p.Commands {
		n := operandCount(cmd.Kind)
		ops := p.Operands[opIdx : opIdx+n]
		opIdx += n

		isCubic := cmd.Kind == CubicTo || cmd.Kind == SmoothCubicTo
		isQuad := cmd.Kind == QuadTo || cmd.Kind == SmoothQuadTo

		switch cmd.Kind {
		case MoveTo:
			if err := closeSubpath(); err != nil {
				return err
			}
			pt := resolvePoint(pen, cmd.Relative, ops[0], ops[1])
			pen = pt
			subpathStart = pt
			subpathStartIdx = uint32(outPoints.Len())
			if err := emit(pt); err != nil {
				return err
			}
			haveSubpath = true

		case LineTo:
			pt := resolvePoint(pen, cmd.Relative, ops[0], ops[1])
			if err := emit(pt); err != nil {
				return err
			}

		case HorizontalLineTo:
			x := ops[0]
			if cmd.Relative {
				x += pen.X
			}
			if err := emit(Point{X: x, Y: pen.Y}); err != nil {
				return err
			}

		case VerticalLineTo:
			y := ops[0]
			if cmd.Relative {
				y += pen.Y
			}
			if err := emit(Point{X: pen.X, Y: y}); err != nil {
				return err
			}

		case CubicTo:
			c1 := resolvePoint(pen, cmd.Relative, ops[0], ops[1])
			c2 := resolvePoint(pen, cmd.Relative, ops[2], ops[3])
			end := resolvePoint(pen, cmd.Relative, ops[4], ops[5])
			if err := flattenCubic(pen, c1, c2, end, tolerance, 0, emit); err != nil {
				return err
			}
			lastCubicCtrl2 = c2

		case SmoothCubicTo:
			var c1 Point
			if prevWasCubic {
				c1 = pen.Add(pen.Sub(lastCubicCtrl2))
			} else {
				c1 = pen
			}
			c2 := resolvePoint(pen, cmd.Relative, ops[0], ops[1])
			end := resolvePoint(pen, cmd.Relative, ops[2], ops[3])
			if err := flattenCubic(pen, c1, c2, end, tolerance, 0, emit); err != nil {
				return err
			}
			lastCubicCtrl2 = c2

		case QuadTo:
			ctrl := resolvePoint(pen, cmd.Relative, ops[0], ops[1])
			end := resolvePoint(pen, cmd.Relative, ops[2], ops[3])
			if err := flattenQuad(pen, ctrl, end, tolerance, 0, emit); err != nil {
				return err
			}
			lastQuadCtrl = ctrl

		case SmoothQuadTo:
			var ctrl Point
			if prevWasQuad {
				ctrl = pen.Add(pen.Sub(lastQuadCtrl))
			} else {
				ctrl = pen
			}
			end := resolvePoint(pen, cmd.Relative, ops[0], ops[1])
			if err := flattenQuad(pen, ctrl, end, tolerance, 0, emit); err != nil {
				return err
			}
			lastQuadCtrl = ctrl

		case EllipticalArcTo:
			end := resolvePoint(pen, cmd.Relative, ops[5], ops[6])
			arc, ok := resolveArc(pen.X, pen.Y, ops[0], ops[1], ops[2], ops[3] != 0, ops[4] != 0, end.X, end.Y)
			if !ok {
				if err := emit(end); err != nil {
					return err
				}
				break
			}
			segs := arc.segmentCount(tolerance)
			for i := 1; i <= segs; i++ {
				theta := arc.theta1 + arc.deltaTheta*float32(i)/float32(segs)
				pt := arc.pointAt(theta)
				if i == segs {
					pt = end
				}
				if err := emit(pt); err != nil {
					return err
				}
			}

		case ClosePath:
			// The sub-polygon closes implicitly by wrap-around (its
			// last vertex connects back to its first); no duplicate
			// closing vertex is appended.
			if err := closeSubpath(); err != nil {
				return err
			}
			pen = subpathStart
		}

		prevWasCubic = isCubic
		prevWasQuad = isQuad
	}

	return closeSubpath()
}

func resolvePoint(pen Point, relative bool, x, y float32) Point {
	if relative {
		return Point{X: pen.X + x, Y: pen.Y + y}
	}
	return Point{X: x, Y: y}
}

// flattenQuad recursively subdivides a quadratic Bezier via de
// Casteljau's algorithm, emitting points through sink.
func flattenQuad(p0, p1, p2 Point, tolerance float32, depth int, sink func(Point) error) error {
	dist := distanceToLine(p1, p0, p2)

	if depth >= maxSubdivisionDepth || dist <= tolerance {
		return sink(p2)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	if err := flattenQuad(p0, q0, q2, tolerance, depth+1, sink); err != nil {
		return err
	}
	return flattenQuad(q2, q1, p2, tolerance, depth+1, sink)
}

// flattenCubic recursively subdivides a cubic Bezier via de Casteljau's
// algorithm, emitting points through sink.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float32, depth int, sink func(Point) error) error {
	combined := distanceToLine(p1, p0, p3) + distanceToLine(p2, p0, p3)

	if depth >= maxSubdivisionDepth || combined <= tolerance {
		return sink(p3)
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	if err := flattenCubic(p0, q0, r0, s, tolerance, depth+1, sink); err != nil {
		return err
	}
	return flattenCubic(s, r1, q2, p3, tolerance, depth+1, sink)
}

// distanceToLine returns the perpendicular distance from p to the
// infinite line through a and b, falling back to point distance when
// a and b coincide.
func distanceToLine(p, a, b Point) float32 {
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)

	if abLenSq < 1e-12 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / abLenSq

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}

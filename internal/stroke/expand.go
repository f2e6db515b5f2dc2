package stroke

import (
	"math"

	"github.com/duanebester/gooey-sub002/internal/fixed"
)

// collinearDotThreshold and collinearCrossThreshold bound the
// near-collinear case: when two adjoining segments turn by less than
// about 1e-6 radians, the join collapses to a
// single averaged-normal offset on both sides instead of computing an
// inner/outer split.
const (
	collinearCrossThreshold = 1e-6
	collinearDotThreshold   = 0.9
)

// ExpandedStroke is a closed outline polygon ready for triangulation.
type ExpandedStroke struct {
	Points *fixed.Array[Vec2]
	Closed bool
}

// Expander expands polylines into stroke outlines. It owns its scratch
// buffers so repeated calls across frames perform no further
// allocation; callers size it once for the largest input/output they
// expect.
type Expander struct {
	maxInput      int
	maxOutput     int
	roundSegments int

	dirs  *fixed.Array[Vec2]
	left  *fixed.Array[Vec2]
	right *fixed.Array[Vec2]

	leftIdx  *fixed.Array[uint32]
	rightIdx *fixed.Array[uint32]
}

// NewExpander allocates an Expander whose scratch buffers hold up to
// maxInput segment directions and maxOutput offset points per side.
// roundSegments is the number of straight segments a round join or cap
// is sampled into.
func NewExpander(maxInput, maxOutput, roundSegments int) *Expander {
	return &Expander{
		maxInput:      maxInput,
		maxOutput:     maxOutput,
		roundSegments: roundSegments,
		dirs:          fixed.NewArray[Vec2](maxInput),
		left:          fixed.NewArray[Vec2](maxOutput),
		right:         fixed.NewArray[Vec2](maxOutput),
		leftIdx:       fixed.NewArray[uint32](maxInput),
		rightIdx:      fixed.NewArray[uint32](maxInput),
	}
}

// ExpandStroke expands points into a closed outline polygon per style.
// When closed is true the polyline wraps from the last point back to
// the first and no caps are produced; the outline then consists of two
// stitched rings and may show a visible seam at the wrap index for
// round joins.
func (e *Expander) ExpandStroke(points []Vec2, style Style, closed bool) (*ExpandedStroke, error) {
	n := len(points)
	if n > e.maxInput {
		return nil, ErrTooManyInputPoints
	}
	if n < 2 {
		return nil, ErrDegeneratePath
	}

	halfWidth := style.Width / 2
	segCount := n - 1
	if closed {
		segCount = n
	}

	e.dirs.Clear()
	for i := 0; i < segCount; i++ {
		j := (i + 1) % n
		if err := e.dirs.Append(points[j].Sub(points[i]).Normalize()); err != nil {
			return nil, ErrTooManyInputPoints
		}
	}
	dirAt := func(i int) Vec2 { v, _ := e.dirs.Get(i); return v }

	e.left.Clear()
	e.right.Clear()
	appendLeft := func(v Vec2) error {
		if err := e.left.Append(v); err != nil {
			return ErrTooManyOutputPoints
		}
		return nil
	}
	appendRight := func(v Vec2) error {
		if err := e.right.Append(v); err != nil {
			return ErrTooManyOutputPoints
		}
		return nil
	}

	startIdx, endIdx := 0, n-1
	if !closed {
		d0 := dirAt(0)
		normal0 := d0.Perp()
		if err := appendLeft(points[0].Add(normal0.Scale(halfWidth))); err != nil {
			return nil, err
		}
		if err := appendRight(points[0].Add(normal0.Scale(-halfWidth))); err != nil {
			return nil, err
		}
		startIdx, endIdx = 1, n-2
	}

	for i := startIdx; i <= endIdx; i++ {
		var prevDir, nextDir Vec2
		if closed {
			prevDir = dirAt((i - 1 + segCount) % segCount)
			nextDir = dirAt(i % segCount)
		} else {
			prevDir = dirAt(i - 1)
			nextDir = dirAt(i)
		}
		if err := e.join(points[i], prevDir, nextDir, halfWidth, style, appendLeft, appendRight); err != nil {
			return nil, err
		}
	}

	if !closed {
		dLast := dirAt(segCount - 1)
		normalLast := dLast.Perp()
		if err := appendLeft(points[n-1].Add(normalLast.Scale(halfWidth))); err != nil {
			return nil, err
		}
		if err := appendRight(points[n-1].Add(normalLast.Scale(-halfWidth))); err != nil {
			return nil, err
		}
	}

	out := fixed.NewArray[Vec2](e.maxOutput)
	appendOut := func(v Vec2) error {
		if err := out.Append(v); err != nil {
			return ErrTooManyOutputPoints
		}
		return nil
	}

	if !closed {
		leftStart, _ := e.left.Get(0)
		rightStart, _ := e.right.Get(0)
		if err := capGeometry(appendOut, points[0], rightStart, leftStart, dirAt(0).Negate(), halfWidth, style.Cap, e.roundSegments); err != nil {
			return nil, err
		}
	}
	for i := 0; i < e.left.Len(); i++ {
		v, _ := e.left.Get(i)
		if err := appendOut(v); err != nil {
			return nil, err
		}
	}
	if !closed {
		leftEnd, _ := e.left.Get(e.left.Len() - 1)
		rightEnd, _ := e.right.Get(e.right.Len() - 1)
		if err := capGeometry(appendOut, points[n-1], leftEnd, rightEnd, dirAt(segCount-1), halfWidth, style.Cap, e.roundSegments); err != nil {
			return nil, err
		}
	}
	for i := e.right.Len() - 1; i >= 0; i-- {
		v, _ := e.right.Get(i)
		if err := appendOut(v); err != nil {
			return nil, err
		}
	}

	return &ExpandedStroke{Points: out, Closed: true}, nil
}

// join computes the offset geometry at an interior vertex shared by
// prevDir and nextDir, appending to the outer side's join geometry and
// the inner side's single clamped point.
func (e *Expander) join(p, prevDir, nextDir Vec2, halfWidth float32, style Style, appendLeft, appendRight func(Vec2) error) error {
	prevNormal := prevDir.Perp()
	nextNormal := nextDir.Perp()
	cross := prevNormal.Cross(nextNormal)
	dot := prevNormal.Dot(nextNormal)

	if absf(cross) < collinearCrossThreshold && dot > collinearDotThreshold {
		avg := prevNormal.Add(nextNormal).Normalize()
		if err := appendLeft(p.Add(avg.Scale(halfWidth))); err != nil {
			return err
		}
		return appendRight(p.Add(avg.Scale(-halfWidth)))
	}

	outerSign := float32(1)
	appendOuter, appendInner := appendLeft, appendRight
	if cross > 0 {
		outerSign = -1
		appendOuter, appendInner = appendRight, appendLeft
	}

	cosHalf := sqrtClamp01((1 + dot) / 2)
	if cosHalf < 1e-3 {
		cosHalf = 1e-3
	}

	bisector := prevNormal.Add(nextNormal)
	if bisector.LengthSq() < 1e-12 {
		// Segments fold back on themselves (~180 degree turn); pick an
		// arbitrary but stable bisector direction.
		bisector = prevNormal
	} else {
		bisector = bisector.Normalize()
	}

	innerLen := clampf(halfWidth/cosHalf, 0.5*halfWidth, 2*halfWidth)
	if err := appendInner(p.Add(bisector.Scale(-outerSign * innerLen))); err != nil {
		return err
	}

	outerA := p.Add(prevNormal.Scale(outerSign * halfWidth))
	outerB := p.Add(nextNormal.Scale(outerSign * halfWidth))

	switch style.Join {
	case JoinBevel:
		if err := appendOuter(outerA); err != nil {
			return err
		}
		return appendOuter(outerB)

	case JoinMiter:
		miterLen := halfWidth / cosHalf
		if cosHalf < 0.1 || miterLen/halfWidth > style.MiterLimit {
			if err := appendOuter(outerA); err != nil {
				return err
			}
			return appendOuter(outerB)
		}
		return appendOuter(p.Add(bisector.Scale(outerSign * miterLen)))

	case JoinRound:
		return sampleArc(appendOuter, p, outerA, outerB, outerSign != 1, halfWidth, e.roundSegments)
	}
	return nil
}

// sampleArc samples the shorter arc from `from` to `to` around center,
// emitting ROUND_SEGMENTS-1 interior points plus the two endpoints.
// The bool parameter is unused: join geometry always spans less than a
// half turn (the turn angle is strictly less than a full reversal), so
// the shorter arc is unambiguous.
func sampleArc(appendFn func(Vec2) error, center, from, to Vec2, _ bool, radius float32, segs int) error {
	v0 := from.Sub(center)
	v1 := to.Sub(center)
	a0 := math.Atan2(float64(v0.Y), float64(v0.X))
	a1 := math.Atan2(float64(v1.Y), float64(v1.X))
	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	if segs < 1 {
		segs = 1
	}
	if err := appendFn(from); err != nil {
		return err
	}
	for i := 1; i < segs; i++ {
		a := a0 + delta*float64(i)/float64(segs)
		pt := Vec2{
			X: center.X + radius*float32(math.Cos(a)),
			Y: center.Y + radius*float32(math.Sin(a)),
		}
		if err := appendFn(pt); err != nil {
			return err
		}
	}
	return appendFn(to)
}

// capGeometry appends the extra points (if any) connecting first to
// second around center, for a cap opening outward in direction
// outward. It never emits first or second themselves, since those are
// already the endpoint's plain offset points.
func capGeometry(appendFn func(Vec2) error, center, first, second, outward Vec2, halfWidth float32, cap LineCap, segs int) error {
	switch cap {
	case CapButt:
		return nil
	case CapSquare:
		ext := outward.Scale(halfWidth)
		if err := appendFn(first.Add(ext)); err != nil {
			return err
		}
		return appendFn(second.Add(ext))
	case CapRound:
		return capArc(appendFn, center, first, second, outward, halfWidth, segs)
	}
	return nil
}

// capArc samples the half-turn arc from first to second that bulges
// toward outward, emitting only the interior points (not first/second).
func capArc(appendFn func(Vec2) error, center, first, second, outward Vec2, radius float32, segs int) error {
	v0 := first.Sub(center)
	v1 := second.Sub(center)
	a0 := math.Atan2(float64(v0.Y), float64(v0.X))
	a1 := math.Atan2(float64(v1.Y), float64(v1.X))
	delta := a1 - a0
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}

	mid := a0 + delta/2
	midDir := Vec2{X: float32(math.Cos(mid)), Y: float32(math.Sin(mid))}
	if midDir.Dot(outward) < 0 {
		if delta > 0 {
			delta -= 2 * math.Pi
		} else {
			delta += 2 * math.Pi
		}
	}

	if segs < 1 {
		segs = 1
	}
	for i := 1; i < segs; i++ {
		a := a0 + delta*float64(i)/float64(segs)
		pt := Vec2{
			X: center.X + radius*float32(math.Cos(a)),
			Y: center.Y + radius*float32(math.Sin(a)),
		}
		if err := appendFn(pt); err != nil {
			return err
		}
	}
	return nil
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sqrtClamp01(x float32) float32 {
	if x < 0 {
		x = 0
	}
	return float32(math.Sqrt(float64(x)))
}

package triangulate

import "github.com/duanebester/gooey-sub002/internal/fixed"

// degenerateAreaThreshold is the minimum absolute signed area below
// which a sub-polygon is rejected rather than triangulated.
const degenerateAreaThreshold = 1e-10

// Triangulator ear-clips simple polygons into triangle indices. It
// owns its index buffer, active-vertex list, and reflex bitset so
// repeated calls across frames perform no further allocation.
type Triangulator struct {
	maxVertices int
	indices     *fixed.Array[uint32]
	active      *fixed.Array[uint32]
	reflex      *fixed.BitSet
	// base is the IndexSlice.Start of the sub-polygon currently being
	// triangulated. Reflex bits are keyed by a vertex's index local to
	// the active polygon (global index minus base), not by its raw
	// global buffer index: the global index can exceed maxVertices
	// whenever the caller's shared point buffer is larger than this
	// Triangulator's configured capacity and the sub-polygon starts
	// partway through it, which would silently no-op on the
	// fixed-size ReflexSet (bitset.go clamps out-of-range Set/Test to
	// nothing). The local index is always in [0, n) and n <= maxVertices,
	// so it always lands in range.
	base uint32
}

// NewTriangulator allocates a Triangulator whose buffers can hold a
// sub-polygon of up to maxVertices vertices, emitting up to
// 3*(maxVertices-2) indices.
func NewTriangulator(maxVertices int) *Triangulator {
	capIndices := 3 * (maxVertices - 2)
	if capIndices < 0 {
		capIndices = 0
	}
	return &Triangulator{
		maxVertices: maxVertices,
		indices:     fixed.NewArray[uint32](capIndices),
		active:      fixed.NewArray[uint32](maxVertices),
		reflex:      fixed.NewBitSet(maxVertices),
	}
}

// Reset returns the index buffer to empty without deallocating.
func (t *Triangulator) Reset() {
	t.indices.Clear()
}

// Triangulate triangulates the sub-polygon points[slice.Start:slice.End]
// and returns a slice view of the indices appended by this call,
// referencing points directly (offset by slice.Start). The returned
// slice is only valid until the next call to Triangulate or Reset.
func (t *Triangulator) Triangulate(points []Vec2, slice IndexSlice) ([]uint32, error) {
	n := int(slice.Len())
	if n < 3 {
		return nil, ErrDegeneratePolygon
	}
	if n > t.maxVertices {
		return nil, ErrTooManyVertices
	}

	area := signedArea(points, slice)
	if absf32(area) < degenerateAreaThreshold {
		return nil, ErrDegeneratePolygon
	}
	ccw := area > 0

	t.base = slice.Start
	t.active.Clear()
	for i := 0; i < n; i++ {
		local := i
		if !ccw {
			local = n - 1 - i
		}
		if err := t.active.Append(slice.Start + uint32(local)); err != nil {
			return nil, ErrTooManyVertices
		}
	}

	t.reflex.Reset()
	for i := 0; i < n; i++ {
		t.updateReflex(points, i)
	}

	start := t.indices.Len()
	maxIterations := n * n
	iterations := 0

	for t.active.Len() > 3 {
		if iterations >= maxIterations {
			return nil, ErrEarClippingFailed
		}
		iterations++

		earIdx := -1
		for i := 0; i < t.active.Len(); i++ {
			if t.isEar(points, i) {
				earIdx = i
				break
			}
		}
		if earIdx == -1 {
			return nil, ErrEarClippingFailed
		}

		oldLen := t.active.Len()
		prevI := wrapIdx(earIdx-1, oldLen)
		nextI := wrapIdx(earIdx+1, oldLen)

		prev, _ := t.active.Get(prevI)
		curr, _ := t.active.Get(earIdx)
		next, _ := t.active.Get(nextI)

		if err := t.emitTriangle(prev, curr, next); err != nil {
			return nil, err
		}

		t.reflex.Clear(int(curr - t.base))
		t.active.OrderedRemove(earIdx)

		newPrevI := reindexAfterRemoval(prevI, earIdx)
		newNextI := reindexAfterRemoval(nextI, earIdx)
		t.updateReflex(points, newPrevI)
		t.updateReflex(points, newNextI)
	}

	if t.active.Len() == 3 {
		a, _ := t.active.Get(0)
		b, _ := t.active.Get(1)
		c, _ := t.active.Get(2)
		if err := t.emitTriangle(a, b, c); err != nil {
			return nil, err
		}
	}

	return t.indices.Slice()[start:], nil
}

func (t *Triangulator) emitTriangle(a, b, c uint32) error {
	if err := t.indices.Append(a); err != nil {
		return ErrTooManyVertices
	}
	if err := t.indices.Append(b); err != nil {
		return ErrTooManyVertices
	}
	if err := t.indices.Append(c); err != nil {
		return ErrTooManyVertices
	}
	return nil
}

// updateReflex recomputes whether the vertex at active-list position
// pos is reflex and updates its bit accordingly. The bit is keyed by
// the vertex's index local to the active polygon (global index minus
// t.base), not its active-list position (which shifts as vertices are
// clipped) and not its raw global buffer index (which can exceed
// maxVertices when the sub-polygon starts partway through a larger
// shared buffer).
func (t *Triangulator) updateReflex(points []Vec2, pos int) {
	n := t.active.Len()
	prevI := wrapIdx(pos-1, n)
	nextI := wrapIdx(pos+1, n)
	prev, _ := t.active.Get(prevI)
	curr, _ := t.active.Get(pos)
	next, _ := t.active.Get(nextI)

	cross := points[curr].Sub(points[prev]).Cross(points[next].Sub(points[curr]))
	if cross <= 0 {
		t.reflex.Set(int(curr - t.base))
	} else {
		t.reflex.Clear(int(curr - t.base))
	}
}

// isEar reports whether the active-list vertex at position i is
// convex and its triangle with its neighbours contains no other
// currently-active reflex vertex.
func (t *Triangulator) isEar(points []Vec2, i int) bool {
	n := t.active.Len()
	curr, _ := t.active.Get(i)
	if t.reflex.Test(int(curr - t.base)) {
		return false
	}

	prevI := wrapIdx(i-1, n)
	nextI := wrapIdx(i+1, n)
	prevIdx, _ := t.active.Get(prevI)
	nextIdx, _ := t.active.Get(nextI)
	a, b, c := points[prevIdx], points[curr], points[nextIdx]

	for j := 0; j < n; j++ {
		if j == i || j == prevI || j == nextI {
			continue
		}
		vIdx, _ := t.active.Get(j)
		if !t.reflex.Test(int(vIdx - t.base)) {
			continue
		}
		if pointInTriangle(points[vIdx], a, b, c) {
			return false
		}
	}
	return true
}

func signedArea(points []Vec2, slice IndexSlice) float32 {
	n := int(slice.Len())
	var area float32
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi := points[int(slice.Start)+i]
		pj := points[int(slice.Start)+j]
		area += pi.X*pj.Y - pj.X*pi.Y
	}
	return area / 2
}

func sign(p1, p2, p3 Vec2) float32 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

func pointInTriangle(pt, a, b, c Vec2) bool {
	d1 := sign(pt, a, b)
	d2 := sign(pt, b, c)
	d3 := sign(pt, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func wrapIdx(i, n int) int {
	return ((i % n) + n) % n
}

// reindexAfterRemoval maps an active-list position computed before
// removing index `removed` to its new position after the removal
// shifted everything past it down by one.
func reindexAfterRemoval(pos, removed int) int {
	if pos < removed {
		return pos
	}
	return pos - 1
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

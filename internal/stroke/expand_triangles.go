package stroke

import "github.com/duanebester/gooey-sub002/internal/fixed"

// maxCapArcSamples bounds the stack-allocated buffer used to collect a
// round cap's interior samples, independent of the output buffer's
// capacity; ROUND_SEGMENTS is expected to stay well under this.
const maxCapArcSamples = 64

// StrokeTriangles is a directly-indexed triangle mesh: a flattened
// outline that skips the triangulator entirely.
type StrokeTriangles struct {
	Vertices *fixed.Array[Vec2]
	Indices  *fixed.Array[uint32]
}

// ExpandStrokeToTriangles expands points into a triangle mesh directly,
// emitting one left/right vertex pair per input point and a quad (two
// triangles) per segment. Unlike ExpandStroke, every vertex's offset is
// a single averaged-normal point on both sides: the one-vertex-pair-per
// -input-point layout that makes the per-segment quad pattern possible
// has no room for a join's extra bevel/miter/round points, so sharp
// turns are approximated rather than given true join geometry. Caps
// append a fan (round) or a patch (square) referencing the endpoint's
// existing left/right vertices; butt caps add nothing.
func (e *Expander) ExpandStrokeToTriangles(points []Vec2, style Style, closed bool) (*StrokeTriangles, error) {
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

	verts := fixed.NewArray[Vec2](e.maxOutput)
	indices := fixed.NewArray[uint32](e.maxOutput * 3)

	e.leftIdx.Clear()
	e.rightIdx.Clear()

	for i := 0; i < n; i++ {
		var normal Vec2
		switch {
		case !closed && i == 0:
			normal = dirAt(0).Perp()
		case !closed && i == n-1:
			normal = dirAt(segCount - 1).Perp()
		default:
			prevDir := dirAt(wrap(i-1, segCount))
			nextDir := dirAt(i % segCount)
			normal = prevDir.Perp().Add(nextDir.Perp()).Normalize()
		}

		lIdx, err := appendVertex(verts, points[i].Add(normal.Scale(halfWidth)))
		if err != nil {
			return nil, err
		}
		rIdx, err := appendVertex(verts, points[i].Add(normal.Scale(-halfWidth)))
		if err != nil {
			return nil, err
		}
		if err := e.leftIdx.Append(lIdx); err != nil {
			return nil, ErrTooManyInputPoints
		}
		if err := e.rightIdx.Append(rIdx); err != nil {
			return nil, ErrTooManyInputPoints
		}
	}

	leftAt := func(i int) uint32 { v, _ := e.leftIdx.Get(i); return v }
	rightAt := func(i int) uint32 { v, _ := e.rightIdx.Get(i); return v }

	for i := 0; i < segCount; i++ {
		j := (i + 1) % n
		if err := appendQuad(indices, leftAt(i), leftAt(j), rightAt(j), rightAt(i)); err != nil {
			return nil, err
		}
	}

	if !closed {
		if err := e.appendCapTriangles(verts, indices, points[0], dirAt(0).Negate(), halfWidth, style.Cap, leftAt(0), rightAt(0), true); err != nil {
			return nil, err
		}
		if err := e.appendCapTriangles(verts, indices, points[n-1], dirAt(segCount-1), halfWidth, style.Cap, leftAt(n-1), rightAt(n-1), false); err != nil {
			return nil, err
		}
	}

	return &StrokeTriangles{Vertices: verts, Indices: indices}, nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func appendVertex(verts *fixed.Array[Vec2], v Vec2) (uint32, error) {
	idx := uint32(verts.Len())
	if err := verts.Append(v); err != nil {
		return 0, ErrTooManyOutputPoints
	}
	return idx, nil
}

func appendTriangle(indices *fixed.Array[uint32], a, b, c uint32) error {
	if err := indices.Append(a); err != nil {
		return ErrTooManyOutputPoints
	}
	if err := indices.Append(b); err != nil {
		return ErrTooManyOutputPoints
	}
	if err := indices.Append(c); err != nil {
		return ErrTooManyOutputPoints
	}
	return nil
}

// appendQuad emits (a,b,c) and (a,c,d) for the segment quad with
// corners left-near, left-far, right-far, right-near.
func appendQuad(indices *fixed.Array[uint32], a, b, c, d uint32) error {
	if err := appendTriangle(indices, a, b, c); err != nil {
		return err
	}
	return appendTriangle(indices, a, c, d)
}

// appendCapTriangles appends the extra cap geometry at an endpoint.
// startSide distinguishes the start endpoint (whose existing
// left/right vertices sit at the start of the mesh) from the end
// endpoint, only to decide triangle winding.
func (e *Expander) appendCapTriangles(verts *fixed.Array[Vec2], indices *fixed.Array[uint32], p, outward Vec2, halfWidth float32, cap LineCap, lIdx, rIdx uint32, startSide bool) error {
	switch cap {
	case CapButt:
		return nil

	case CapSquare:
		lPos, _ := verts.Get(int(lIdx))
		rPos, _ := verts.Get(int(rIdx))
		ext := outward.Scale(halfWidth)
		lExt, err := appendVertex(verts, lPos.Add(ext))
		if err != nil {
			return err
		}
		rExt, err := appendVertex(verts, rPos.Add(ext))
		if err != nil {
			return err
		}
		if startSide {
			if err := appendTriangle(indices, lExt, lIdx, rIdx); err != nil {
				return err
			}
			return appendTriangle(indices, lExt, rIdx, rExt)
		}
		if err := appendTriangle(indices, lIdx, lExt, rExt); err != nil {
			return err
		}
		return appendTriangle(indices, lIdx, rExt, rIdx)

	case CapRound:
		centerIdx, err := appendVertex(verts, p)
		if err != nil {
			return err
		}
		lPos, _ := verts.Get(int(lIdx))
		rPos, _ := verts.Get(int(rIdx))

		first, firstIdx, second, secondIdx := lPos, lIdx, rPos, rIdx
		if startSide {
			first, firstIdx, second, secondIdx = rPos, rIdx, lPos, lIdx
		}

		var samples [maxCapArcSamples]uint32
		count := 0
		sampleErr := capArc(func(pt Vec2) error {
			if count >= len(samples) {
				return ErrTooManyOutputPoints
			}
			idx, err := appendVertex(verts, pt)
			if err != nil {
				return err
			}
			samples[count] = idx
			count++
			return nil
		}, p, first, second, outward, halfWidth, e.roundSegments)
		if sampleErr != nil {
			return sampleErr
		}

		prev := firstIdx
		for i := 0; i < count; i++ {
			if err := appendTriangle(indices, centerIdx, prev, samples[i]); err != nil {
				return err
			}
			prev = samples[i]
		}
		return appendTriangle(indices, centerIdx, prev, secondIdx)
	}
	return nil
}

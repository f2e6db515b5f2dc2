package triangulate

import "errors"

// Local sentinels, distinct in identity from the root package's
// same-named errors to avoid an import cycle; the root facade
// translates these at its boundary.
var (
	ErrTooManyVertices   = errors.New("triangulate: too many vertices")
	ErrDegeneratePolygon = errors.New("triangulate: degenerate polygon")
	ErrEarClippingFailed = errors.New("triangulate: ear clipping failed")
)

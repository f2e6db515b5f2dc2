package stroke

import "errors"

// Local sentinels, distinct in identity from the root package's
// same-named errors to avoid an import cycle; the root facade
// translates these at its boundary.
var (
	ErrTooManyInputPoints  = errors.New("stroke: too many input points")
	ErrTooManyOutputPoints = errors.New("stroke: expansion exceeds output capacity")
	ErrDegeneratePath      = errors.New("stroke: path has fewer than two points")
)

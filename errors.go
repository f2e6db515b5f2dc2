package gooey

import "errors"

// Input-shape errors: propagated to the caller; the operation leaves
// its output buffers empty or containing only the work accepted before
// the failure.
var (
	ErrTooManyVertices        = errors.New("gooey: too many vertices for configured limit")
	ErrTooManyCommands        = errors.New("gooey: too many path commands for configured limit")
	ErrDegeneratePolygon      = errors.New("gooey: polygon has near-zero signed area")
	ErrTooManyInputPoints     = errors.New("gooey: too many input points for configured limit")
	ErrTooManyOutputPoints    = errors.New("gooey: stroke output exceeds configured limit")
	ErrDegeneratePath         = errors.New("gooey: fewer than two input points")
	ErrInvalidPathCommand     = errors.New("gooey: invalid path command letter")
	ErrUnsupportedPathCommand = errors.New("gooey: unsupported path command")
	ErrExpectedNumber         = errors.New("gooey: expected a number")
	ErrUnexpectedEndOfPath    = errors.New("gooey: unexpected end of path data")
	ErrInvalidNumber          = errors.New("gooey: invalid numeric literal")
	ErrEmptyPath              = errors.New("gooey: empty path data")
)

// Algorithmic exhaustion: the input violated the simple-polygon
// precondition the triangulator requires.
var ErrEarClippingFailed = errors.New("gooey: ear clipping made no progress, input is not a simple polygon")

// Deferred work: not an input error, a rate-limit signal for the
// current frame.
var ErrRasterizationDeferred = errors.New("gooey: rasterization deferred, per-frame budget exhausted")

// Cache/backend errors.
var (
	ErrIconTooLarge   = errors.New("gooey: icon exceeds atlas capacity after growth and retry")
	ErrBufferTooSmall = errors.New("gooey: scratch buffer too small for requested rasterization")
	ErrGraphicsError  = errors.New("gooey: platform rasterizer backend error")
)

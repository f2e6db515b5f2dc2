package path

import "errors"

// Parse- and flatten-time sentinel errors. The root package wraps these
// with its own exported sentinels (see parse.go) so library consumers
// never need to import this internal package directly.
var (
	ErrEmptyPath              = errors.New("path: empty path data")
	ErrInvalidPathCommand     = errors.New("path: invalid command")
	ErrUnsupportedPathCommand = errors.New("path: unsupported command")
	ErrExpectedNumber         = errors.New("path: expected a number")
	ErrUnexpectedEndOfPath    = errors.New("path: unexpected end of path data")
	ErrInvalidNumber          = errors.New("path: invalid numeric literal")
	ErrTooManyVertices        = errors.New("path: too many vertices for configured limit")
	ErrTooManyCommands        = errors.New("path: too many commands for configured limit")
)

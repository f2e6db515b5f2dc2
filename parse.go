package gooey

import (
	"errors"
	"sync"

	"github.com/duanebester/gooey-sub002/internal/fixed"
	"github.com/duanebester/gooey-sub002/internal/path"
)

// SvgPath holds a parsed command stream: one Command per instruction
// plus a packed operand tape. It wraps internal/path's representation
// so callers never need to import that package directly.
type SvgPath struct {
	inner *path.SvgPath
}

// NewSvgPath allocates an SvgPath with the given up-front command and
// operand capacity. Capacity is advisory; Parse/AppendPath grow past it
// if needed since the command tape is a construction-time buffer, not
// a per-frame allocation.
func NewSvgPath(commandCapacity, operandCapacity int) *SvgPath {
	return &SvgPath{inner: path.NewSvgPath(commandCapacity, operandCapacity)}
}

// Clear empties the command and operand tape without releasing its
// backing storage.
func (p *SvgPath) Clear() { p.inner.Clear() }

// Parser parses SVG path-data text or XML shape fragments into an
// SvgPath, then flattens the result into polygon vertex buffers sized
// once at construction. One Parser per render thread; not safe for
// concurrent use.
type Parser struct {
	opts     parserOptions
	path     *path.SvgPath
	points   *fixed.Array[path.Point]
	polygons *fixed.Array[path.PolySlice]
}

// NewParser allocates a Parser. maxVertices (see WithMaxPathVertices)
// sizes the flattened-point and polygon-slice buffers.
func NewParser(opts ...ParserOption) *Parser {
	o := defaultParserOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		opts:     o,
		path:     path.NewSvgPath(256, 1024),
		points:   fixed.NewArray[path.Point](o.maxVertices),
		polygons: fixed.NewArray[path.PolySlice](o.maxVertices),
	}
}

// Parse clears the parser's command tape and tokenizes SVG path-data
// text (e.g. "M10 20 L30 40 Z") into it.
func (p *Parser) Parse(src string) error {
	p.path.Clear()
	if err := path.ParsePathData(p.path, src); err != nil {
		return translatePathError(err)
	}
	return nil
}

// AppendPath tokenizes src and appends the resulting commands onto
// whatever is already parsed, without clearing first. Repeated calls
// accumulate a multi-path command stream.
func (p *Parser) AppendPath(src string) error {
	if err := path.ParsePathData(p.path, src); err != nil {
		return translatePathError(err)
	}
	return nil
}

// ParseXML clears the parser's command tape and parses a fragment of
// SVG-like XML (<path>, <circle>, <ellipse>, <rect>, <line>,
// <polyline>, <polygon>) into it.
func (p *Parser) ParseXML(src string) error {
	p.path.Clear()
	if err := path.ParseXMLFragment(p.path, src); err != nil {
		return translatePathError(err)
	}
	return nil
}

// AppendXML parses a fragment of SVG-like XML and appends the
// resulting commands onto whatever is already parsed.
func (p *Parser) AppendXML(src string) error {
	if err := path.ParseXMLFragment(p.path, src); err != nil {
		return translatePathError(err)
	}
	return nil
}

// FlattenPath walks the parser's current command stream and flattens
// it into sub-polygons, returning a view over the parser's internal
// buffers (valid until the next FlattenPath/Parse call).
func (p *Parser) FlattenPath(tolerance float32) ([]Vec2, []IndexSlice, error) {
	if err := path.FlattenPath(p.path, tolerance, p.points, p.polygons); err != nil {
		return nil, nil, translatePathError(err)
	}
	return pointsToVec2(p.points.Slice()), polySlicesToIndexSlice(p.polygons.Slice()), nil
}

func pointsToVec2(pts []path.Point) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = Vec2{X: p.X, Y: p.Y}
	}
	return out
}

func polySlicesToIndexSlice(slices []path.PolySlice) []IndexSlice {
	out := make([]IndexSlice, len(slices))
	for i, s := range slices {
		out[i] = IndexSlice{Start: s.Start, End: s.End}
	}
	return out
}

func translatePathError(err error) error {
	// The tokenizer wraps ErrInvalidPathCommand with the offending
	// letter or offset, so it is matched with errors.Is.
	if errors.Is(err, path.ErrInvalidPathCommand) {
		return ErrInvalidPathCommand
	}
	switch err {
	case path.ErrEmptyPath:
		return ErrEmptyPath
	case path.ErrInvalidPathCommand:
		return ErrInvalidPathCommand
	case path.ErrUnsupportedPathCommand:
		return ErrUnsupportedPathCommand
	case path.ErrExpectedNumber:
		return ErrExpectedNumber
	case path.ErrUnexpectedEndOfPath:
		return ErrUnexpectedEndOfPath
	case path.ErrInvalidNumber:
		return ErrInvalidNumber
	case path.ErrTooManyVertices:
		return ErrTooManyVertices
	case path.ErrTooManyCommands:
		return ErrTooManyCommands
	default:
		return err
	}
}

// defaultParser is a lazily-constructed Parser backing the
// package-level convenience functions below, for callers that don't
// need to manage their own Parser across frames.
var (
	defaultParserOnce sync.Once
	defaultParserInst *Parser
)

func defaultParser() *Parser {
	defaultParserOnce.Do(func() {
		defaultParserInst = NewParser()
	})
	return defaultParserInst
}

// ParsePathData tokenizes SVG path-data text using a shared
// default-sized Parser. The returned SvgPath shares that Parser's
// command tape, so the next ParsePathData or ParseXMLFragment call
// clears and overwrites it. For repeated parsing on a
// render thread, construct a Parser directly instead so its buffers
// are reused without package-level locking concerns.
func ParsePathData(src string) (*SvgPath, error) {
	p := defaultParser()
	if err := p.Parse(src); err != nil {
		return nil, err
	}
	return &SvgPath{inner: p.path}, nil
}

// FlattenPath flattens an SvgPath produced by ParsePathData/ParseXMLFragment
// using the shared default Parser's buffers. A non-nil sp becomes that
// Parser's command tape, so a later ParsePathData or ParseXMLFragment
// call clears it.
func FlattenPath(sp *SvgPath, tolerance float32) ([]Vec2, []IndexSlice, error) {
	p := defaultParser()
	if sp != nil {
		p.path = sp.inner
	}
	return p.FlattenPath(tolerance)
}

// ParseXMLFragment parses a fragment of SVG-like XML using a shared
// default-sized Parser. The returned SvgPath shares that Parser's
// command tape, so the next ParsePathData or ParseXMLFragment call
// clears and overwrites it.
func ParseXMLFragment(src string) (*SvgPath, error) {
	p := defaultParser()
	if err := p.ParseXML(src); err != nil {
		return nil, err
	}
	return &SvgPath{inner: p.path}, nil
}

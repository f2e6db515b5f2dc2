// Package path implements SVG-flavored path-data and XML-fragment
// parsing, and flattening of the resulting command stream into
// polylines.
package path

// CommandKind identifies one of the ten SVG path-data command variants
// this parser recognizes.
type CommandKind uint8

const (
	MoveTo CommandKind = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicTo
	SmoothCubicTo
	QuadTo
	SmoothQuadTo
	EllipticalArcTo
	ClosePath
)

// operandCount returns the number of f32 operands a command of this
// kind carries in SvgPath.Operands.
func operandCount(k CommandKind) int {
	switch k {
	case MoveTo, LineTo:
		return 2
	case HorizontalLineTo, VerticalLineTo:
		return 1
	case CubicTo:
		return 6
	case SmoothCubicTo:
		return 4
	case QuadTo:
		return 4
	case SmoothQuadTo:
		return 2
	case EllipticalArcTo:
		return 7 // rx, ry, x-axis-rotation, large-arc-flag, sweep-flag, x, y
	case ClosePath:
		return 0
	default:
		return 0
	}
}

// Command is one instruction in a command stream: a kind plus whether
// its operands are relative to the current pen position.
type Command struct {
	Kind     CommandKind
	Relative bool
}

// SvgPath holds a parsed command stream as parallel arrays: one Command
// per instruction, and a flat stream of packed f32 operands (sized per
// command via operandCount). Parse clears both arrays; AppendPath
// accumulates onto whatever is already present.
type SvgPath struct {
	Commands []Command
	Operands []float32
}

// NewSvgPath returns an SvgPath with the given up-front command and
// operand capacity. Capacity is advisory only — Go slices grow past it
// if needed, since the command tape is a construction-time buffer, not
// a per-frame hot-path allocation.
func NewSvgPath(commandCapacity, operandCapacity int) *SvgPath {
	return &SvgPath{
		Commands: make([]Command, 0, commandCapacity),
		Operands: make([]float32, 0, operandCapacity),
	}
}

// Clear empties the command and operand arrays without releasing their
// backing storage, so the SvgPath can be reused for the next parse.
func (p *SvgPath) Clear() {
	p.Commands = p.Commands[:0]
	p.Operands = p.Operands[:0]
}

// append records one command and its operands onto the tape.
func (p *SvgPath) append(kind CommandKind, relative bool, operands ...float32) {
	p.Commands = append(p.Commands, Command{Kind: kind, Relative: relative})
	p.Operands = append(p.Operands, operands...)
}

package path

import (
	"fmt"
	"strconv"
)

// tokenizer scans SVG path-data text one command/number at a time,
// following the state-machine shape of a hand-rolled rune scanner
// rather than a regexp-based splitter.
type tokenizer struct {
	src string
	pos int
}

func (t *tokenizer) skipSeparators() {
	for t.pos < len(t.src) {
		switch t.src[t.pos] {
		case ' ', '\t', '\r', '\n', ',':
			t.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	default:
		return false
	}
}

func commandFor(c byte) (kind CommandKind, relative bool, ok bool) {
	switch c {
	case 'M':
		return MoveTo, false, true
	case 'm':
		return MoveTo, true, true
	case 'L':
		return LineTo, false, true
	case 'l':
		return LineTo, true, true
	case 'H':
		return HorizontalLineTo, false, true
	case 'h':
		return HorizontalLineTo, true, true
	case 'V':
		return VerticalLineTo, false, true
	case 'v':
		return VerticalLineTo, true, true
	case 'C':
		return CubicTo, false, true
	case 'c':
		return CubicTo, true, true
	case 'S':
		return SmoothCubicTo, false, true
	case 's':
		return SmoothCubicTo, true, true
	case 'Q':
		return QuadTo, false, true
	case 'q':
		return QuadTo, true, true
	case 'T':
		return SmoothQuadTo, false, true
	case 't':
		return SmoothQuadTo, true, true
	case 'A':
		return EllipticalArcTo, false, true
	case 'a':
		return EllipticalArcTo, true, true
	case 'Z', 'z':
		return ClosePath, false, true
	default:
		return 0, false, false
	}
}

// parseNumber parses a signed decimal with an optional fractional part.
// A sign immediately following digits (with no separator) starts a new
// number rather than being consumed as an operator — callers rely on
// this to split runs like "1.5-3.2" into two numbers.
func (t *tokenizer) parseNumber() (float32, error) {
	start := t.pos
	if t.pos < len(t.src) && (t.src[t.pos] == '+' || t.src[t.pos] == '-') {
		t.pos++
	}
	sawDigit := false
	for t.pos < len(t.src) && isDigit(t.src[t.pos]) {
		t.pos++
		sawDigit = true
	}
	if t.pos < len(t.src) && t.src[t.pos] == '.' {
		t.pos++
		for t.pos < len(t.src) && isDigit(t.src[t.pos]) {
			t.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		t.pos = start
		if t.pos >= len(t.src) {
			return 0, ErrUnexpectedEndOfPath
		}
		return 0, ErrExpectedNumber
	}
	v, err := strconv.ParseFloat(t.src[start:t.pos], 32)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return float32(v), nil
}

// parseFlag parses an arc flag operand: exactly one '0' or '1' character.
func (t *tokenizer) parseFlag() (float32, error) {
	if t.pos >= len(t.src) {
		return 0, ErrUnexpectedEndOfPath
	}
	c := t.src[t.pos]
	if c != '0' && c != '1' {
		return 0, ErrInvalidNumber
	}
	t.pos++
	if c == '1' {
		return 1, nil
	}
	return 0, nil
}

// MaxCommandsPerPath bounds the total number of commands in the
// SvgPath that ParsePathData appends onto (including commands already
// present from earlier calls), guarding against unbounded command
// tapes from malformed or adversarial input.
const MaxCommandsPerPath = 2048

// ParsePathData tokenizes SVG path-data text (e.g. "M10 20 L30 40 Z")
// and appends the resulting commands onto out. It never clears out;
// Parse and AppendPath decide whether to clear first.
func ParsePathData(out *SvgPath, src string) error {
	if len(src) == 0 {
		return ErrEmptyPath
	}
	t := &tokenizer{src: src}
	t.skipSeparators()
	if t.pos >= len(t.src) {
		return ErrEmptyPath
	}

	haveCommand := false
	var curKind CommandKind
	var curRelative bool

	for {
		t.skipSeparators()
		if t.pos >= len(t.src) {
			break
		}
		c := t.src[t.pos]

		if isCommandLetter(c) {
			kind, relative, ok := commandFor(c)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidPathCommand, string(c))
			}
			t.pos++
			curKind, curRelative = kind, relative
			haveCommand = true
			if err := consumeOperands(out, t, kind, relative); err != nil {
				return err
			}
		} else {
			if !haveCommand || curKind == ClosePath {
				return fmt.Errorf("%w at offset %d", ErrInvalidPathCommand, t.pos)
			}

			// Implicit operand repetition: a bare number run after a
			// command repeats that command, except that a repeated
			// move-to becomes a line-to.
			repeatKind := curKind
			if repeatKind == MoveTo {
				repeatKind = LineTo
			}
			if err := consumeOperands(out, t, repeatKind, curRelative); err != nil {
				return err
			}
		}

		if len(out.Commands) > MaxCommandsPerPath {
			return ErrTooManyCommands
		}
	}
	return nil
}

// consumeOperands reads the fixed operand count for kind and appends
// the resulting command onto out.
func consumeOperands(out *SvgPath, t *tokenizer, kind CommandKind, relative bool) error {
	if kind == ClosePath {
		out.append(kind, relative)
		return nil
	}
	if kind == EllipticalArcTo {
		var ops [7]float32
		for i := 0; i < 2; i++ {
			t.skipSeparators()
			v, err := t.parseNumber()
			if err != nil {
				return err
			}
			ops[i] = v
		}
		t.skipSeparators()
		rot, err := t.parseNumber()
		if err != nil {
			return err
		}
		ops[2] = rot
		t.skipSeparators()
		large, err := t.parseFlag()
		if err != nil {
			return err
		}
		ops[3] = large
		t.skipSeparators()
		sweep, err := t.parseFlag()
		if err != nil {
			return err
		}
		ops[4] = sweep
		for i := 5; i < 7; i++ {
			t.skipSeparators()
			v, err := t.parseNumber()
			if err != nil {
				return err
			}
			ops[i] = v
		}
		out.append(kind, relative, ops[:]...)
		return nil
	}

	n := operandCount(kind)
	ops := make([]float32, n)
	for i := 0; i < n; i++ {
		t.skipSeparators()
		v, err := t.parseNumber()
		if err != nil {
			return err
		}
		ops[i] = v
	}
	out.append(kind, relative, ops...)
	return nil
}

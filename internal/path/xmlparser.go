package path

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// ParseXMLFragment parses a fragment of SVG-like XML containing any mix
// of <path>, <circle>, <ellipse>, <rect>, <line>, <polyline>, and
// <polygon> elements. Each element lowers to a path-data string which
// is then tokenized and appended onto out via ParsePathData. When the
// fragment holds more than one element (a wrapping element such as <g>
// counts as one), each shape element's own leading
// relative move-to is rewritten to an absolute move-to, so elements
// remain independent of one another's pen state.
func ParseXMLFragment(out *SvgPath, src string) error {
	dec := xml.NewDecoder(strings.NewReader(src))
	var elements []xml.StartElement
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok {
			elements = append(elements, se)
		}
	}
	if len(elements) == 0 {
		return ErrEmptyPath
	}

	multi := len(elements) > 1
	for _, el := range elements {
		d, ok, err := lowerElement(el)
		if err != nil {
			return err
		}
		if !ok {
			continue // non-positive radius/dimension: silently skipped
		}
		if multi {
			d = rewriteLeadingRelativeMoveTo(d)
		}
		if err := ParsePathData(out, d); err != nil {
			return err
		}
	}
	return nil
}

func attrValue(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrFloat(el xml.StartElement, name string, def float32) float32 {
	s, ok := attrValue(el, name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return def
	}
	return float32(v)
}

func fnum(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// lowerElement lowers one XML shape element to path-data text. The
// bool result is false when the shape has a non-positive radius or
// dimension and therefore cannot produce a closed region (per contract,
// such elements are silently skipped rather than treated as an error).
func lowerElement(el xml.StartElement) (string, bool, error) {
	switch el.Name.Local {
	case "path":
		d, ok := attrValue(el, "d")
		if !ok {
			return "", false, nil
		}
		return d, true, nil

	case "circle":
		cx := attrFloat(el, "cx", 0)
		cy := attrFloat(el, "cy", 0)
		r := attrFloat(el, "r", 0)
		if r <= 0 {
			return "", false, nil
		}
		return circlePath(cx, cy, r, r), true, nil

	case "ellipse":
		cx := attrFloat(el, "cx", 0)
		cy := attrFloat(el, "cy", 0)
		rx := attrFloat(el, "rx", 0)
		ry := attrFloat(el, "ry", 0)
		if rx <= 0 || ry <= 0 {
			return "", false, nil
		}
		return circlePath(cx, cy, rx, ry), true, nil

	case "rect":
		x := attrFloat(el, "x", 0)
		y := attrFloat(el, "y", 0)
		w := attrFloat(el, "width", 0)
		h := attrFloat(el, "height", 0)
		if w <= 0 || h <= 0 {
			return "", false, nil
		}
		rx := attrFloat(el, "rx", 0)
		ry := attrFloat(el, "ry", 0)
		if rx <= 0 && ry <= 0 {
			return rectPath(x, y, w, h), true, nil
		}
		if rx <= 0 {
			rx = ry
		}
		if ry <= 0 {
			ry = rx
		}
		return roundedRectPath(x, y, w, h, rx, ry), true, nil

	case "line":
		x1 := attrFloat(el, "x1", 0)
		y1 := attrFloat(el, "y1", 0)
		x2 := attrFloat(el, "x2", 0)
		y2 := attrFloat(el, "y2", 0)
		return "M" + fnum(x1) + " " + fnum(y1) + "L" + fnum(x2) + " " + fnum(y2), true, nil

	case "polyline":
		pts, ok := attrValue(el, "points")
		if !ok {
			return "", false, nil
		}
		d, err := polyPath(pts, false)
		if err != nil {
			return "", false, err
		}
		return d, true, nil

	case "polygon":
		pts, ok := attrValue(el, "points")
		if !ok {
			return "", false, nil
		}
		d, err := polyPath(pts, true)
		if err != nil {
			return "", false, err
		}
		return d, true, nil

	default:
		return "", false, nil
	}
}

// circlePath lowers a circle/ellipse to two semicircular arcs, starting
// at the rightmost point (cx+rx, cy) so that a unit circle at the
// origin begins its command stream at (1, 0) in local coordinates.
func circlePath(cx, cy, rx, ry float32) string {
	var b strings.Builder
	b.WriteString("M")
	b.WriteString(fnum(cx + rx))
	b.WriteString(" ")
	b.WriteString(fnum(cy))
	arc := func(x, y float32) {
		b.WriteString("A")
		b.WriteString(fnum(rx))
		b.WriteString(" ")
		b.WriteString(fnum(ry))
		b.WriteString(" 0 1 0 ")
		b.WriteString(fnum(x))
		b.WriteString(" ")
		b.WriteString(fnum(y))
	}
	arc(cx-rx, cy)
	arc(cx+rx, cy)
	b.WriteString("Z")
	return b.String()
}

func rectPath(x, y, w, h float32) string {
	var b strings.Builder
	b.WriteString("M")
	b.WriteString(fnum(x))
	b.WriteString(" ")
	b.WriteString(fnum(y))
	line := func(px, py float32) {
		b.WriteString("L")
		b.WriteString(fnum(px))
		b.WriteString(" ")
		b.WriteString(fnum(py))
	}
	line(x+w, y)
	line(x+w, y+h)
	line(x, y+h)
	b.WriteString("Z")
	return b.String()
}

func roundedRectPath(x, y, w, h, rx, ry float32) string {
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	var b strings.Builder
	move := func(px, py float32) {
		b.WriteString("M")
		b.WriteString(fnum(px))
		b.WriteString(" ")
		b.WriteString(fnum(py))
	}
	line := func(px, py float32) {
		b.WriteString("L")
		b.WriteString(fnum(px))
		b.WriteString(" ")
		b.WriteString(fnum(py))
	}
	arc := func(px, py float32) {
		b.WriteString("A")
		b.WriteString(fnum(rx))
		b.WriteString(" ")
		b.WriteString(fnum(ry))
		b.WriteString(" 0 0 1 ")
		b.WriteString(fnum(px))
		b.WriteString(" ")
		b.WriteString(fnum(py))
	}
	move(x+rx, y)
	line(x+w-rx, y)
	arc(x+w, y+ry)
	line(x+w, y+h-ry)
	arc(x+w-rx, y+h)
	line(x+rx, y+h)
	arc(x, y+h-ry)
	line(x, y+ry)
	arc(x+rx, y)
	b.WriteString("Z")
	return b.String()
}

func polyPath(pts string, closed bool) (string, error) {
	vals, err := ParsePoints(pts)
	if err != nil {
		return "", err
	}
	if len(vals) < 4 {
		return "", ErrInvalidNumber
	}
	var b strings.Builder
	b.WriteString("M")
	b.WriteString(fnum(vals[0]))
	b.WriteString(" ")
	b.WriteString(fnum(vals[1]))
	for i := 2; i+1 < len(vals); i += 2 {
		b.WriteString("L")
		b.WriteString(fnum(vals[i]))
		b.WriteString(" ")
		b.WriteString(fnum(vals[i+1]))
	}
	if closed {
		b.WriteString("Z")
	}
	return b.String(), nil
}

// rewriteLeadingRelativeMoveTo rewrites a leading lowercase 'm' command
// to uppercase 'M', making the first move-to absolute regardless of how
// the source path data was authored.
func rewriteLeadingRelativeMoveTo(d string) string {
	trimmed := strings.TrimLeft(d, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != 'm' {
		return d
	}
	prefixLen := len(d) - len(trimmed)
	return d[:prefixLen] + "M" + trimmed[1:]
}

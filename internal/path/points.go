package path

import "strconv"

// ParsePoints parses a polyline/polygon points attribute ("x1,y1 x2,y2
// ...") into a flat []float32 of alternating x,y values. Separators may
// be commas, spaces, tabs, or line breaks, and may repeat.
func ParsePoints(s string) ([]float32, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		out = append(out, float32(v))
	}
	if len(out)%2 != 0 {
		return nil, ErrInvalidNumber
	}
	return out, nil
}

// splitOnCommaOrSpace splits s on any run of commas, spaces, tabs, or
// newlines, discarding empty fields.
func splitOnCommaOrSpace(s string) []string {
	var fields []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isPointSeparator(s[i]) {
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

func isPointSeparator(c byte) bool {
	switch c {
	case ',', ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseRGBA parses an "rgba(r,g,b,a)" style color string into a 255-mode
// Color. Whitespace around components is tolerated. The alpha component is a
// decimal fraction in [0,1].
//
// Arguments:
// - s: The color string, e.g. "rgba(255,128,0,0.5)".
//
// Returns:
// - Color: The parsed 255-mode color.
// - error: An error if the string is not a well-formed rgba() expression.
func ParseRGBA(s string) (Color, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "rgba(") || !strings.HasSuffix(body, ")") {
		return Color{}, errors.Errorf("malformed color %q: expected rgba(r,g,b,a)", s)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "rgba("), ")")

	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return Color{}, errors.Errorf("malformed color %q: expected 4 components, got %d", s, len(parts))
	}

	vals := make([]float32, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Color{}, errors.Wrapf(err, "malformed color %q: component %d", s, i)
		}
		vals[i] = float32(v)
	}

	return NewAlpha(vals[0], vals[1], vals[2], vals[3]), nil
}

// FormatRGBA renders the color as an "rgba(r,g,b,a)" string from its 255-mode
// representation. Channels are printed as integers, alpha as a decimal
// fraction.
func FormatRGBA(c Color) string {
	v := c.To255()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		int(v.R), int(v.G), int(v.B),
		strconv.FormatFloat(float64(v.A), 'g', -1, 32))
}

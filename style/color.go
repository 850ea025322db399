package style

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeColor canonicalizes a CSS color value:
//   - fully transparent values (the transparent keyword, any rgb()/rgba()
//     with alpha 0) collapse to "transparent"
//   - rgb()/rgba() with alpha 1 convert to 6-digit lower-case hex
//   - rgba() with alpha < 1 is preserved in compact rgba(r,g,b,a) form
//   - hex values are lower-cased; anything else passes through untouched
func NormalizeColor(v string) string {
	if v == "" {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(v))

	if lower == "transparent" {
		return "transparent"
	}
	if strings.HasPrefix(lower, "#") {
		return lower
	}
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		r, g, b, a, ok := parseRGBA(lower)
		if !ok {
			return lower
		}
		if a == 0 {
			return "transparent"
		}
		if a >= 1 {
			return fmt.Sprintf("#%02x%02x%02x", r, g, b)
		}
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, trimFloat(a))
	}
	return lower
}

// parseRGBA parses rgb(r,g,b) or rgba(r,g,b,a). Missing alpha means 1.
func parseRGBA(v string) (r, g, b int, a float64, ok bool) {
	open := strings.IndexByte(v, '(')
	close := strings.IndexByte(v, ')')
	if open < 0 || close < open {
		return 0, 0, 0, 0, false
	}
	parts := strings.Split(v[open+1:close], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return 0, 0, 0, 0, false
	}

	chans := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return 0, 0, 0, 0, false
		}
		chans[i] = n
	}

	a = 1
	if len(parts) == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return 0, 0, 0, 0, false
		}
		a = f
	}
	return chans[0], chans[1], chans[2], a, true
}

// trimFloat renders an alpha value without trailing zeros (0.5, not 0.50).
func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

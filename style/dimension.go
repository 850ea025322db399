package style

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeDimension rounds a pixel dimension to whole pixels, preserving
// the unit suffix. Sub-pixel values (under 1px) collapse to "0". Values in
// units other than px pass through untouched; rounding relative units
// would change their meaning.
func NormalizeDimension(v string) string {
	if v == "" {
		return ""
	}
	num, unit, ok := splitUnit(v)
	if !ok {
		return v
	}
	if unit != "" && unit != "px" {
		return v
	}
	if math.Abs(num) < 1 {
		return "0"
	}
	return strconv.Itoa(int(math.Round(num))) + unit
}

// ParsePx returns the numeric value of a px (or unitless) dimension, or
// the fallback when the value is absent or in another unit.
func ParsePx(v string, fallback float64) float64 {
	if v == "" {
		return fallback
	}
	num, unit, ok := splitUnit(v)
	if !ok || (unit != "" && unit != "px") {
		return fallback
	}
	return num
}

// IsRelative reports whether a dimension uses viewport- or parent-relative
// units (%, vw, vh).
func IsRelative(v string) bool {
	return strings.HasSuffix(v, "%") || strings.HasSuffix(v, "vw") || strings.HasSuffix(v, "vh")
}

// splitUnit separates the leading number from its unit suffix.
func splitUnit(v string) (float64, string, bool) {
	v = strings.TrimSpace(v)
	i := len(v)
	for i > 0 {
		c := v[i-1]
		if c >= '0' && c <= '9' || c == '.' || c == '-' {
			break
		}
		i--
	}
	if i == 0 {
		return 0, "", false
	}
	num, err := strconv.ParseFloat(v[:i], 64)
	if err != nil {
		return 0, "", false
	}
	return num, v[i:], true
}

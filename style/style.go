// Package style filters and normalizes raw computed-style maps into the
// canonical tree.VisualStyle subset: color normalization, whole-pixel
// rounding, and spacing shorthand handling. All functions are pure.
package style

import (
	"strings"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// Extract converts a raw computed-style property map into a VisualStyle.
// Properties whose value is one of the marker keywords (initial, inherit,
// auto) are dropped entirely rather than kept as empty strings.
func Extract(raw map[string]string) tree.VisualStyle {
	get := func(prop string) string {
		v := strings.TrimSpace(raw[prop])
		switch v {
		case "initial", "inherit", "auto":
			return ""
		}
		return v
	}

	return tree.VisualStyle{
		BackgroundColor: NormalizeColor(get("background-color")),
		BorderRadius:    NormalizeDimension(get("border-radius")),
		Margin:          NormalizeSpacing(get("margin")),
		Padding:         NormalizeSpacing(get("padding")),
		FontSize:        NormalizeDimension(get("font-size")),
		FontWeight:      get("font-weight"),
		Display:         get("display"),
		Position:        get("position"),
		FlexDirection:   get("flex-direction"),
		FlexWrap:        get("flex-wrap"),
		JustifyContent:  get("justify-content"),
		AlignItems:      get("align-items"),
		Gap:             NormalizeSpacing(get("gap")),
		GridColumns:     get("grid-template-columns"),
		Width:           get("width"),
		Height:          get("height"),
	}
}

// NormalizeSpacing normalizes a 1-4 value spacing shorthand (margin,
// padding, gap) component-wise, preserving the shorthand arity.
func NormalizeSpacing(v string) string {
	if v == "" {
		return ""
	}
	parts := strings.Fields(v)
	for i, p := range parts {
		parts[i] = NormalizeDimension(p)
	}
	return strings.Join(parts, " ")
}

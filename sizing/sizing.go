// Package sizing derives placeholder dimensions and shapes from measured
// geometry and the inferred element type: per-type minimums, aspect-ratio
// preservation, and text line estimation.
package sizing

import (
	"math"
	"strconv"
	"strings"

	"github.com/afaq-khan2000/auto-skeleton/style"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// Shape of a rendered placeholder.
type Shape string

const (
	ShapeRectangular Shape = "rectangular"
	ShapeCircular    Shape = "circular"
	ShapeRounded     Shape = "rounded"
)

const (
	// DefaultFontSize is assumed when no font size was measured.
	DefaultFontSize = 16
	// LineHeightFactor converts a font size into a text line height.
	LineHeightFactor = 1.2
	// MaxTextLines caps the estimated line count used for multi-line
	// placeholder rendering.
	MaxTextLines = 5

	minButtonHeight = 36
	minInputHeight  = 40
	maxWidth        = 800
	maxHeight       = 600

	defaultImageWidth  = 200
	defaultImageHeight = 150
	defaultAvatarSide  = 40
	defaultButtonWidth = 120
)

// Size is the computed placeholder footprint. Width and Height are CSS
// dimensions ("320px" or "100%"); Lines is the estimated text line count
// (1 for non-text elements).
type Size struct {
	Width  string
	Height string
	Shape  Shape
	Lines  int
}

// Compute derives the placeholder size for one element. Pure: identical
// inputs always yield identical output.
func Compute(geo tree.Geometry, typ tree.ElementType, vs tree.VisualStyle, textContent string) Size {
	fontSize := style.ParsePx(vs.FontSize, DefaultFontSize)
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	lineHeight := fontSize * LineHeightFactor
	w, h := geo.Width, geo.Height

	switch typ {
	case tree.TypeText:
		lines := EstimateLines(textContent, w, fontSize)
		h = math.Max(lineHeight, float64(lines)*lineHeight)
		return Size{
			Width:  fallbackWidth(w),
			Height: px(h),
			Shape:  shapeFor(typ, vs, w, h),
			Lines:  lines,
		}

	case tree.TypeAvatar:
		side := math.Min(w, h)
		if side <= 0 {
			side = defaultAvatarSide
		}
		return Size{Width: px(side), Height: px(side), Shape: ShapeCircular, Lines: 1}

	case tree.TypeButton:
		if w <= 0 {
			w = defaultButtonWidth
		}
		h = math.Max(h, minButtonHeight)
		return Size{Width: px(w), Height: px(h), Shape: shapeFor(typ, vs, w, h), Lines: 1}

	case tree.TypeInput:
		h = math.Max(h, minInputHeight)
		return Size{Width: fallbackWidth(w), Height: px(h), Shape: shapeFor(typ, vs, w, h), Lines: 1}

	case tree.TypeImage:
		if w <= 0 || h <= 0 {
			w, h = defaultImageWidth, defaultImageHeight
		}
		// Constrain overlong dimensions, rescaling the other axis to keep
		// the aspect ratio.
		if w > maxWidth {
			h = h * maxWidth / w
			w = maxWidth
		}
		if h > maxHeight {
			w = w * maxHeight / h
			h = maxHeight
		}
		return Size{Width: px(w), Height: px(h), Shape: shapeFor(typ, vs, w, h), Lines: 1}

	default:
		width := fallbackWidth(w)
		switch {
		case h <= 0:
			h = 20
		case h < 10:
			h = 16
		}
		return Size{Width: width, Height: px(h), Shape: shapeFor(typ, vs, w, h), Lines: 1}
	}
}

// EstimateLines estimates how many lines a text element renders, assuming
// an average glyph width of 0.6em, capped at MaxTextLines.
func EstimateLines(textContent string, width, fontSize float64) int {
	text := strings.TrimSpace(textContent)
	if text == "" || width <= 0 {
		return 1
	}
	perLine := math.Floor(width / (fontSize * 0.6))
	if perLine < 1 {
		perLine = 1
	}
	lines := int(math.Ceil(float64(len([]rune(text))) / perLine))
	if lines < 1 {
		lines = 1
	}
	if lines > MaxTextLines {
		lines = MaxTextLines
	}
	return lines
}

// fallbackWidth applies the default width rules: missing or oversized
// widths stretch to the container, narrow widths get a 20px floor.
func fallbackWidth(w float64) string {
	if w <= 0 || w > maxWidth {
		return "100%"
	}
	if w < 50 {
		w = math.Max(w, 20)
	}
	return px(w)
}

// shapeFor determines the placeholder shape when not forced by type:
// circular for avatars and icons, circular when the corner radius reaches
// half the shorter side, rounded past 4px, rectangular otherwise.
func shapeFor(typ tree.ElementType, vs tree.VisualStyle, w, h float64) Shape {
	if typ == tree.TypeAvatar || typ == tree.TypeIcon {
		return ShapeCircular
	}
	radius := style.ParsePx(vs.BorderRadius, 0)
	shorter := math.Min(w, h)
	if shorter > 0 && radius >= shorter/2 {
		return ShapeCircular
	}
	if radius > 4 {
		return ShapeRounded
	}
	return ShapeRectangular
}

// px renders a numeric dimension as a whole-pixel CSS value.
func px(f float64) string {
	return strconv.Itoa(int(math.Round(f))) + "px"
}

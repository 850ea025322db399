// Package measure abstracts the rendered environment behind two small
// interfaces: Element (an opaque handle into the live rendered tree) and
// Provider (geometry, raw style, and visibility reads for such handles).
// Everything downstream of the analyzer is environment-independent; this
// package is the only point of contact with the live surface.
package measure

import (
	"context"
	"errors"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// ErrNoSurface is returned by Provider.Check when the surrounding runtime
// cannot provide geometry or style reads at all (no rendering surface).
// It is checked once before an analysis pass, not per element.
var ErrNoSurface = errors.New("measure: no rendering surface available")

// Element is an opaque handle to one rendered element. It exposes only the
// static facts of the node; everything layout-dependent goes through the
// Provider that produced it.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string
	// Attr returns the value of an attribute, or "" when absent.
	Attr(name string) string
	// Text returns the element's own direct text content, trimmed.
	// Descendant text is not included.
	Text() string
	// Children returns the element's child elements in document order.
	Children(ctx context.Context) ([]Element, error)
}

// Provider reads a single element's geometry, computed visual style, and
// visibility off the live rendered environment.
type Provider interface {
	// Check verifies the environment can serve measurements at all.
	// Returns ErrNoSurface (possibly wrapped) when it cannot.
	Check(ctx context.Context) error
	// Geometry measures the element's bounding box. Never cached.
	Geometry(ctx context.Context, el Element) (tree.Geometry, error)
	// RawStyle reads the element's computed style as a property map.
	RawStyle(ctx context.Context, el Element) (map[string]string, error)
	// Visible reports whether the element currently paints. See Decide
	// for the shared decision rules.
	Visible(ctx context.Context, el Element) (bool, error)
	// ReducedMotion reports whether the host signals a reduced-motion
	// preference.
	ReducedMotion(ctx context.Context) (bool, error)
	// Viewport reports the current window size, used for off-screen
	// culling and responsiveness detection. A zero viewport means the
	// environment has no meaningful window.
	Viewport(ctx context.Context) (Viewport, error)
}

// Viewport is the visible window used for off-screen culling.
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultThreshold is the minimum dimension (logical units) below which an
// element counts as invisible when both width and height fall under it.
const DefaultThreshold = 5

// viewportMargin expands the viewport window on each side before culling,
// so elements just outside the fold still get placeholders.
const viewportMargin = 100

// Decide applies the shared visibility rules to a measured element:
// hidden display/visibility, opacity exactly 0, both dimensions under the
// threshold, or a bounding box entirely outside the expanded viewport all
// yield false. A zero threshold means DefaultThreshold; a zero viewport
// disables off-screen culling.
func Decide(geo tree.Geometry, display, visibility, opacity string, threshold float64, vp Viewport) bool {
	if display == "none" || visibility == "hidden" {
		return false
	}
	if opacity == "0" || opacity == "0.0" {
		return false
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if geo.Width < threshold && geo.Height < threshold {
		return false
	}
	if vp.Width > 0 && vp.Height > 0 {
		if geo.X+geo.Width < -viewportMargin || geo.Y+geo.Height < -viewportMargin {
			return false
		}
		if geo.X > vp.Width+viewportMargin || geo.Y > vp.Height+viewportMargin {
			return false
		}
	}
	return true
}

// Package skeleton converts an analyzed element tree into placeholder
// configurations and a renderable placeholder tree. It owns theme and
// animation defaults, custom-override resolution, and the pipeline facade
// that ties analysis and generation together for external callers.
package skeleton

import (
	"github.com/afaq-khan2000/auto-skeleton/animation"
	"github.com/afaq-khan2000/auto-skeleton/sizing"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// PlaceholderConfig describes one placeholder: the footprint, shape, line
// count, animation, and the restricted style projection carried over from
// the analyzed element.
type PlaceholderConfig struct {
	ID        string            `json:"id"`
	Type      tree.ElementType  `json:"type"`
	Width     string            `json:"width"`
	Height    string            `json:"height"`
	Shape     sizing.Shape      `json:"shape"`
	Lines     int               `json:"lines,omitempty"`
	Animation animation.Spec    `json:"animation"`
	Style     map[string]string `json:"style,omitempty"`
}

// Override is a partial PlaceholderConfig merged shallowly onto the
// computed config when its key matches. Nil fields leave the computed
// value untouched.
type Override struct {
	Type      *tree.ElementType `json:"type,omitempty" yaml:"type,omitempty"`
	Width     *string           `json:"width,omitempty" yaml:"width,omitempty"`
	Height    *string           `json:"height,omitempty" yaml:"height,omitempty"`
	Shape     *sizing.Shape     `json:"shape,omitempty" yaml:"shape,omitempty"`
	Lines     *int              `json:"lines,omitempty" yaml:"lines,omitempty"`
	Animation *animation.Spec   `json:"animation,omitempty" yaml:"animation,omitempty"`
	Style     map[string]string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Theme controls placeholder coloring.
type Theme struct {
	Type           string `json:"type" yaml:"type"` // light | dark | custom
	BaseColor      string `json:"base_color,omitempty" yaml:"base_color,omitempty"`
	HighlightColor string `json:"highlight_color,omitempty" yaml:"highlight_color,omitempty"`
	BorderRadius   string `json:"border_radius,omitempty" yaml:"border_radius,omitempty"`
}

func (t *Theme) defaults() {
	if t.Type == "" {
		t.Type = "light"
	}
	if t.BaseColor == "" {
		switch t.Type {
		case "dark":
			t.BaseColor = "#2a2a2a"
		default:
			t.BaseColor = "#e0e0e0"
		}
	}
	if t.HighlightColor == "" {
		switch t.Type {
		case "dark":
			t.HighlightColor = "#3d3d3d"
		default:
			t.HighlightColor = "#f5f5f5"
		}
	}
	if t.BorderRadius == "" {
		t.BorderRadius = "4px"
	}
}

// Options are the caller-supplied knobs for one generation pass. All
// fields are optional.
type Options struct {
	// Animation is merged over per-type defaults over the built-in
	// shimmer preset.
	Animation *animation.Spec `json:"animation,omitempty" yaml:"animation,omitempty"`
	// Theme selects placeholder coloring.
	Theme *Theme `json:"theme,omitempty" yaml:"theme,omitempty"`
	// CustomOverrides maps selector keys (element id, ".class", ".tag",
	// "tag", ".auto-skeleton-<type>") to partial configs. Keys are tried
	// in that order; the first match wins.
	CustomOverrides map[string]Override `json:"custom_overrides,omitempty" yaml:"custom_overrides,omitempty"`
	// MinWidth/MinHeight floor pixel-valued placeholder dimensions.
	MinWidth  float64 `json:"min_width,omitempty" yaml:"min_width,omitempty"`
	MinHeight float64 `json:"min_height,omitempty" yaml:"min_height,omitempty"`
	// IgnoreElements lists selectors excluded from analysis. Consumed by
	// the pipeline, not by Generate.
	IgnoreElements []string `json:"ignore_elements,omitempty" yaml:"ignore_elements,omitempty"`
	// RespectUserMotion forces animation type none for every emitted
	// config when the host signals a reduced-motion preference.
	RespectUserMotion bool `json:"respect_user_motion,omitempty" yaml:"respect_user_motion,omitempty"`
	// ReducedMotion is the host signal itself. The pipeline fills it from
	// the measurement provider; direct Generate callers set it by hand.
	ReducedMotion bool `json:"reduced_motion,omitempty" yaml:"reduced_motion,omitempty"`
	// EnableCaching and CacheKey are a memoization hint consumed by the
	// pipeline's cache hook. Generate itself holds no cache.
	EnableCaching bool   `json:"enable_caching,omitempty" yaml:"enable_caching,omitempty"`
	CacheKey      string `json:"cache_key,omitempty" yaml:"cache_key,omitempty"`
}

// NodeKind discriminates renderable tree nodes.
type NodeKind string

const (
	// NodeContainer arranges children per its Layout.
	NodeContainer NodeKind = "container"
	// NodePlaceholder is one rendered placeholder shape.
	NodePlaceholder NodeKind = "placeholder"
	// NodeLine is one line of a multi-line text placeholder.
	NodeLine NodeKind = "line"
)

// Node is one node of the renderable placeholder tree.
type Node struct {
	Kind     NodeKind           `json:"kind"`
	Config   *PlaceholderConfig `json:"config,omitempty"`
	Layout   *tree.LayoutInfo   `json:"layout,omitempty"`
	Width    string             `json:"width,omitempty"`  // line nodes
	Height   string             `json:"height,omitempty"` // line nodes
	Children []*Node            `json:"children,omitempty"`
}

// GenerationMetadata summarises one generation pass.
type GenerationMetadata struct {
	GenerationTimeMS int64 `json:"generation_time_ms"`
	Complexity       int   `json:"complexity"`
	ElementCount     int   `json:"element_count"`
}

// GenerationResult is everything a renderer needs: the placeholder tree,
// the flat ordered configs, the resolved theme, and pass metadata.
// ElementCount always equals len(Configs).
type GenerationResult struct {
	Tree     *Node                `json:"tree"`
	Configs  []*PlaceholderConfig `json:"configs"`
	Theme    Theme                `json:"theme"`
	Metadata GenerationMetadata   `json:"metadata"`
}

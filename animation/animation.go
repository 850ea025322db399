// Package animation is a pure transform library for placeholder motion:
// built-in presets, three-way merge resolution, duration scaling, and
// motion-preference handling. It holds no state.
package animation

// Type names a placeholder animation.
type Type string

const (
	TypeShimmer Type = "shimmer"
	TypePulse   Type = "pulse"
	TypeWave    Type = "wave"
	TypeNone    Type = "none"
)

// Spec describes one placeholder animation. DurationMS and DelayMS are in
// milliseconds; Direction follows the CSS animation-direction keywords.
type Spec struct {
	Type       Type   `json:"type" yaml:"type"`
	DurationMS int    `json:"duration_ms" yaml:"duration_ms"`
	DelayMS    int    `json:"delay_ms,omitempty" yaml:"delay_ms,omitempty"`
	Direction  string `json:"direction,omitempty" yaml:"direction,omitempty"`
	Easing     string `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// Default is the built-in animation applied when neither the caller nor
// the element type specifies one.
func Default() Spec {
	return Spec{Type: TypeShimmer, DurationMS: 1500, Direction: "normal", Easing: "ease-in-out"}
}

// Preset returns the built-in spec for a named type, falling back to
// Default for unrecognized names.
func Preset(t Type) Spec {
	switch t {
	case TypePulse:
		return Spec{Type: TypePulse, DurationMS: 1200, Direction: "alternate", Easing: "ease-in-out"}
	case TypeWave:
		return Spec{Type: TypeWave, DurationMS: 1800, Direction: "normal", Easing: "linear"}
	case TypeNone:
		return Spec{Type: TypeNone}
	default:
		return Default()
	}
}

// Resolve merges a requested spec over an instance default over the
// built-in default. Zero-valued fields fall through to the next layer.
func Resolve(requested, instance *Spec) Spec {
	out := Default()
	for _, layer := range []*Spec{instance, requested} {
		if layer == nil {
			continue
		}
		if layer.Type != "" {
			out.Type = layer.Type
		}
		if layer.DurationMS > 0 {
			out.DurationMS = layer.DurationMS
		}
		if layer.DelayMS > 0 {
			out.DelayMS = layer.DelayMS
		}
		if layer.Direction != "" {
			out.Direction = layer.Direction
		}
		if layer.Easing != "" {
			out.Easing = layer.Easing
		}
	}
	if out.Type == TypeNone {
		return Spec{Type: TypeNone}
	}
	return out
}

// Scale multiplies the spec's duration and delay by factor. Factors at or
// below zero leave the spec unchanged.
func Scale(s Spec, factor float64) Spec {
	if factor <= 0 {
		return s
	}
	s.DurationMS = int(float64(s.DurationMS) * factor)
	s.DelayMS = int(float64(s.DelayMS) * factor)
	return s
}

// None disables motion entirely, used when the host signals a
// reduced-motion preference.
func None() Spec {
	return Spec{Type: TypeNone}
}

// Animated reports whether the spec produces visible motion.
func (s Spec) Animated() bool {
	return s.Type != "" && s.Type != TypeNone
}

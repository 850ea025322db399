package skeleton

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/afaq-khan2000/auto-skeleton/analyzer"
	"github.com/afaq-khan2000/auto-skeleton/animation"
	"github.com/afaq-khan2000/auto-skeleton/sizing"
	"github.com/afaq-khan2000/auto-skeleton/style"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// lastLineWidth is the hard-coded width of the final line of a multi-line
// text placeholder. Shortening the last line is what makes a block read as
// text rather than a grey slab; it is not caller-configurable.
const lastLineWidth = "70%"

// Generate converts an analysis result into placeholder configurations and
// a renderable placeholder tree. Any conversion failure surfaces as a
// *FailedError carrying the elapsed time; callers fall back to a static
// placeholder on it.
func Generate(res *tree.AnalysisResult, opts Options) (result *GenerationResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &FailedError{Elapsed: time.Since(start), Err: fmt.Errorf("conversion panic: %v", r)}
		}
	}()

	if res == nil {
		return nil, &FailedError{Elapsed: time.Since(start), Err: errors.New("nil analysis result")}
	}

	theme := Theme{}
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	theme.defaults()

	g := &generator{opts: opts, theme: theme}

	layout := res.Layout
	root := &Node{Kind: NodeContainer, Layout: &layout}
	for _, el := range res.Elements {
		root.Children = append(root.Children, g.build(el))
	}

	return &GenerationResult{
		Tree:    root,
		Configs: g.configs,
		Theme:   theme,
		Metadata: GenerationMetadata{
			GenerationTimeMS: time.Since(start).Milliseconds(),
			Complexity:       complexityScore(g.configs),
			ElementCount:     len(g.configs),
		},
	}, nil
}

type generator struct {
	opts    Options
	theme   Theme
	configs []*PlaceholderConfig
}

// build produces the config for one analyzed element and its renderable
// node, recursing into children. Config order matches document order.
func (g *generator) build(el *tree.AnalyzedElement) *Node {
	cfg := g.configFor(el)
	g.configs = append(g.configs, cfg)

	if len(el.Children) > 0 {
		layout := analyzer.SummarizeLayout(el.Style)
		node := &Node{Kind: NodeContainer, Config: cfg, Layout: &layout}
		for _, child := range el.Children {
			node.Children = append(node.Children, g.build(child))
		}
		return node
	}

	node := &Node{Kind: NodePlaceholder, Config: cfg}
	if cfg.Type == tree.TypeText && cfg.Lines > 1 {
		lineHeight := style.ParsePx(el.Style.FontSize, sizing.DefaultFontSize) * sizing.LineHeightFactor
		for i := 0; i < cfg.Lines; i++ {
			w := cfg.Width
			if i == cfg.Lines-1 {
				w = lastLineWidth
			}
			node.Children = append(node.Children, &Node{Kind: NodeLine, Width: w, Height: px(lineHeight)})
		}
	}
	return node
}

// configFor runs the base-geometry, enhancement, and override stages for
// one element, in that order.
func (g *generator) configFor(el *tree.AnalyzedElement) *PlaceholderConfig {
	size := sizing.Compute(el.Geometry, el.ElementType, el.Style, el.TextContent)

	cfg := &PlaceholderConfig{
		ID:        el.ID,
		Type:      el.ElementType,
		Width:     size.Width,
		Height:    size.Height,
		Shape:     size.Shape,
		Lines:     size.Lines,
		Animation: animation.Resolve(g.opts.Animation, typeDefaultAnimation(el.ElementType)),
		Style:     projectStyle(el.Style),
	}

	g.applyMinimums(cfg)
	enhance(cfg, el)
	g.applyOverride(cfg, el)

	if g.opts.RespectUserMotion && g.opts.ReducedMotion {
		cfg.Animation = animation.None()
	}
	return cfg
}

// enhance applies type-specific adjustments after base sizing.
func enhance(cfg *PlaceholderConfig, el *tree.AnalyzedElement) {
	switch cfg.Type {
	case tree.TypeImage:
		if cfg.Shape != sizing.ShapeCircular {
			cfg.Shape = sizing.ShapeRounded
		}
	case tree.TypeAvatar:
		cfg.Shape = sizing.ShapeCircular
		if cfg.Width != cfg.Height {
			cfg.Height = cfg.Width
		}
	case tree.TypeButton:
		if el.Geometry.Height <= 0 {
			cfg.Height = "40px"
		}
		if el.Geometry.Width <= 0 {
			cfg.Width = "120px"
		}
	case tree.TypeInput:
		if el.Geometry.Height <= 0 {
			cfg.Height = "40px"
		}
	}
}

// applyMinimums floors pixel-valued dimensions to the caller's minimums.
// Relative widths ("100%") pass through untouched.
func (g *generator) applyMinimums(cfg *PlaceholderConfig) {
	if g.opts.MinWidth > 0 {
		if w := style.ParsePx(cfg.Width, -1); w >= 0 && w < g.opts.MinWidth {
			cfg.Width = px(g.opts.MinWidth)
		}
	}
	if g.opts.MinHeight > 0 {
		if h := style.ParsePx(cfg.Height, -1); h >= 0 && h < g.opts.MinHeight {
			cfg.Height = px(g.opts.MinHeight)
		}
	}
}

// typeDefaultAnimation is the per-type instance layer of the animation
// merge. Only avatars deviate from the built-in default: a soft pulse
// reads better on circular shapes than a directional shimmer.
func typeDefaultAnimation(t tree.ElementType) *animation.Spec {
	if t == tree.TypeAvatar || t == tree.TypeIcon {
		return &animation.Spec{Type: animation.TypePulse}
	}
	return nil
}

// projectStyle carries over the restricted style subset a placeholder may
// inherit: margin, display, position, and flex alignment. Padding is
// always zeroed; placeholders never inherit padding.
func projectStyle(vs tree.VisualStyle) map[string]string {
	st := map[string]string{"padding": "0"}
	if vs.Margin != "" {
		st["margin"] = vs.Margin
	}
	if vs.Display != "" {
		st["display"] = vs.Display
	}
	if vs.Position != "" && vs.Position != "static" {
		st["position"] = vs.Position
	}
	if vs.AlignItems != "" {
		st["align-items"] = vs.AlignItems
	}
	if vs.JustifyContent != "" {
		st["justify-content"] = vs.JustifyContent
	}
	return st
}

// complexityScore sums per-config weights: one per element, the line count
// for multi-line text, one for animated, one for circular. Generation
// metadata only; nothing branches on it.
func complexityScore(configs []*PlaceholderConfig) int {
	score := 0
	for _, c := range configs {
		score++
		if c.Lines > 1 {
			score += c.Lines
		}
		if c.Animation.Animated() {
			score++
		}
		if c.Shape == sizing.ShapeCircular {
			score++
		}
	}
	return score
}

// px renders a numeric dimension as a whole-pixel CSS value.
func px(f float64) string {
	return strconv.Itoa(int(math.Round(f))) + "px"
}

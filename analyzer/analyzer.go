// Package analyzer walks a rendered element tree and produces the
// annotated tree the generator consumes. It owns the stabilization wait:
// geometry is only trusted once consecutive measurements agree, so
// placeholders never mirror a half-settled layout.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/afaq-khan2000/auto-skeleton/classify"
	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/selector"
	"github.com/afaq-khan2000/auto-skeleton/style"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// ErrElementNotFound is returned when the root handle is absent. Callers
// should retry after the real tree mounts.
var ErrElementNotFound = errors.New("analyzer: root element not found")

// ErrStabilizeTimeout is returned when layout never settled within the
// configured deadline. Callers may retry with a longer timeout or fall
// back to a static placeholder.
var ErrStabilizeTimeout = errors.New("analyzer: layout did not stabilize")

// Config controls one analyzer instance.
type Config struct {
	// Timeout bounds the stabilization wait. Default: 5s.
	Timeout time.Duration
	// MaxDepth bounds the recursive walk. Children below the cutoff are
	// silently omitted. Default: 10.
	MaxDepth int
	// FrameInterval is the re-measurement cadence during stabilization,
	// approximating an animation-frame tick. Default: 16ms.
	FrameInterval time.Duration
	// KeepInvisible disables invisible-element filtering. Off by default:
	// hidden elements and their entire subtrees are pruned.
	KeepInvisible bool
	// Ignore lists selectors whose matching elements (and subtrees) are
	// excluded from analysis.
	Ignore []string

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 10
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = 16 * time.Millisecond
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Analyzer runs analysis passes against one measurement provider. It reads
// the inspected tree and never mutates it.
type Analyzer struct {
	prov   measure.Provider
	cfg    Config
	logger *slog.Logger
}

// New creates an Analyzer. The provider is the only contact the analyzer
// has with the rendered environment.
func New(prov measure.Provider, cfg Config) *Analyzer {
	cfg.defaults()
	return &Analyzer{prov: prov, cfg: cfg, logger: cfg.Logger}
}

// Analyze inspects the tree rooted at root and returns an immutable
// AnalysisResult. The environment precondition is checked once up front;
// then the root geometry is stabilized before any measurement is trusted.
func (a *Analyzer) Analyze(ctx context.Context, root measure.Element) (*tree.AnalysisResult, error) {
	start := time.Now()

	if root == nil {
		return nil, ErrElementNotFound
	}
	if err := a.prov.Check(ctx); err != nil {
		return nil, fmt.Errorf("analyzer: environment check: %w", err)
	}
	if err := a.stabilize(ctx, root); err != nil {
		return nil, err
	}

	w := &walker{a: a}
	rootEl, err := w.visit(ctx, root, 1)
	if err != nil {
		return nil, err
	}

	var elements []*tree.AnalyzedElement
	var layout tree.LayoutInfo
	if rootEl != nil {
		elements = []*tree.AnalyzedElement{rootEl}
		layout = SummarizeLayout(rootEl.Style)
	} else {
		layout = tree.LayoutInfo{ContainerType: tree.ContainerBlock}
	}

	meta := tree.ComponentMetadata{
		ComponentName:  componentName(root),
		Responsive:     a.responsive(ctx, rootEl),
		Complexity:     ComplexityOf(w.count, w.deepest),
		AnalysisTimeMS: time.Since(start).Milliseconds(),
	}

	a.logger.Debug("analyzer: pass complete",
		"elements", w.count,
		"depth", w.deepest,
		"complexity", meta.Complexity,
		"elapsed", time.Since(start))

	return &tree.AnalysisResult{Elements: elements, Layout: layout, Metadata: meta}, nil
}

// walker tracks per-pass state: the element counter for generated IDs and
// the structural totals feeding the complexity bucket.
type walker struct {
	a       *Analyzer
	nextID  int
	count   int
	deepest int
}

func (w *walker) visit(ctx context.Context, el measure.Element, depth int) (*tree.AnalyzedElement, error) {
	tag := el.Tag()
	id := el.Attr("id")
	class := el.Attr("class")

	if selector.MatchAny(w.a.cfg.Ignore, tag, id, class, el.Attr) {
		return nil, nil
	}

	visible, err := w.a.prov.Visible(ctx, el)
	if err != nil {
		return nil, fmt.Errorf("analyzer: visibility of <%s>: %w", tag, err)
	}
	if !visible && !w.a.cfg.KeepInvisible {
		// Strict subtree pruning: a hidden container hides everything
		// under it, even descendants that force visibility back on.
		return nil, nil
	}

	geo, err := w.a.prov.Geometry(ctx, el)
	if err != nil {
		return nil, fmt.Errorf("analyzer: measure <%s>: %w", tag, err)
	}
	raw, err := w.a.prov.RawStyle(ctx, el)
	if err != nil {
		return nil, fmt.Errorf("analyzer: style of <%s>: %w", tag, err)
	}
	vs := style.Extract(raw)
	text := el.Text()

	w.nextID++
	if id == "" {
		id = fmt.Sprintf("el-%d", w.nextID)
	}

	node := &tree.AnalyzedElement{
		ID:          id,
		TagName:     tag,
		ClassName:   class,
		Geometry:    geo,
		Style:       vs,
		TextContent: text,
		IsVisible:   visible,
		ElementType: classify.Classify(tag, class, vs.Display, el.Attr("role"), text),
	}

	w.count++
	if depth > w.deepest {
		w.deepest = depth
	}

	if depth < w.a.cfg.MaxDepth {
		kids, err := el.Children(ctx)
		if err != nil {
			return nil, fmt.Errorf("analyzer: children of <%s>: %w", tag, err)
		}
		for _, kid := range kids {
			child, err := w.visit(ctx, kid, depth+1)
			if err != nil {
				return nil, err
			}
			if child != nil {
				node.Children = append(node.Children, child)
			}
		}
	}

	return node, nil
}

// responsive reports whether the root adapts to the window: a declared
// width in relative units, or a measured width spanning the viewport.
// Computed style resolves relative widths to pixels on live pages, so the
// span comparison is the branch that fires there.
func (a *Analyzer) responsive(ctx context.Context, rootEl *tree.AnalyzedElement) bool {
	if rootEl == nil {
		return false
	}
	if style.IsRelative(rootEl.Style.Width) {
		return true
	}
	vp, err := a.prov.Viewport(ctx)
	if err != nil || vp.Width <= 0 {
		return false
	}
	return rootEl.Geometry.Width >= vp.Width-1
}

// componentName derives a display name for the analyzed component from
// its data-component attribute or id.
func componentName(root measure.Element) string {
	if name := root.Attr("data-component"); name != "" {
		return name
	}
	return root.Attr("id")
}

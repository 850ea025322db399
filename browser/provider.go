package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-rod/rod"

	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// styleProps are the computed properties read per element: everything the
// style extraction consumes plus the visibility inputs.
var styleProps = []string{
	"background-color", "border-radius", "margin", "padding",
	"font-size", "font-weight", "display", "position",
	"flex-direction", "flex-wrap", "justify-content", "align-items",
	"gap", "grid-template-columns", "width", "height",
	"visibility", "opacity",
}

// pageElement adapts a Rod element handle to the measurement surface.
type pageElement struct {
	el *rod.Element
}

func (e *pageElement) Tag() string {
	res, err := e.el.Eval(`() => this.tagName.toLowerCase()`)
	if err != nil {
		return ""
	}
	return res.Value.Str()
}

func (e *pageElement) Attr(name string) string {
	v, err := e.el.Attribute(name)
	if err != nil || v == nil {
		return ""
	}
	return *v
}

func (e *pageElement) Text() string {
	// Own direct text nodes only; descendant text belongs to the
	// descendants.
	res, err := e.el.Eval(`() => Array.from(this.childNodes)
		.filter(n => n.nodeType === Node.TEXT_NODE)
		.map(n => n.textContent)
		.join(' ')`)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(res.Value.Str())
}

func (e *pageElement) Children(ctx context.Context) ([]measure.Element, error) {
	els, err := e.el.Context(ctx).Elements(":scope > *")
	if err != nil {
		return nil, fmt.Errorf("browser: children: %w", err)
	}
	out := make([]measure.Element, len(els))
	for i, el := range els {
		out[i] = &pageElement{el: el}
	}
	return out, nil
}

// pageProvider reads geometry, style, and visibility off a live page.
// The bound page can be swapped when a resolver opens a new tab;
// per-element reads go through the element's own handle and are
// unaffected by rebinding.
type pageProvider struct {
	mu   sync.RWMutex
	page *rod.Page
}

func (p *pageProvider) bind(page *rod.Page) {
	p.mu.Lock()
	p.page = page
	p.mu.Unlock()
}

func (p *pageProvider) current() *rod.Page {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.page
}

func (p *pageProvider) Check(ctx context.Context) error {
	page := p.current()
	if page == nil {
		return measure.ErrNoSurface
	}
	res, err := page.Context(ctx).Eval(`() => document.readyState`)
	if err != nil {
		return fmt.Errorf("%w: %v", measure.ErrNoSurface, err)
	}
	if res.Value.Str() == "" {
		return measure.ErrNoSurface
	}
	return nil
}

func (p *pageProvider) Geometry(ctx context.Context, el measure.Element) (tree.Geometry, error) {
	pe, err := asPageElement(el)
	if err != nil {
		return tree.Geometry{}, err
	}
	res, err := pe.el.Context(ctx).Eval(`() => {
		const r = this.getBoundingClientRect();
		return { width: r.width, height: r.height, x: r.x, y: r.y };
	}`)
	if err != nil {
		return tree.Geometry{}, fmt.Errorf("browser: bounding rect: %w", err)
	}
	v := res.Value
	return tree.Geometry{
		Width:  v.Get("width").Num(),
		Height: v.Get("height").Num(),
		X:      v.Get("x").Num(),
		Y:      v.Get("y").Num(),
	}, nil
}

func (p *pageProvider) RawStyle(ctx context.Context, el measure.Element) (map[string]string, error) {
	pe, err := asPageElement(el)
	if err != nil {
		return nil, err
	}
	res, err := pe.el.Context(ctx).Eval(`(props) => {
		const cs = getComputedStyle(this);
		const out = {};
		for (const p of props) {
			out[p] = cs.getPropertyValue(p);
		}
		return out;
	}`, styleProps)
	if err != nil {
		return nil, fmt.Errorf("browser: computed style: %w", err)
	}
	raw := map[string]string{}
	for k, v := range res.Value.Map() {
		raw[k] = v.Str()
	}
	return raw, nil
}

func (p *pageProvider) Visible(ctx context.Context, el measure.Element) (bool, error) {
	geo, err := p.Geometry(ctx, el)
	if err != nil {
		return false, err
	}
	raw, err := p.RawStyle(ctx, el)
	if err != nil {
		return false, err
	}
	vp, err := p.Viewport(ctx)
	if err != nil {
		return false, err
	}
	return measure.Decide(geo, raw["display"], raw["visibility"], raw["opacity"], 0, vp), nil
}

func (p *pageProvider) ReducedMotion(ctx context.Context) (bool, error) {
	page := p.current()
	if page == nil {
		return false, measure.ErrNoSurface
	}
	res, err := page.Context(ctx).Eval(
		`() => matchMedia('(prefers-reduced-motion: reduce)').matches`)
	if err != nil {
		return false, fmt.Errorf("browser: reduced motion query: %w", err)
	}
	return res.Value.Bool(), nil
}

func (p *pageProvider) Viewport(ctx context.Context) (measure.Viewport, error) {
	page := p.current()
	if page == nil {
		return measure.Viewport{}, measure.ErrNoSurface
	}
	res, err := page.Context(ctx).Eval(
		`() => ({ width: window.innerWidth, height: window.innerHeight })`)
	if err != nil {
		return measure.Viewport{}, fmt.Errorf("browser: viewport: %w", err)
	}
	return measure.Viewport{
		Width:  res.Value.Get("width").Num(),
		Height: res.Value.Get("height").Num(),
	}, nil
}

func asPageElement(el measure.Element) (*pageElement, error) {
	pe, ok := el.(*pageElement)
	if !ok {
		return nil, fmt.Errorf("browser: foreign element handle %T", el)
	}
	return pe, nil
}

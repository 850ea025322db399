package snapshot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/style"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// nodeElement adapts one parsed HTML node to the measurement surface.
type nodeElement struct {
	n *html.Node
}

func (e *nodeElement) Tag() string {
	return strings.ToLower(e.n.Data)
}

func (e *nodeElement) Attr(name string) string {
	return attrValue(e.n, name)
}

func (e *nodeElement) Text() string {
	var sb strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

func (e *nodeElement) Children(ctx context.Context) ([]measure.Element, error) {
	var out []measure.Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &nodeElement{n: c})
		}
	}
	return out, nil
}

// Provider reads declared geometry and inline styles off a parsed
// snapshot. It never signals reduced motion; offline documents carry no
// host preference.
type Provider struct {
	doc *Document

	// vp is the assumed window; html and body elements without declared
	// dimensions take its size.
	vp measure.Viewport
}

// NewProvider creates a Provider for the document with a 1280x720
// assumed viewport.
func NewProvider(doc *Document) *Provider {
	return &Provider{doc: doc, vp: measure.Viewport{Width: 1280, Height: 720}}
}

func (p *Provider) Check(ctx context.Context) error {
	if p.doc == nil || p.doc.root == nil {
		return fmt.Errorf("%w: no document", measure.ErrNoSurface)
	}
	return nil
}

// Geometry derives the bounding box from the declared facts: inline
// style width/height first, then width/height attributes, then the
// viewport for html/body. left/top inline styles supply the origin.
func (p *Provider) Geometry(ctx context.Context, el measure.Element) (tree.Geometry, error) {
	ne, err := asNodeElement(el)
	if err != nil {
		return tree.Geometry{}, err
	}
	props := inlineStyle(ne.n)

	geo := tree.Geometry{
		Width:  declaredDim(props["width"], attrValue(ne.n, "width")),
		Height: declaredDim(props["height"], attrValue(ne.n, "height")),
		X:      style.ParsePx(props["left"], 0),
		Y:      style.ParsePx(props["top"], 0),
	}

	if geo.Width == 0 && geo.Height == 0 {
		switch ne.Tag() {
		case "html", "body":
			geo.Width, geo.Height = p.vp.Width, p.vp.Height
		}
	}
	return geo, nil
}

func (p *Provider) RawStyle(ctx context.Context, el measure.Element) (map[string]string, error) {
	ne, err := asNodeElement(el)
	if err != nil {
		return nil, err
	}
	return inlineStyle(ne.n), nil
}

func (p *Provider) Visible(ctx context.Context, el measure.Element) (bool, error) {
	ne, err := asNodeElement(el)
	if err != nil {
		return false, err
	}
	if attrValue(ne.n, "hidden") != "" {
		return false, nil
	}
	geo, err := p.Geometry(ctx, el)
	if err != nil {
		return false, err
	}
	props := inlineStyle(ne.n)

	// Declared geometry is sparse: an element without any dimensions is
	// still visible as long as nothing hides it.
	if geo.Width == 0 && geo.Height == 0 {
		return props["display"] != "none" && props["visibility"] != "hidden" &&
			props["opacity"] != "0", nil
	}
	return measure.Decide(geo, props["display"], props["visibility"], props["opacity"], 0, p.vp), nil
}

func (p *Provider) ReducedMotion(ctx context.Context) (bool, error) {
	return false, nil
}

func (p *Provider) Viewport(ctx context.Context) (measure.Viewport, error) {
	return p.vp, nil
}

// declaredDim resolves a dimension from an inline style value or a bare
// numeric attribute.
func declaredDim(styleVal, attrVal string) float64 {
	if styleVal != "" {
		if v := style.ParsePx(styleVal, 0); v > 0 {
			return v
		}
	}
	if attrVal != "" {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(attrVal, "px"), 64); err == nil {
			return v
		}
	}
	return 0
}

func asNodeElement(el measure.Element) (*nodeElement, error) {
	ne, ok := el.(*nodeElement)
	if !ok {
		return nil, fmt.Errorf("snapshot: foreign element handle %T", el)
	}
	return ne, nil
}

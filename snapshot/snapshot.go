// Package snapshot provides an offline measurement surface over a static
// HTML document: geometry from declared width/height attributes and
// inline styles, visibility from inline styles. No live layout runs, so
// measurements are only as good as what the markup declares; it exists
// for tests, fixtures, and environments without a browser.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/selector"
)

// Document is a parsed HTML snapshot.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse: %w", err)
	}
	return &Document{root: root}, nil
}

// Open parses an HTML snapshot file.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Root resolves the analysis root by simple CSS selector. An empty
// selector means the document body.
func (d *Document) Root(sel string) (measure.Element, error) {
	if sel == "" {
		sel = "body"
	}
	s := selector.Parse(sel)
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if s.Matches(n.Data, attrValue(n, "id"), attrValue(n, "class"), func(name string) string {
			return attrValue(n, name)
		}) {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("snapshot: no element matches %q", sel)
	}
	return &nodeElement{n: found}, nil
}

// walk visits element nodes depth-first; fn returning false prunes the
// subtree.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if n.Type == html.ElementNode && !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// inlineStyle parses a style attribute into a property map.
func inlineStyle(n *html.Node) map[string]string {
	raw := attrValue(n, "style")
	if raw == "" {
		return nil
	}
	props := map[string]string{}
	for _, decl := range strings.Split(raw, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return props
}

package skeleton

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serialises a generation result as standalone skeleton markup:
// nested divs with inline sizing and layout, plus shape/animation classes
// for the host stylesheet to hook. The animation keyframes themselves are
// the host's concern.
func RenderHTML(res *GenerationResult) (string, error) {
	if res == nil || res.Tree == nil {
		return "", fmt.Errorf("skeleton: render: empty generation result")
	}

	root := renderNode(res.Tree, res.Theme)
	root.Attr = append(root.Attr, html.Attribute{Key: "class", Val: "skeleton-root"})

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", fmt.Errorf("skeleton: render: %w", err)
	}
	return sb.String(), nil
}

func renderNode(n *Node, theme Theme) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

	switch n.Kind {
	case NodeContainer:
		el.Attr = []html.Attribute{
			{Key: "class", Val: "skeleton-group"},
			{Key: "style", Val: layoutStyle(n)},
		}
	case NodeLine:
		el.Attr = []html.Attribute{
			{Key: "class", Val: "skeleton skeleton-line"},
			{Key: "style", Val: inline(map[string]string{
				"width":            n.Width,
				"height":           n.Height,
				"background-color": theme.BaseColor,
				"border-radius":    theme.BorderRadius,
			})},
		}
	default:
		el.Attr = []html.Attribute{
			{Key: "class", Val: placeholderClass(n.Config)},
			{Key: "style", Val: placeholderStyle(n.Config, theme)},
		}
	}

	// A multi-line text placeholder renders its lines instead of itself.
	if n.Kind == NodePlaceholder && len(n.Children) > 0 {
		el.Attr[0].Val = "skeleton-text"
		el.Attr[1].Val = inline(map[string]string{"width": n.Config.Width})
	}

	for _, child := range n.Children {
		el.AppendChild(renderNode(child, theme))
	}
	return el
}

func placeholderClass(cfg *PlaceholderConfig) string {
	classes := []string{"skeleton", "skeleton--" + string(cfg.Shape)}
	if cfg.Animation.Animated() {
		classes = append(classes, "skeleton--"+string(cfg.Animation.Type))
	}
	return strings.Join(classes, " ")
}

func placeholderStyle(cfg *PlaceholderConfig, theme Theme) string {
	props := map[string]string{
		"width":            cfg.Width,
		"height":           cfg.Height,
		"background-color": theme.BaseColor,
	}
	switch cfg.Shape {
	case "circular":
		props["border-radius"] = "50%"
	case "rounded":
		props["border-radius"] = theme.BorderRadius
	}
	if cfg.Animation.Animated() {
		props["animation-duration"] = fmt.Sprintf("%dms", cfg.Animation.DurationMS)
		if cfg.Animation.DelayMS > 0 {
			props["animation-delay"] = fmt.Sprintf("%dms", cfg.Animation.DelayMS)
		}
	}
	for k, v := range cfg.Style {
		props[k] = v
	}
	return inline(props)
}

func layoutStyle(n *Node) string {
	props := map[string]string{}
	if cfg := n.Config; cfg != nil {
		for k, v := range cfg.Style {
			props[k] = v
		}
	}
	if li := n.Layout; li != nil {
		switch li.ContainerType {
		case "flex":
			props["display"] = "flex"
			props["flex-direction"] = li.Direction
			if li.Wrap != "" {
				props["flex-wrap"] = li.Wrap
			}
			if li.AlignItems != "" {
				props["align-items"] = li.AlignItems
			}
			if li.JustifyContent != "" {
				props["justify-content"] = li.JustifyContent
			}
		case "grid":
			props["display"] = "grid"
			if li.GridColumns != "" {
				props["grid-template-columns"] = li.GridColumns
			}
		case "inline-block":
			props["display"] = "inline-block"
		default:
			props["display"] = "block"
		}
		if li.Gap != "" {
			props["gap"] = li.Gap
		}
	}
	return inline(props)
}

// inline renders a property map as a deterministic inline-style string.
func inline(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k, v := range props {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(props[k])
	}
	return sb.String()
}

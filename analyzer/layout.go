package analyzer

import "github.com/afaq-khan2000/auto-skeleton/tree"

// SummarizeLayout reduces a root container's style to the layout summary
// the generator uses to arrange sibling placeholders.
func SummarizeLayout(vs tree.VisualStyle) tree.LayoutInfo {
	switch vs.Display {
	case "flex", "inline-flex":
		direction := vs.FlexDirection
		if direction == "" {
			direction = "row"
		}
		return tree.LayoutInfo{
			ContainerType:  tree.ContainerFlex,
			Direction:      direction,
			Wrap:           vs.FlexWrap,
			Gap:            vs.Gap,
			AlignItems:     vs.AlignItems,
			JustifyContent: vs.JustifyContent,
		}
	case "grid", "inline-grid":
		return tree.LayoutInfo{
			ContainerType: tree.ContainerGrid,
			Gap:           vs.Gap,
			GridColumns:   vs.GridColumns,
		}
	case "inline-block":
		return tree.LayoutInfo{ContainerType: tree.ContainerInlineBlock}
	default:
		return tree.LayoutInfo{ContainerType: tree.ContainerBlock}
	}
}

// ComplexityOf buckets a tree by total node count and max nesting depth.
func ComplexityOf(nodes, depth int) tree.Complexity {
	switch {
	case nodes <= 5 && depth <= 2:
		return tree.ComplexitySimple
	case nodes <= 20 && depth <= 4:
		return tree.ComplexityMedium
	default:
		return tree.ComplexityComplex
	}
}

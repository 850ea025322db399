// Package tree defines the structured types produced by DOM analysis.
// These are the public API contract: the generator, the cache, and any
// custom consumer imports this package to process analysis results.
package tree

// Geometry is the measured bounding box of a rendered element, in logical
// units (CSS pixels). Width and height are non-negative; x/y may be
// negative for off-screen elements. Produced fresh on every measurement,
// never cached by element identity.
type Geometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// VisualStyle is the canonicalized subset of computed style the pipeline
// cares about. Absent properties are empty strings; present values are
// normalized (colors to #rrggbb or rgba(...) with alpha<1 preserved,
// pixel dimensions rounded to whole pixels).
type VisualStyle struct {
	BackgroundColor string `json:"background_color,omitempty"`
	BorderRadius    string `json:"border_radius,omitempty"`
	Margin          string `json:"margin,omitempty"`
	Padding         string `json:"padding,omitempty"`
	FontSize        string `json:"font_size,omitempty"`
	FontWeight      string `json:"font_weight,omitempty"`
	Display         string `json:"display,omitempty"`
	Position        string `json:"position,omitempty"`
	FlexDirection   string `json:"flex_direction,omitempty"`
	FlexWrap        string `json:"flex_wrap,omitempty"`
	JustifyContent  string `json:"justify_content,omitempty"`
	AlignItems      string `json:"align_items,omitempty"`
	Gap             string `json:"gap,omitempty"`
	GridColumns     string `json:"grid_template_columns,omitempty"`
	Width           string `json:"width,omitempty"`
	Height          string `json:"height,omitempty"`
}

// ElementType is the inferred semantic role of a rendered element. It is a
// closed enumeration; classification is deterministic given the same
// tag/class/style/content inputs.
type ElementType string

const (
	TypeText      ElementType = "text"
	TypeImage     ElementType = "image"
	TypeButton    ElementType = "button"
	TypeInput     ElementType = "input"
	TypeContainer ElementType = "container"
	TypeIcon      ElementType = "icon"
	TypeAvatar    ElementType = "avatar"
	TypeCard      ElementType = "card"
	TypeList      ElementType = "list"
	TypeUnknown   ElementType = "unknown"
)

// AnalyzedElement is one node of the annotated element tree. Built by the
// analyzer during a single pass and immutable once returned. ID is the
// element's DOM id when present, otherwise a generated el-<n> identifier
// stable within one pass but not across passes.
type AnalyzedElement struct {
	ID          string             `json:"id"`
	TagName     string             `json:"tag_name"`
	ClassName   string             `json:"class_name,omitempty"`
	Geometry    Geometry           `json:"geometry"`
	Style       VisualStyle        `json:"style"`
	Children    []*AnalyzedElement `json:"children,omitempty"`
	TextContent string             `json:"text_content,omitempty"`
	IsVisible   bool               `json:"is_visible"`
	ElementType ElementType        `json:"element_type"`
}

// ContainerType describes how a container arranges its children.
type ContainerType string

const (
	ContainerFlex        ContainerType = "flex"
	ContainerGrid        ContainerType = "grid"
	ContainerBlock       ContainerType = "block"
	ContainerInlineBlock ContainerType = "inline-block"
)

// LayoutInfo summarises the root container of an analyzed subtree.
type LayoutInfo struct {
	ContainerType  ContainerType `json:"container_type"`
	Direction      string        `json:"direction,omitempty"`
	Wrap           string        `json:"wrap,omitempty"`
	Gap            string        `json:"gap,omitempty"`
	AlignItems     string        `json:"align_items,omitempty"`
	JustifyContent string        `json:"justify_content,omitempty"`
	GridColumns    string        `json:"grid_columns,omitempty"`
}

// Complexity buckets the structural weight of an analyzed tree.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ComponentMetadata carries pass-level information about one analysis.
type ComponentMetadata struct {
	ComponentName  string     `json:"component_name,omitempty"`
	Responsive     bool       `json:"responsive"`
	Complexity     Complexity `json:"complexity"`
	AnalysisTimeMS int64      `json:"analysis_time_ms"`
}

// AnalysisResult is the unit exchanged between the analyzer and the
// generator. Immutable; superseded wholesale by each new analysis pass,
// never patched in place.
type AnalysisResult struct {
	Elements []*AnalyzedElement `json:"elements"`
	Layout   LayoutInfo         `json:"layout"`
	Metadata ComponentMetadata  `json:"metadata"`
}

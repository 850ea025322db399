package sizing

import (
	"strings"
	"testing"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

func TestCompute_TextSingleLine(t *testing.T) {
	geo := tree.Geometry{Width: 80, Height: 20}
	vs := tree.VisualStyle{FontSize: "20px"}

	s := Compute(geo, tree.TypeText, vs, "Title")
	if s.Width != "80px" {
		t.Errorf("Width: got %s, want 80px", s.Width)
	}
	if s.Height != "24px" { // 20 * 1.2
		t.Errorf("Height: got %s, want 24px", s.Height)
	}
	if s.Lines != 1 {
		t.Errorf("Lines: got %d, want 1", s.Lines)
	}
}

func TestCompute_TextMultiLine(t *testing.T) {
	// 300px wide at 16px font → floor(300/9.6) = 31 chars per line.
	// 70 chars → ceil(70/31) = 3 lines.
	geo := tree.Geometry{Width: 300, Height: 60}
	text := strings.Repeat("x", 70)

	s := Compute(geo, tree.TypeText, tree.VisualStyle{}, text)
	if s.Lines != 3 {
		t.Errorf("Lines: got %d, want 3", s.Lines)
	}
	// 3 lines * 16 * 1.2 = 57.6 → 58px
	if s.Height != "58px" {
		t.Errorf("Height: got %s, want 58px", s.Height)
	}
}

func TestCompute_TextLineCap(t *testing.T) {
	geo := tree.Geometry{Width: 100, Height: 400}
	s := Compute(geo, tree.TypeText, tree.VisualStyle{}, strings.Repeat("y", 2000))
	if s.Lines != MaxTextLines {
		t.Errorf("Lines: got %d, want cap %d", s.Lines, MaxTextLines)
	}
}

func TestCompute_AvatarSquareCircular(t *testing.T) {
	s := Compute(tree.Geometry{Width: 64, Height: 48}, tree.TypeAvatar, tree.VisualStyle{}, "")
	if s.Width != "48px" || s.Height != "48px" {
		t.Errorf("avatar: got %sx%s, want 48px square", s.Width, s.Height)
	}
	if s.Shape != ShapeCircular {
		t.Errorf("avatar shape: got %s, want circular", s.Shape)
	}

	// Missing geometry falls back to the default side.
	s = Compute(tree.Geometry{}, tree.TypeAvatar, tree.VisualStyle{}, "")
	if s.Width != "40px" || s.Height != "40px" {
		t.Errorf("default avatar: got %sx%s, want 40px square", s.Width, s.Height)
	}
}

func TestCompute_ButtonInputMinHeights(t *testing.T) {
	s := Compute(tree.Geometry{Width: 90, Height: 24}, tree.TypeButton, tree.VisualStyle{}, "")
	if s.Height != "36px" {
		t.Errorf("button height: got %s, want 36px", s.Height)
	}
	s = Compute(tree.Geometry{Height: 30}, tree.TypeButton, tree.VisualStyle{}, "")
	if s.Width != "120px" {
		t.Errorf("button default width: got %s, want 120px", s.Width)
	}

	s = Compute(tree.Geometry{Width: 240, Height: 28}, tree.TypeInput, tree.VisualStyle{}, "")
	if s.Height != "40px" {
		t.Errorf("input height: got %s, want 40px", s.Height)
	}
}

func TestCompute_ImageAspectRatio(t *testing.T) {
	s := Compute(tree.Geometry{Width: 320, Height: 180}, tree.TypeImage, tree.VisualStyle{}, "")
	if s.Width != "320px" || s.Height != "180px" {
		t.Errorf("image: got %sx%s, want 320px x 180px", s.Width, s.Height)
	}

	// Overlong width rescales the height proportionally.
	s = Compute(tree.Geometry{Width: 1600, Height: 900}, tree.TypeImage, tree.VisualStyle{}, "")
	if s.Width != "800px" || s.Height != "450px" {
		t.Errorf("capped image: got %sx%s, want 800px x 450px", s.Width, s.Height)
	}

	// Missing geometry defaults.
	s = Compute(tree.Geometry{}, tree.TypeImage, tree.VisualStyle{}, "")
	if s.Width != "200px" || s.Height != "150px" {
		t.Errorf("default image: got %sx%s, want 200px x 150px", s.Width, s.Height)
	}
}

func TestCompute_DefaultFallbacks(t *testing.T) {
	s := Compute(tree.Geometry{}, tree.TypeContainer, tree.VisualStyle{}, "")
	if s.Width != "100%" {
		t.Errorf("zero width: got %s, want 100%%", s.Width)
	}
	if s.Height != "20px" {
		t.Errorf("zero height: got %s, want 20px", s.Height)
	}

	s = Compute(tree.Geometry{Width: 900, Height: 6}, tree.TypeContainer, tree.VisualStyle{}, "")
	if s.Width != "100%" {
		t.Errorf("oversized width: got %s, want 100%%", s.Width)
	}
	if s.Height != "16px" {
		t.Errorf("tiny height: got %s, want 16px", s.Height)
	}

	s = Compute(tree.Geometry{Width: 12, Height: 30}, tree.TypeContainer, tree.VisualStyle{}, "")
	if s.Width != "20px" {
		t.Errorf("narrow width: got %s, want 20px floor", s.Width)
	}
}

func TestCompute_ShapeFromRadius(t *testing.T) {
	vs := tree.VisualStyle{BorderRadius: "8px"}
	s := Compute(tree.Geometry{Width: 200, Height: 100}, tree.TypeCard, vs, "")
	if s.Shape != ShapeRounded {
		t.Errorf("radius 8: got %s, want rounded", s.Shape)
	}

	vs = tree.VisualStyle{BorderRadius: "50px"}
	s = Compute(tree.Geometry{Width: 200, Height: 100}, tree.TypeCard, vs, "")
	if s.Shape != ShapeCircular {
		t.Errorf("radius >= half shorter side: got %s, want circular", s.Shape)
	}

	s = Compute(tree.Geometry{Width: 200, Height: 100}, tree.TypeCard, tree.VisualStyle{}, "")
	if s.Shape != ShapeRectangular {
		t.Errorf("no radius: got %s, want rectangular", s.Shape)
	}

	s = Compute(tree.Geometry{Width: 32, Height: 32}, tree.TypeIcon, tree.VisualStyle{}, "")
	if s.Shape != ShapeCircular {
		t.Errorf("icon: got %s, want circular", s.Shape)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	geo := tree.Geometry{Width: 333, Height: 77}
	vs := tree.VisualStyle{FontSize: "14px", BorderRadius: "6px"}
	a := Compute(geo, tree.TypeText, vs, "hello world, several words long")
	b := Compute(geo, tree.TypeText, vs, "hello world, several words long")
	if a != b {
		t.Errorf("Compute not idempotent: %+v vs %+v", a, b)
	}
}

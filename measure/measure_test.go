package measure

import (
	"testing"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

func TestDecide(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720}
	box := tree.Geometry{Width: 100, Height: 40, X: 10, Y: 10}

	cases := []struct {
		name       string
		geo        tree.Geometry
		display    string
		visibility string
		opacity    string
		vp         Viewport
		want       bool
	}{
		{"plain visible", box, "block", "visible", "1", vp, true},
		{"display none", box, "none", "visible", "1", vp, false},
		{"visibility hidden", box, "block", "hidden", "1", vp, false},
		{"opacity zero", box, "block", "visible", "0", vp, false},
		{"opacity zero point zero", box, "block", "visible", "0.0", vp, false},
		{"opacity low but nonzero", box, "block", "visible", "0.01", vp, true},
		{"both dims under threshold", tree.Geometry{Width: 4, Height: 4}, "block", "", "", vp, false},
		{"one dim under threshold", tree.Geometry{Width: 4, Height: 40}, "block", "", "", vp, true},
		{"far above viewport", tree.Geometry{Width: 100, Height: 40, X: 10, Y: -500}, "block", "", "", vp, false},
		{"just above the fold", tree.Geometry{Width: 100, Height: 40, X: 10, Y: -90}, "block", "", "", vp, true},
		{"far right of viewport", tree.Geometry{Width: 100, Height: 40, X: 2000, Y: 10}, "block", "", "", vp, false},
		{"below within margin", tree.Geometry{Width: 100, Height: 40, X: 10, Y: 780}, "block", "", "", vp, true},
		{"zero viewport disables culling", tree.Geometry{Width: 100, Height: 40, X: 9999, Y: 9999}, "block", "", "", Viewport{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.geo, tc.display, tc.visibility, tc.opacity, 0, tc.vp)
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDecideCustomThreshold(t *testing.T) {
	geo := tree.Geometry{Width: 8, Height: 8}
	if Decide(geo, "block", "", "", 10, Viewport{}) {
		t.Error("8x8 under threshold 10: want invisible")
	}
	if !Decide(geo, "block", "", "", 5, Viewport{}) {
		t.Error("8x8 with threshold 5: want visible")
	}
}

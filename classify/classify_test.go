package classify

import (
	"testing"

	"github.com/afaq-khan2000/auto-skeleton/tree"
)

func TestClassify_TagChecksFirst(t *testing.T) {
	// An avatar-classed <img> is still an image: tag checks run before
	// class checks.
	if got := Classify("img", "avatar round", "inline", "", ""); got != tree.TypeImage {
		t.Errorf("img.avatar: got %s, want image", got)
	}
	if got := Classify("button", "card", "inline-block", "", "Save"); got != tree.TypeButton {
		t.Errorf("button.card: got %s, want button", got)
	}
	if got := Classify("textarea", "", "block", "", ""); got != tree.TypeInput {
		t.Errorf("textarea: got %s, want input", got)
	}
	if got := Classify("a", "", "inline", "button", "Go"); got != tree.TypeButton {
		t.Errorf("a[role=button]: got %s, want button", got)
	}
	if got := Classify("input", "", "inline-block", "button", ""); got != tree.TypeButton {
		t.Errorf("input[role=button]: got %s, want button", got)
	}
}

func TestClassify_ClassSignals(t *testing.T) {
	cases := []struct {
		class string
		want  tree.ElementType
	}{
		{"user-avatar", tree.TypeAvatar},
		{"ProfilePic", tree.TypeAvatar},
		{"fa-solid fa-house", tree.TypeIcon},
		{"svg-icon small", tree.TypeIcon},
		{"product-card", tree.TypeCard},
		{"side-panel", tree.TypeCard},
		{"nav-list", tree.TypeList},
		{"dropdown-menu", tree.TypeList},
	}
	for _, c := range cases {
		if got := Classify("span", c.class, "block", "", ""); got != c.want {
			t.Errorf("class %q: got %s, want %s", c.class, got, c.want)
		}
	}
}

func TestClassify_TextBeforeContainer(t *testing.T) {
	if got := Classify("h1", "", "block", "", "Title"); got != tree.TypeText {
		t.Errorf("h1 with text: got %s, want text", got)
	}
	// Flex containers with text still classify as containers.
	if got := Classify("div", "", "flex", "", "inline label"); got != tree.TypeContainer {
		t.Errorf("flex div with text: got %s, want container", got)
	}
	if got := Classify("p", "", "block", "", "   "); got != tree.TypeUnknown {
		t.Errorf("whitespace-only text: got %s, want unknown", got)
	}
}

func TestClassify_Containers(t *testing.T) {
	if got := Classify("span", "", "grid", "", ""); got != tree.TypeContainer {
		t.Errorf("grid span: got %s, want container", got)
	}
	for _, tag := range []string{"div", "section", "article"} {
		if got := Classify(tag, "", "block", "", ""); got != tree.TypeContainer {
			t.Errorf("%s: got %s, want container", tag, got)
		}
	}
}

func TestClassify_Unknown(t *testing.T) {
	if got := Classify("span", "", "inline", "", ""); got != tree.TypeUnknown {
		t.Errorf("bare span: got %s, want unknown", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Classify("div", "tile", "block", "", "x"); got != tree.TypeCard {
			t.Fatalf("run %d: got %s, want card", i, got)
		}
	}
}

package snapshot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/afaq-khan2000/auto-skeleton/analyzer"
	"github.com/afaq-khan2000/auto-skeleton/skeleton"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

const cardHTML = `<!DOCTYPE html>
<html>
<body>
<div id="card" class="card" style="width: 300px; height: 160px; display: flex; flex-direction: column; gap: 8px">
  <img class="avatar" src="u.png" width="40" height="40">
  <h2 style="width: 200px; height: 22px; font-size: 18px">Jane Doe</h2>
  <p style="width: 280px; height: 60px; font-size: 14px">Builds measurement surfaces for placeholder generation pipelines and writes about it at length.</p>
  <span style="display: none; width: 50px; height: 20px">hidden note</span>
</div>
</body>
</html>`

func parseCard(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(cardHTML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestRootSelector(t *testing.T) {
	doc := parseCard(t)

	root, err := doc.Root("#card")
	if err != nil {
		t.Fatalf("Root(#card): %v", err)
	}
	if root.Tag() != "div" || root.Attr("id") != "card" {
		t.Errorf("root: got %s#%s", root.Tag(), root.Attr("id"))
	}

	if _, err := doc.Root(".missing"); err == nil {
		t.Error("Root(.missing): want error")
	}

	body, err := doc.Root("")
	if err != nil {
		t.Fatalf("Root(\"\"): %v", err)
	}
	if body.Tag() != "body" {
		t.Errorf("default root: got %s, want body", body.Tag())
	}
}

func TestProviderGeometry(t *testing.T) {
	doc := parseCard(t)
	prov := NewProvider(doc)
	ctx := context.Background()

	root, err := doc.Root("#card")
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	geo, err := prov.Geometry(ctx, root)
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}
	if geo.Width != 300 || geo.Height != 160 {
		t.Errorf("card geometry: got %vx%v", geo.Width, geo.Height)
	}

	// Attribute-declared dimensions.
	img, err := doc.Root("img")
	if err != nil {
		t.Fatalf("Root(img): %v", err)
	}
	geo, err = prov.Geometry(ctx, img)
	if err != nil {
		t.Fatalf("Geometry(img): %v", err)
	}
	if geo.Width != 40 || geo.Height != 40 {
		t.Errorf("img geometry: got %vx%v", geo.Width, geo.Height)
	}

	// body inherits the assumed viewport.
	body, err := doc.Root("body")
	if err != nil {
		t.Fatalf("Root(body): %v", err)
	}
	geo, err = prov.Geometry(ctx, body)
	if err != nil {
		t.Fatalf("Geometry(body): %v", err)
	}
	if geo.Width != 1280 || geo.Height != 720 {
		t.Errorf("body geometry: got %vx%v", geo.Width, geo.Height)
	}
}

func TestProviderVisibility(t *testing.T) {
	doc := parseCard(t)
	prov := NewProvider(doc)
	ctx := context.Background()

	hidden, err := doc.Root("span")
	if err != nil {
		t.Fatalf("Root(span): %v", err)
	}
	vis, err := prov.Visible(ctx, hidden)
	if err != nil {
		t.Fatalf("Visible: %v", err)
	}
	if vis {
		t.Error("display:none element reported visible")
	}

	shown, err := doc.Root("h2")
	if err != nil {
		t.Fatalf("Root(h2): %v", err)
	}
	vis, err = prov.Visible(ctx, shown)
	if err != nil {
		t.Fatalf("Visible: %v", err)
	}
	if !vis {
		t.Error("visible element reported hidden")
	}
}

func TestProviderNoDocument(t *testing.T) {
	prov := NewProvider(nil)
	if err := prov.Check(context.Background()); err == nil {
		t.Fatal("Check without document: want error")
	}
}

func TestEndToEndGeneration(t *testing.T) {
	doc := parseCard(t)
	prov := NewProvider(doc)

	root, err := doc.Root("#card")
	if err != nil {
		t.Fatalf("Root: %v", err)
	}

	an := analyzer.New(prov, analyzer.Config{
		Timeout:       time.Second,
		FrameInterval: time.Millisecond,
	})
	res, err := an.Analyze(context.Background(), root)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Count() != 4 {
		t.Errorf("analyzed nodes: got %d, want 4 (hidden span pruned)", res.Count())
	}

	out, err := skeleton.Generate(res, skeleton.Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Metadata.ElementCount != 4 {
		t.Errorf("configs: got %d, want 4", out.Metadata.ElementCount)
	}

	var types []tree.ElementType
	for _, cfg := range out.Configs {
		types = append(types, cfg.Type)
	}
	// Tag classification outranks the avatar class on img elements.
	want := []tree.ElementType{tree.TypeContainer, tree.TypeImage, tree.TypeText, tree.TypeText}
	for i, typ := range want {
		if types[i] != typ {
			t.Errorf("config %d type: got %s, want %s", i, types[i], typ)
		}
	}

	htmlOut, err := skeleton.RenderHTML(out)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(htmlOut, "skeleton-root") {
		t.Error("rendered HTML missing root class")
	}
}

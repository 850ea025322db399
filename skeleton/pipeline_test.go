package skeleton

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/afaq-khan2000/auto-skeleton/analyzer"
	"github.com/afaq-khan2000/auto-skeleton/animation"
	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

type pipeElement struct {
	tag   string
	attrs map[string]string
	text  string
	geo   tree.Geometry
	style map[string]string
	kids  []*pipeElement
}

func (e *pipeElement) Tag() string { return e.tag }

func (e *pipeElement) Attr(name string) string { return e.attrs[name] }

func (e *pipeElement) Text() string { return e.text }

func (e *pipeElement) Children(ctx context.Context) ([]measure.Element, error) {
	out := make([]measure.Element, len(e.kids))
	for i, k := range e.kids {
		out[i] = k
	}
	return out, nil
}

type pipeProvider struct {
	checkErr   error
	reduced    bool
	reducedErr error

	// gate, when non-nil, blocks the first Geometry call until closed;
	// started is closed once that call is in progress.
	gate    chan struct{}
	started chan struct{}
	once    sync.Once
}

func (p *pipeProvider) Check(ctx context.Context) error { return p.checkErr }

func (p *pipeProvider) Geometry(ctx context.Context, el measure.Element) (tree.Geometry, error) {
	if p.gate != nil {
		p.once.Do(func() {
			close(p.started)
			select {
			case <-p.gate:
			case <-ctx.Done():
			}
		})
	}
	return el.(*pipeElement).geo, nil
}

func (p *pipeProvider) RawStyle(ctx context.Context, el measure.Element) (map[string]string, error) {
	return el.(*pipeElement).style, nil
}

func (p *pipeProvider) Visible(ctx context.Context, el measure.Element) (bool, error) {
	return true, nil
}

func (p *pipeProvider) ReducedMotion(ctx context.Context) (bool, error) {
	return p.reduced, p.reducedErr
}

func (p *pipeProvider) Viewport(ctx context.Context) (measure.Viewport, error) {
	return measure.Viewport{Width: 1280, Height: 800}, nil
}

func pipeRoot() *pipeElement {
	return &pipeElement{
		tag:   "div",
		attrs: map[string]string{"id": "card", "class": "card"},
		geo:   tree.Geometry{Width: 300, Height: 120},
		style: map[string]string{"display": "flex", "flex-direction": "row"},
		kids: []*pipeElement{{
			tag:   "span",
			attrs: map[string]string{"class": "avatar"},
			geo:   tree.Geometry{Width: 40, Height: 40},
			style: map[string]string{"display": "block"},
		}},
	}
}

func fastPipeline(prov measure.Provider, opts Options, cache ResultCache) *Pipeline {
	return NewPipeline(prov, PipelineConfig{
		Analyzer: analyzer.Config{Timeout: 250 * time.Millisecond, FrameInterval: time.Millisecond},
		Options:  opts,
		Cache:    cache,
	})
}

func TestPipeline_AnalyzeThenGenerate(t *testing.T) {
	p := fastPipeline(&pipeProvider{}, Options{}, nil)

	res, err := p.Analyze(context.Background(), pipeRoot())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if p.Last() != res {
		t.Error("Last() does not return the analysis just completed")
	}

	out, err := p.Generate(context.Background(), res)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Metadata.ElementCount != 2 {
		t.Errorf("ElementCount: got %d, want 2", out.Metadata.ElementCount)
	}
	avatar := configByID(t, out, "el-2")
	if avatar.Type != tree.TypeAvatar {
		t.Errorf("avatar type: got %s", avatar.Type)
	}
}

func TestPipeline_InFlightGuard(t *testing.T) {
	prov := &pipeProvider{gate: make(chan struct{}), started: make(chan struct{})}
	p := NewPipeline(prov, PipelineConfig{
		Analyzer: analyzer.Config{Timeout: 5 * time.Second, FrameInterval: time.Millisecond},
	})

	done := make(chan error, 1)
	go func() {
		_, err := p.Analyze(context.Background(), pipeRoot())
		done <- err
	}()

	<-prov.started
	if _, err := p.Analyze(context.Background(), pipeRoot()); !errors.Is(err, ErrAnalysisInFlight) {
		t.Fatalf("concurrent Analyze: got %v, want ErrAnalysisInFlight", err)
	}

	close(prov.gate)
	if err := <-done; err != nil {
		t.Fatalf("first Analyze: %v", err)
	}

	// The guard releases once the pass finishes.
	if _, err := p.Analyze(context.Background(), pipeRoot()); err != nil {
		t.Fatalf("follow-up Analyze: %v", err)
	}
}

type mapCache struct {
	mu   sync.Mutex
	data map[string]*GenerationResult
	puts int
}

func (c *mapCache) Get(ctx context.Context, key string) (*GenerationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.data[key]
	return res, ok
}

func (c *mapCache) Put(ctx context.Context, key string, res *GenerationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]*GenerationResult{}
	}
	c.data[key] = res
	c.puts++
}

func TestPipeline_CacheHitSkipsGeneration(t *testing.T) {
	cache := &mapCache{}
	p := fastPipeline(&pipeProvider{}, Options{EnableCaching: true, CacheKey: "card"}, cache)

	res, err := p.Analyze(context.Background(), pipeRoot())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	first, err := p.Generate(context.Background(), res)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cache.puts != 1 {
		t.Fatalf("puts after miss: got %d, want 1", cache.puts)
	}

	second, err := p.Generate(context.Background(), res)
	if err != nil {
		t.Fatalf("Generate (cached): %v", err)
	}
	if second != first {
		t.Error("cache hit should return the stored result")
	}
	if cache.puts != 1 {
		t.Errorf("puts after hit: got %d, want 1", cache.puts)
	}
}

func TestPipeline_NoCacheWithoutKey(t *testing.T) {
	cache := &mapCache{}
	p := fastPipeline(&pipeProvider{}, Options{EnableCaching: true}, cache)

	res, err := p.Analyze(context.Background(), pipeRoot())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if _, err := p.Generate(context.Background(), res); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cache.puts != 0 {
		t.Errorf("puts without key: got %d, want 0", cache.puts)
	}
}

func TestPipeline_HostReducedMotion(t *testing.T) {
	prov := &pipeProvider{reduced: true}
	p := fastPipeline(prov, Options{
		Animation:         &animation.Spec{Type: animation.TypeShimmer},
		RespectUserMotion: true,
	}, nil)

	res, err := p.Analyze(context.Background(), pipeRoot())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	out, err := p.Generate(context.Background(), res)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, cfg := range out.Configs {
		if cfg.Animation.Animated() {
			t.Errorf("config %s animated despite host preference", cfg.ID)
		}
	}
}

func TestPipeline_ReducedMotionQueryFailureIsSoft(t *testing.T) {
	prov := &pipeProvider{reducedErr: errors.New("no host signal")}
	p := fastPipeline(prov, Options{RespectUserMotion: true}, nil)

	res, err := p.Analyze(context.Background(), pipeRoot())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	out, err := p.Generate(context.Background(), res)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Falls back to animated output rather than failing.
	if !out.Configs[0].Animation.Animated() {
		t.Error("query failure should leave the default animation in place")
	}
}

func TestPipeline_RegenerateDiscardsLast(t *testing.T) {
	p := fastPipeline(&pipeProvider{}, Options{}, nil)

	if _, err := p.Analyze(context.Background(), pipeRoot()); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	stale := p.Last()

	out, err := p.Regenerate(context.Background(), pipeRoot())
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if out == nil || p.Last() == nil {
		t.Fatal("Regenerate left no analysis behind")
	}
	if p.Last() == stale {
		t.Error("Regenerate reused the previous analysis")
	}
}

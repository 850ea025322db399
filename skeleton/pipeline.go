package skeleton

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/afaq-khan2000/auto-skeleton/analyzer"
	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// ResultCache is the caller-side memoization hook consulted before
// generation and populated after. The cache package provides the standard
// implementation; the pipeline itself holds no cache state.
type ResultCache interface {
	Get(ctx context.Context, key string) (*GenerationResult, bool)
	Put(ctx context.Context, key string, res *GenerationResult)
}

// PipelineConfig configures a Pipeline.
type PipelineConfig struct {
	Analyzer analyzer.Config
	Options  Options
	Cache    ResultCache
	Logger   *slog.Logger
}

// Pipeline ties analysis and generation together for external callers.
// Control re-enters only through Analyze, Generate, and Regenerate. A
// regenerate unconditionally discards the previous analysis before
// starting a new pass; overlapping passes are refused via the in-flight
// flag rather than serialized.
type Pipeline struct {
	prov   measure.Provider
	an     *analyzer.Analyzer
	opts   Options
	cache  ResultCache
	logger *slog.Logger

	inflight atomic.Bool

	mu   sync.Mutex
	last *tree.AnalysisResult
}

// NewPipeline creates a Pipeline over one measurement provider.
func NewPipeline(prov measure.Provider, cfg PipelineConfig) *Pipeline {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	cfg.Analyzer.Logger = cfg.Logger
	cfg.Analyzer.Ignore = append(cfg.Analyzer.Ignore, cfg.Options.IgnoreElements...)

	return &Pipeline{
		prov:   prov,
		an:     analyzer.New(prov, cfg.Analyzer),
		opts:   cfg.Options,
		cache:  cfg.Cache,
		logger: cfg.Logger,
	}
}

// Analyze runs one analysis pass. Returns ErrAnalysisInFlight when called
// while another pass is running.
func (p *Pipeline) Analyze(ctx context.Context, root measure.Element) (*tree.AnalysisResult, error) {
	if !p.inflight.CompareAndSwap(false, true) {
		return nil, ErrAnalysisInFlight
	}
	defer p.inflight.Store(false)

	res, err := p.an.Analyze(ctx, root)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.last = res
	p.mu.Unlock()
	return res, nil
}

// Generate converts an analysis result using the pipeline's options,
// resolving the host motion preference and consulting the cache hook when
// the caller asked for it.
func (p *Pipeline) Generate(ctx context.Context, res *tree.AnalysisResult) (*GenerationResult, error) {
	return p.generate(ctx, res, p.opts)
}

// generate runs one conversion with a per-call options snapshot. The
// pipeline's own options are never written after construction, so keyed
// calls can run concurrently with plain ones.
func (p *Pipeline) generate(ctx context.Context, res *tree.AnalysisResult, opts Options) (*GenerationResult, error) {
	if opts.RespectUserMotion && !opts.ReducedMotion {
		reduced, err := p.prov.ReducedMotion(ctx)
		if err != nil {
			p.logger.Warn("skeleton: reduced-motion query failed", "error", err)
		} else {
			opts.ReducedMotion = reduced
		}
	}

	useCache := opts.EnableCaching && opts.CacheKey != "" && p.cache != nil
	if useCache {
		if cached, ok := p.cache.Get(ctx, opts.CacheKey); ok {
			p.logger.Debug("skeleton: cache hit", "key", opts.CacheKey)
			return cached, nil
		}
	}

	out, err := Generate(res, opts)
	if err != nil {
		return nil, err
	}
	if useCache {
		p.cache.Put(ctx, opts.CacheKey, out)
	}
	return out, nil
}

// Regenerate discards the previous analysis and runs a full
// analyze-then-generate pass.
func (p *Pipeline) Regenerate(ctx context.Context, root measure.Element) (*GenerationResult, error) {
	return p.regenerate(ctx, root, p.opts)
}

func (p *Pipeline) regenerate(ctx context.Context, root measure.Element, opts Options) (*GenerationResult, error) {
	p.mu.Lock()
	p.last = nil
	p.mu.Unlock()

	res, err := p.Analyze(ctx, root)
	if err != nil {
		return nil, err
	}
	return p.generate(ctx, res, opts)
}

// Last returns the most recent analysis result, or nil before the first
// completed pass.
func (p *Pipeline) Last() *tree.AnalysisResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

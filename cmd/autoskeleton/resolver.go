package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/afaq-khan2000/auto-skeleton/browser"
	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/snapshot"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// dualResolver routes URL targets to a lazily started browser and file
// targets to the snapshot parser. Its provider follows whichever backend
// served the last resolution.
type dualResolver struct {
	logger *slog.Logger
	snap   *snapshot.Resolver

	mu      sync.Mutex
	mgr     *browser.Manager
	br      *browser.Resolver
	current measure.Provider
}

func newDualResolver(logger *slog.Logger) *dualResolver {
	return &dualResolver{logger: logger, snap: snapshot.NewResolver()}
}

// Provider returns the provider handle the pipeline is built on.
func (d *dualResolver) Provider() measure.Provider {
	return &dualProvider{d: d}
}

func (d *dualResolver) Resolve(ctx context.Context, target, sel string) (measure.Element, func(), error) {
	if isURL(target) {
		br, err := d.browserResolver(ctx)
		if err != nil {
			return nil, nil, err
		}
		root, cleanup, err := br.Resolve(ctx, target, sel)
		if err != nil {
			return nil, nil, err
		}
		d.setCurrent(br.Provider())
		return root, cleanup, nil
	}

	root, cleanup, err := d.snap.Resolve(ctx, target, sel)
	if err != nil {
		return nil, nil, err
	}
	d.setCurrent(d.snap.Provider())
	return root, cleanup, nil
}

// Close shuts down the browser if one was started.
func (d *dualResolver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mgr != nil {
		d.mgr.Close()
		d.mgr = nil
		d.br = nil
	}
}

// browserResolver starts Chrome on first use.
func (d *dualResolver) browserResolver(ctx context.Context) (*browser.Resolver, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.br != nil {
		return d.br, nil
	}
	mgr := browser.NewManager(browser.Config{
		BlockResources: []string{"media"},
		Logger:         d.logger,
	})
	if _, err := mgr.Start(ctx); err != nil {
		return nil, fmt.Errorf("start browser: %w", err)
	}
	d.mgr = mgr
	d.br = browser.NewResolver(mgr)
	return d.br, nil
}

func (d *dualResolver) setCurrent(p measure.Provider) {
	d.mu.Lock()
	d.current = p
	d.mu.Unlock()
}

func (d *dualResolver) provider() measure.Provider {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// dualProvider delegates to the backend of the last resolution.
type dualProvider struct {
	d *dualResolver
}

func (p *dualProvider) Check(ctx context.Context) error {
	prov := p.d.provider()
	if prov == nil {
		return measure.ErrNoSurface
	}
	return prov.Check(ctx)
}

func (p *dualProvider) Geometry(ctx context.Context, el measure.Element) (tree.Geometry, error) {
	prov := p.d.provider()
	if prov == nil {
		return tree.Geometry{}, measure.ErrNoSurface
	}
	return prov.Geometry(ctx, el)
}

func (p *dualProvider) RawStyle(ctx context.Context, el measure.Element) (map[string]string, error) {
	prov := p.d.provider()
	if prov == nil {
		return nil, measure.ErrNoSurface
	}
	return prov.RawStyle(ctx, el)
}

func (p *dualProvider) Visible(ctx context.Context, el measure.Element) (bool, error) {
	prov := p.d.provider()
	if prov == nil {
		return false, measure.ErrNoSurface
	}
	return prov.Visible(ctx, el)
}

func (p *dualProvider) ReducedMotion(ctx context.Context) (bool, error) {
	prov := p.d.provider()
	if prov == nil {
		return false, measure.ErrNoSurface
	}
	return prov.ReducedMotion(ctx)
}

func (p *dualProvider) Viewport(ctx context.Context) (measure.Viewport, error) {
	prov := p.d.provider()
	if prov == nil {
		return measure.Viewport{}, measure.ErrNoSurface
	}
	return prov.Viewport(ctx)
}

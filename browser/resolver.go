package browser

import (
	"context"

	"github.com/afaq-khan2000/auto-skeleton/measure"
)

// Resolver opens one tab per resolution against a shared browser manager
// and rebinds its provider to the newest tab. Intended for the MCP and
// HTTP surfaces, where each call names its own target URL.
type Resolver struct {
	mgr  *Manager
	prov *pageProvider
}

// NewResolver creates a Resolver backed by the manager. The associated
// provider reports no surface until the first successful Resolve.
func NewResolver(mgr *Manager) *Resolver {
	return &Resolver{mgr: mgr, prov: &pageProvider{}}
}

// Provider returns the measurement provider tracking the resolver's
// current tab.
func (r *Resolver) Provider() measure.Provider {
	return r.prov
}

// Resolve opens a tab on the target URL and returns the component root
// for the selector. The cleanup closes the tab.
func (r *Resolver) Resolve(ctx context.Context, target, selector string) (measure.Element, func(), error) {
	tab, err := OpenTab(ctx, r.mgr, target)
	if err != nil {
		return nil, nil, err
	}
	root, err := tab.Root(ctx, selector)
	if err != nil {
		tab.Close()
		return nil, nil, err
	}
	r.prov.bind(tab.Page)
	return root, func() { tab.Close() }, nil
}

package snapshot

import (
	"context"

	"github.com/afaq-khan2000/auto-skeleton/measure"
)

// Resolver opens snapshot files by path and rebinds its provider to the
// most recently resolved document. Resolution order follows the pipeline
// in-flight guard, so rebinding needs no further coordination.
type Resolver struct {
	prov *Provider
}

// NewResolver creates a Resolver. The associated provider reports no
// surface until the first successful Resolve.
func NewResolver() *Resolver {
	return &Resolver{prov: NewProvider(nil)}
}

// Provider returns the measurement provider tracking the resolver's
// current document.
func (r *Resolver) Provider() measure.Provider {
	return r.prov
}

// Resolve parses the snapshot file at target and returns the component
// root for the selector.
func (r *Resolver) Resolve(ctx context.Context, target, sel string) (measure.Element, func(), error) {
	doc, err := Open(target)
	if err != nil {
		return nil, nil, err
	}
	root, err := doc.Root(sel)
	if err != nil {
		return nil, nil, err
	}
	r.prov.doc = doc
	return root, func() {}, nil
}

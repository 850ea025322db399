package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/afaq-khan2000/auto-skeleton/measure"
)

// navTimeout bounds navigation plus the load event.
const navTimeout = 30 * time.Second

// Tab wraps a Rod page opened on the component under analysis.
type Tab struct {
	Page    *rod.Page
	PageURL string
	manager *Manager
}

// OpenTab creates a new tab and navigates to the URL. The load event is
// awaited but a slow page is not fatal: the analyzer's own stabilization
// wait covers late layout.
func OpenTab(ctx context.Context, mgr *Manager, pageURL string) (*Tab, error) {
	b := mgr.Browser()
	if b == nil {
		return nil, fmt.Errorf("browser: no active browser")
	}

	var page *rod.Page
	var err error
	if mgr.cfg.Stealth {
		page, err = stealth.Page(b)
	} else {
		page, err = b.Page(proto.TargetCreateTarget{URL: ""})
	}
	if err != nil {
		return nil, fmt.Errorf("browser: create tab: %w", err)
	}

	if len(mgr.cfg.BlockResources) > 0 {
		if err := applyResourceBlocking(page, mgr.cfg.BlockResources); err != nil {
			mgr.cfg.Logger.Warn("browser: resource blocking failed", "error", err)
		}
	}

	navCtx, cancel := context.WithTimeout(ctx, navTimeout)
	defer cancel()

	if err := page.Context(navCtx).Navigate(pageURL); err != nil {
		page.Close()
		return nil, fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	if err := page.Context(navCtx).WaitLoad(); err != nil {
		mgr.cfg.Logger.Warn("browser: wait load timeout", "url", pageURL, "error", err)
	}

	return &Tab{Page: page, PageURL: pageURL, manager: mgr}, nil
}

// Root resolves the analysis root by CSS selector. An empty selector
// means the document body.
func (t *Tab) Root(ctx context.Context, selector string) (measure.Element, error) {
	if selector == "" {
		selector = "body"
	}
	el, err := t.Page.Context(ctx).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("browser: element %q: %w", selector, err)
	}
	return &pageElement{el: el}, nil
}

// Provider returns a measurement provider bound to this tab.
func (t *Tab) Provider() measure.Provider {
	return &pageProvider{page: t.Page}
}

// Close closes the tab.
func (t *Tab) Close() error {
	if t.Page != nil {
		return t.Page.Close()
	}
	return nil
}

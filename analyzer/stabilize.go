package analyzer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/afaq-khan2000/auto-skeleton/measure"
	"github.com/afaq-khan2000/auto-skeleton/tree"
)

// stabilizeTolerance is the maximum per-dimension drift (logical units)
// between consecutive measurements for layout to count as settled.
const stabilizeTolerance = 1

// stabilize re-measures the root geometry once per frame tick and returns
// when two consecutive reads agree within tolerance on both dimensions,
// with both strictly positive. Exceeding the configured timeout returns
// ErrStabilizeTimeout.
func (a *Analyzer) stabilize(ctx context.Context, el measure.Element) error {
	deadline, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	ticker := time.NewTicker(a.cfg.FrameInterval)
	defer ticker.Stop()

	var prev *tree.Geometry
	for {
		select {
		case <-deadline.Done():
			if errors.Is(deadline.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
				return fmt.Errorf("%w within %s", ErrStabilizeTimeout, a.cfg.Timeout)
			}
			return ctx.Err()

		case <-ticker.C:
			geo, err := a.prov.Geometry(deadline, el)
			if err != nil {
				// Reads can fail transiently while layout thrashes;
				// keep ticking until the deadline decides.
				a.logger.Debug("analyzer: stabilize read failed", "error", err)
				prev = nil
				continue
			}
			if prev != nil && settled(*prev, geo) {
				return nil
			}
			g := geo
			prev = &g
		}
	}
}

// settled reports whether two consecutive measurements agree.
func settled(prev, cur tree.Geometry) bool {
	if cur.Width <= 0 || cur.Height <= 0 {
		return false
	}
	return math.Abs(cur.Width-prev.Width) < stabilizeTolerance &&
		math.Abs(cur.Height-prev.Height) < stabilizeTolerance
}

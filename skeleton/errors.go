package skeleton

import (
	"errors"
	"fmt"
	"time"
)

// ErrAnalysisInFlight is returned by the pipeline when a new pass is
// started while one is still running. Overlapping passes are not
// serialized; the in-flight flag is the discipline callers get.
var ErrAnalysisInFlight = errors.New("skeleton: analysis already in flight")

// FailedError wraps any failure during config conversion or tree assembly.
// Callers are expected to fall back to a static placeholder; the elapsed
// time is carried for diagnostics.
type FailedError struct {
	Elapsed time.Duration
	Err     error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("skeleton: generation failed after %s: %v", e.Elapsed, e.Err)
}

func (e *FailedError) Unwrap() error { return e.Err }

package surf

import (
	"log/slog"
	"sync"
)

// Reporter receives errors that surf absorbs instead of propagating: stream
// failures pushed into an endpoint and renderer errors. A reporter must not
// panic; whatever it does, the element's other surfaces stay live.
type Reporter interface {
	ReportError(op, element string, err error)
}

var (
	reporterMu sync.RWMutex
	reporter   Reporter = slogReporter{}
)

// SetReporter configures the package-level error reporter.
// Pass nil to restore the default slog-based reporter.
func SetReporter(r Reporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()
	if r == nil {
		reporter = slogReporter{}
	} else {
		reporter = r
	}
}

// Report sends an absorbed error to the configured reporter.
// op identifies the failing surface (e.g. "output.next", "render").
func Report(op, element string, err error) {
	if err == nil {
		return
	}
	reporterMu.RLock()
	r := reporter
	reporterMu.RUnlock()
	r.ReportError(op, element, err)
}

// slogReporter logs absorbed errors through the default slog logger.
type slogReporter struct{}

func (slogReporter) ReportError(op, element string, err error) {
	slog.Error("surf: stream error absorbed",
		slog.String("op", op),
		slog.String("element", element),
		slog.Any("err", err),
	)
}

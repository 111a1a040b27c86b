// Package fallback - Live-or-static operation dispatch
// Every externally-sourced lookup goes through one Dispatcher: the
// live operation runs only when the connectivity monitor says online,
// and any live failure substitutes the static operation exactly once.
// Static failures propagate; there is nothing beneath the static layer.
// Pairing is explicit - an Operation binds both halves by value, never
// by name lookup.
package fallback

import (
	"context"

	"go.uber.org/zap"

	"pricecalc/core/connectivity"
	"pricecalc/internal/logging"
)

// Func is one half of a paired operation
type Func[P, R any] func(ctx context.Context, params P) (R, error)

// Operation pairs a live lookup with its static counterpart of
// identical shape.
type Operation[P, R any] struct {
	// Name identifies the operation in fallback warnings
	Name string

	// Live queries the remote pricing source
	Live Func[P, R]

	// Static answers from the bundled catalog
	Static Func[P, R]
}

// Dispatcher routes paired operations between their live and static
// halves based on connectivity.
type Dispatcher struct {
	monitor *connectivity.Monitor
	logger  *zap.Logger
}

// NewDispatcher creates a dispatcher bound to a connectivity monitor
func NewDispatcher(monitor *connectivity.Monitor) *Dispatcher {
	return &Dispatcher{
		monitor: monitor,
		logger:  logging.Logger,
	}
}

// Monitor returns the dispatcher's connectivity monitor
func (d *Dispatcher) Monitor() *connectivity.Monitor {
	return d.monitor
}

// Resolve invokes an operation. Offline, the static half runs
// directly and live is never attempted. Online, the live half runs
// once; on any error - transport, malformed response, or not found -
// a warning is logged and the static half answers instead.
func Resolve[P, R any](ctx context.Context, d *Dispatcher, op Operation[P, R], params P) (R, error) {
	if d.monitor.IsOnline() {
		result, err := op.Live(ctx, params)
		if err == nil {
			return result, nil
		}
		d.logger.Warn("live lookup failed, falling back to static data",
			zap.String("operation", op.Name),
			zap.Error(err))
	}
	return op.Static(ctx, params)
}

// Package connectivity - Reachability state for the live pricing source
// The monitor answers one question: should a live pricing lookup be
// attempted right now? Probing is expensive and connectivity rarely
// changes mid-session, so the result of the first probe is cached. A
// forced override pins the answer for tests and offline demos.
package connectivity

import (
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"pricecalc/internal/logging"
)

// State is the cached connectivity state
type State int

const (
	// StateUnverified - no probe has run since the last reset
	StateUnverified State = iota

	// StateOnline - the last probe reached the pricing endpoint
	StateOnline

	// StateOffline - the last probe failed every attempt
	StateOffline
)

// String returns the string representation
func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return "unverified"
	}
}

// DefaultEndpoint is the pricing endpoint probed for reachability
const DefaultEndpoint = "https://pricing.us-east-1.amazonaws.com/"

const (
	defaultTimeout    = 5 * time.Second
	defaultMaxRetries = 2
	defaultRetryDelay = 1 * time.Second
)

// Monitor tracks whether the live pricing source is reachable.
// All state transitions are serialized; a Monitor is safe for
// concurrent use and is meant to be injected rather than shared as
// package state, so parallel tests can each own one.
type Monitor struct {
	mu     sync.Mutex
	state  State
	forced *bool

	endpoint   string
	client     *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     *zap.Logger
}

// Option customizes a Monitor
type Option func(*Monitor)

// WithEndpoint sets the probed endpoint
func WithEndpoint(url string) Option {
	return func(m *Monitor) { m.endpoint = url }
}

// WithTimeout bounds each probe attempt
func WithTimeout(d time.Duration) Option {
	return func(m *Monitor) { m.client.Timeout = d }
}

// WithRetries sets the retry count and inter-attempt delay
func WithRetries(maxRetries int, delay time.Duration) Option {
	return func(m *Monitor) {
		m.maxRetries = maxRetries
		m.retryDelay = delay
	}
}

// WithLogger sets the monitor's logger
func WithLogger(l *zap.Logger) Option {
	return func(m *Monitor) { m.logger = l }
}

// NewMonitor creates a monitor in the unverified state
func NewMonitor(opts ...Option) *Monitor {
	m := &Monitor{
		state:      StateUnverified,
		endpoint:   DefaultEndpoint,
		client:     &http.Client{Timeout: defaultTimeout},
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		logger:     logging.Logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Probe performs a bounded reachability check against the pricing
// endpoint and caches the outcome. Unreachability is a recorded
// result, not an error; Probe never panics on network failure.
func (m *Monitor) Probe() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		m.applyForcedLocked()
		return *m.forced
	}
	return m.probeLocked()
}

func (m *Monitor) probeLocked() bool {
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(m.retryDelay)
		}
		resp, err := m.client.Get(m.endpoint)
		if err != nil {
			m.logger.Warn("pricing endpoint unreachable",
				zap.String("endpoint", m.endpoint),
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			m.state = StateOnline
			m.logger.Info("pricing endpoint reachable", zap.String("endpoint", m.endpoint))
			return true
		}
		m.logger.Warn("pricing endpoint returned non-OK status",
			zap.String("endpoint", m.endpoint),
			zap.Int("status", resp.StatusCode))
	}

	m.state = StateOffline
	m.logger.Info("offline mode active: pricing endpoint not reachable")
	return false
}

// IsOnline reports whether live pricing should be attempted. A forced
// override wins; otherwise the cached state is returned, probing first
// if no probe has run yet.
func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.forced != nil {
		return *m.forced
	}
	if m.state == StateUnverified {
		return m.probeLocked()
	}
	return m.state == StateOnline
}

// ForceOnline pins the monitor online regardless of real connectivity
func (m *Monitor) ForceOnline() {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := true
	m.forced = &t
	m.state = StateOnline
	m.logger.Info("forced online mode enabled")
}

// ForceOffline pins the monitor offline regardless of real connectivity
func (m *Monitor) ForceOffline() {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := false
	m.forced = &f
	m.state = StateOffline
	m.logger.Info("forced offline mode enabled")
}

// Reset clears the override and the cached state; the next IsOnline
// call probes again.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forced = nil
	m.state = StateUnverified
	m.logger.Info("connectivity state reset")
}

// State returns the cached state without probing
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Forced reports whether an override is active
func (m *Monitor) Forced() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.forced != nil
}

func (m *Monitor) applyForcedLocked() {
	if *m.forced {
		m.state = StateOnline
	} else {
		m.state = StateOffline
	}
}

// Package estimate - Per-service monthly cost models
// One pure model per service kind: a configuration record in, a
// priced quote out. Models read unit prices from the static catalog
// and never perform I/O, so identical parameters always produce
// identical quotes.
package estimate

import (
	"sync"

	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

// CostModel estimates the monthly cost of one service kind
type CostModel interface {
	// Kind returns the service kind this model prices
	Kind() types.ServiceKind

	// Estimate maps a configuration to a priced quote
	Estimate(params types.Params) (types.PriceQuote, error)
}

// Registry maps service kinds to their cost models. The mapping is a
// closed set; unknown kinds yield a typed NOT_SUPPORTED error rather
// than a panic so batch callers can report per-item failures.
type Registry struct {
	mu     sync.RWMutex
	models map[types.ServiceKind]CostModel
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[types.ServiceKind]CostModel),
	}
}

// NewDefaultRegistry creates a registry with every supported model
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewEC2Model())
	r.Register(NewS3Model())
	r.Register(NewLambdaModel())
	r.Register(NewFargateModel())
	r.Register(NewCloudWatchModel())
	r.Register(NewElastiCacheModel())
	r.Register(NewECRModel())
	r.Register(NewOpenSearchModel())
	r.Register(NewRoute53Model())
	return r
}

// Register adds a model to the registry
func (r *Registry) Register(model CostModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.models[model.Kind()] = model
}

// Get returns the model for a service kind
func (r *Registry) Get(kind types.ServiceKind) (CostModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	model, ok := r.models[kind]
	return model, ok
}

// Estimate dispatches to the model for a service kind
func (r *Registry) Estimate(kind types.ServiceKind, params types.Params) (types.PriceQuote, error) {
	model, ok := r.Get(kind)
	if !ok {
		return types.PriceQuote{}, errors.NotSupported("service " + kind.String())
	}
	return model.Estimate(params)
}

// Kinds returns the registered service kinds
func (r *Registry) Kinds() []types.ServiceKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]types.ServiceKind, 0, len(r.models))
	for _, kind := range types.AllServiceKinds() {
		if _, ok := r.models[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

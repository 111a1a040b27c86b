// Package session - In-memory resource list accumulated during an
// estimation session, with lossless JSON export
package session

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

// Resource is a labeled cost quote held in the session list
type Resource struct {
	// Label is the user-supplied name for the resource
	Label string `json:"label"`

	types.PriceQuote
}

// List accumulates estimated resources. Append-only aside from Clear;
// safe for concurrent use.
type List struct {
	mu        sync.Mutex
	resources []Resource
}

// NewList creates an empty session list
func NewList() *List {
	return &List{}
}

// Add appends a quote under the given label
func (l *List) Add(label string, quote types.PriceQuote) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resources = append(l.resources, Resource{Label: label, PriceQuote: quote})
}

// Resources returns a copy of the accumulated resources
func (l *List) Resources() []Resource {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Resource, len(l.resources))
	copy(out, l.resources)
	return out
}

// Total sums the total price of every resource in the list
func (l *List) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := decimal.Zero
	for _, r := range l.resources {
		total = total.Add(r.TotalPrice)
	}
	return total
}

// Len returns the number of resources in the list
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.resources)
}

// Clear empties the list
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resources = nil
}

// Export is the serialized form of a session list
type Export struct {
	Resources []Resource      `json:"resources"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// Export serializes the list and its aggregate total as JSON
func (l *List) Export() ([]byte, error) {
	snapshot := l.Resources()
	if snapshot == nil {
		snapshot = []Resource{}
	}
	doc := Export{
		Resources: snapshot,
		TotalCost: l.Total(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "failed to serialize session export", err)
	}
	return data, nil
}

// ParseExport deserializes a previously exported session
func ParseExport(data []byte) (Export, error) {
	var doc Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return Export{}, errors.Wrap(errors.TypeInput, "failed to parse session export", err)
	}
	return doc, nil
}

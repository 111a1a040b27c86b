// Package estimate - DNS cost model (Route 53)
package estimate

import (
	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
)

// Route53Model prices hosted zones plus DNS query volume.
// Parameters: hosted_zones, queries_millions.
type Route53Model struct{}

// NewRoute53Model creates a Route 53 cost model
func NewRoute53Model() *Route53Model {
	return &Route53Model{}
}

// Kind returns the service kind
func (m *Route53Model) Kind() types.ServiceKind {
	return types.ServiceRoute53
}

// Estimate prices zones plus per-million queries
func (m *Route53Model) Estimate(params types.Params) (types.PriceQuote, error) {
	hostedZones := decimal.NewFromFloat(params.Float("hosted_zones", 1))
	queriesMillions := decimal.NewFromFloat(params.Float("queries_millions", 1))

	zonePrice := catalog.Price(catalog.Route53ZonePrice)
	queryPrice := catalog.Price(catalog.Route53QueryPrice)

	zoneCost := zonePrice.Mul(hostedZones)
	queryCost := queryPrice.Mul(queriesMillions)

	return types.PriceQuote{
		Service:   types.ServiceRoute53,
		UnitPrice: zonePrice,
		Quantity:  hostedZones,
		SubCosts: []types.SubCost{
			{Name: "zone_cost", Amount: zoneCost},
			{Name: "query_cost", Amount: queryCost},
		},
		TotalPrice: zoneCost.Add(queryCost),
	}, nil
}

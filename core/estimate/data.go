// Package estimate - Node-priced data service models (ElastiCache, OpenSearch)
package estimate

import (
	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
)

// ElastiCacheModel prices managed cache nodes by node-hour.
// Parameters: node_type, nodes, hours, region.
type ElastiCacheModel struct{}

// NewElastiCacheModel creates an ElastiCache cost model
func NewElastiCacheModel() *ElastiCacheModel {
	return &ElastiCacheModel{}
}

// Kind returns the service kind
func (m *ElastiCacheModel) Kind() types.ServiceKind {
	return types.ServiceElastiCache
}

// Estimate prices node-hours with the region multiplier applied to
// the node's base price.
func (m *ElastiCacheModel) Estimate(params types.Params) (types.PriceQuote, error) {
	nodeType := params.Str("node_type", "cache.t3.micro")
	nodes := decimal.NewFromFloat(params.Float("nodes", 1))
	hours := decimal.NewFromFloat(params.Float("hours", 730))
	region := params.Str("region", "us-east-1")

	unitPrice := catalog.CacheNodePrice(nodeType).Mul(catalog.RegionMultiplier(region))
	nodeHours := nodes.Mul(hours)

	return types.PriceQuote{
		Service:      types.ServiceElastiCache,
		UnitPrice:    unitPrice,
		Quantity:     nodeHours,
		MonthlyHours: hours,
		TotalPrice:   unitPrice.Mul(nodeHours),
	}, nil
}

// OpenSearchModel prices managed search: instance-hours with a region
// multiplier plus flat EBS storage per GB-month.
// Parameters: instance_type, instances, storage_gb, hours, region.
type OpenSearchModel struct{}

// NewOpenSearchModel creates an OpenSearch cost model
func NewOpenSearchModel() *OpenSearchModel {
	return &OpenSearchModel{}
}

// Kind returns the service kind
func (m *OpenSearchModel) Kind() types.ServiceKind {
	return types.ServiceOpenSearch
}

// Estimate prices instance-hours plus storage
func (m *OpenSearchModel) Estimate(params types.Params) (types.PriceQuote, error) {
	instanceType := params.Str("instance_type", "t3.small.search")
	instances := decimal.NewFromFloat(params.Float("instances", 1))
	storageGB := decimal.NewFromFloat(params.Float("storage_gb", 10))
	hours := decimal.NewFromFloat(params.Float("hours", 730))
	region := params.Str("region", "us-east-1")

	unitPrice := catalog.SearchInstancePrice(instanceType).Mul(catalog.RegionMultiplier(region))
	instanceHours := instances.Mul(hours)

	instanceCost := unitPrice.Mul(instanceHours)
	storageCost := catalog.Price(catalog.SearchStoragePerGB).Mul(storageGB)

	return types.PriceQuote{
		Service:      types.ServiceOpenSearch,
		UnitPrice:    unitPrice,
		Quantity:     instanceHours,
		MonthlyHours: hours,
		SubCosts: []types.SubCost{
			{Name: "instance_cost", Amount: instanceCost},
			{Name: "storage_cost", Amount: storageCost},
		},
		TotalPrice: instanceCost.Add(storageCost),
	}, nil
}

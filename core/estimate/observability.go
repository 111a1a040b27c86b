// Package estimate - Observability cost model (CloudWatch)
package estimate

import (
	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
)

// CloudWatchModel prices logs, metrics, alarms, and dashboards as an
// aggregate of flat per-unit charges. There is no single natural unit,
// so the quote's unit price is a nominal 1.0 and the total is the sum
// of the sub-costs.
// Parameters: ingestion_gb, storage_gb, metrics, alarms, dashboards.
type CloudWatchModel struct{}

// NewCloudWatchModel creates a CloudWatch cost model
func NewCloudWatchModel() *CloudWatchModel {
	return &CloudWatchModel{}
}

// Kind returns the service kind
func (m *CloudWatchModel) Kind() types.ServiceKind {
	return types.ServiceCloudWatch
}

// Estimate sums the five flat-priced components
func (m *CloudWatchModel) Estimate(params types.Params) (types.PriceQuote, error) {
	ingestionGB := decimal.NewFromFloat(params.Float("ingestion_gb", 10))
	storageGB := decimal.NewFromFloat(params.Float("storage_gb", 10))
	metrics := decimal.NewFromFloat(params.Float("metrics", 10))
	alarms := decimal.NewFromFloat(params.Float("alarms", 5))
	dashboards := decimal.NewFromFloat(params.Float("dashboards", 1))

	subCosts := []types.SubCost{
		{Name: "ingestion_cost", Amount: ingestionGB.Mul(catalog.Price(catalog.CloudWatchIngestionPerGB))},
		{Name: "storage_cost", Amount: storageGB.Mul(catalog.Price(catalog.CloudWatchStoragePerGB))},
		{Name: "metrics_cost", Amount: metrics.Mul(catalog.Price(catalog.CloudWatchMetricPrice))},
		{Name: "alarms_cost", Amount: alarms.Mul(catalog.Price(catalog.CloudWatchAlarmPrice))},
		{Name: "dashboards_cost", Amount: dashboards.Mul(catalog.Price(catalog.CloudWatchDashboardPrice))},
	}

	total := decimal.Zero
	for _, sc := range subCosts {
		total = total.Add(sc.Amount)
	}

	return types.PriceQuote{
		Service:    types.ServiceCloudWatch,
		UnitPrice:  decimal.NewFromInt(1),
		Quantity:   decimal.NewFromInt(1),
		SubCosts:   subCosts,
		TotalPrice: total,
	}, nil
}

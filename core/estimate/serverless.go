// Package estimate - Serverless cost model (Lambda)
package estimate

import (
	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
)

var (
	thousand = decimal.NewFromInt(1000)
	million  = decimal.NewFromInt(1000000)
	gbInMB   = decimal.NewFromInt(1024)
)

// LambdaModel prices function invocations: duration in GB-seconds
// plus a per-million-request charge.
// Parameters: requests (millions), memory (MB), avg_duration (ms), region.
type LambdaModel struct{}

// NewLambdaModel creates a Lambda cost model
func NewLambdaModel() *LambdaModel {
	return &LambdaModel{}
}

// Kind returns the service kind
func (m *LambdaModel) Kind() types.ServiceKind {
	return types.ServiceLambda
}

// Estimate prices monthly GB-seconds and requests
func (m *LambdaModel) Estimate(params types.Params) (types.PriceQuote, error) {
	requestsMillions := decimal.NewFromFloat(params.Float("requests", 1))
	memoryMB := decimal.NewFromFloat(params.Float("memory", 128))
	avgDurationMs := decimal.NewFromFloat(params.Float("avg_duration", 100))
	region := params.Str("region", "us-east-1")

	// GB-seconds = requests * (duration in seconds) * (memory in GB)
	totalSeconds := requestsMillions.Mul(million).Mul(avgDurationMs.Div(thousand))
	gbSeconds := totalSeconds.Mul(memoryMB.Div(gbInMB))

	requestPrice := catalog.LambdaRequestPrice(region)
	durationPrice := catalog.LambdaDurationPrice(region)

	requestCost := requestPrice.Mul(requestsMillions)
	durationCost := durationPrice.Mul(gbSeconds)

	return types.PriceQuote{
		Service:   types.ServiceLambda,
		UnitPrice: durationPrice,
		Quantity:  gbSeconds,
		SubCosts: []types.SubCost{
			{Name: "duration_cost", Amount: durationCost},
			{Name: "requests_cost", Amount: requestCost},
		},
		TotalPrice: durationCost.Add(requestCost),
	}, nil
}

// Package estimate - Storage cost models (S3, ECR)
package estimate

import (
	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
)

// S3Model prices object storage by GB-month.
// Parameters: storage_gb, storage_class, region.
type S3Model struct{}

// NewS3Model creates an S3 cost model
func NewS3Model() *S3Model {
	return &S3Model{}
}

// Kind returns the service kind
func (m *S3Model) Kind() types.ServiceKind {
	return types.ServiceS3
}

// Estimate prices stored GB for a month
func (m *S3Model) Estimate(params types.Params) (types.PriceQuote, error) {
	storageGB := decimal.NewFromFloat(params.Float("storage_gb", 100))
	storageClass := params.Str("storage_class", "Standard")
	region := params.Str("region", "us-east-1")

	unitPrice := catalog.S3PricePerGB(storageClass, region)

	return types.PriceQuote{
		Service:    types.ServiceS3,
		UnitPrice:  unitPrice,
		Quantity:   storageGB,
		TotalPrice: unitPrice.Mul(storageGB),
	}, nil
}

// ECRModel prices the container registry: flat storage per GB-month
// plus flat data transfer per GB.
// Parameters: storage_gb, data_transfer_gb.
type ECRModel struct{}

// NewECRModel creates an ECR cost model
func NewECRModel() *ECRModel {
	return &ECRModel{}
}

// Kind returns the service kind
func (m *ECRModel) Kind() types.ServiceKind {
	return types.ServiceECR
}

// Estimate prices registry storage plus transfer
func (m *ECRModel) Estimate(params types.Params) (types.PriceQuote, error) {
	storageGB := decimal.NewFromFloat(params.Float("storage_gb", 10))
	transferGB := decimal.NewFromFloat(params.Float("data_transfer_gb", 50))

	storagePrice := catalog.Price(catalog.ECRStoragePerGB)
	transferPrice := catalog.Price(catalog.ECRTransferPerGB)

	storageCost := storagePrice.Mul(storageGB)
	transferCost := transferPrice.Mul(transferGB)

	return types.PriceQuote{
		Service:   types.ServiceECR,
		UnitPrice: storagePrice,
		Quantity:  storageGB,
		SubCosts: []types.SubCost{
			{Name: "storage_cost", Amount: storageCost},
			{Name: "data_transfer_cost", Amount: transferCost},
		},
		TotalPrice: storageCost.Add(transferCost),
	}, nil
}

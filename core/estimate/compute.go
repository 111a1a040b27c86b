// Package estimate - Compute cost models (EC2, Fargate)
package estimate

import (
	"github.com/shopspring/decimal"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
)

// EC2Model prices on-demand EC2 instances.
// Parameters: instance_type, region, os_type, quantity, hours_per_day,
// days_per_month.
type EC2Model struct{}

// NewEC2Model creates an EC2 cost model
func NewEC2Model() *EC2Model {
	return &EC2Model{}
}

// Kind returns the service kind
func (m *EC2Model) Kind() types.ServiceKind {
	return types.ServiceEC2
}

// Estimate prices instance-hours for a month. Windows applies the
// multiplicative premium; the flat additive premium belongs to the
// heuristic instance-price path, not this model.
func (m *EC2Model) Estimate(params types.Params) (types.PriceQuote, error) {
	instanceType := params.Str("instance_type", "t3.micro")
	region := params.Str("region", "us-east-1")
	osType := params.Str("os_type", "Linux")
	quantity := decimal.NewFromFloat(params.Float("quantity", 1))
	hoursPerDay := decimal.NewFromFloat(params.Float("hours_per_day", 24))
	daysPerMonth := decimal.NewFromFloat(params.Float("days_per_month", 30))

	unitPrice, unpriced := catalog.EC2HourlyPrice(instanceType, region)
	if osType == "Windows" {
		unitPrice = unitPrice.Mul(catalog.Price(catalog.WindowsMultiplier))
	}

	monthlyHours := hoursPerDay.Mul(daysPerMonth)
	instanceHours := quantity.Mul(monthlyHours)

	return types.PriceQuote{
		Service:      types.ServiceEC2,
		UnitPrice:    unitPrice,
		Quantity:     instanceHours,
		MonthlyHours: monthlyHours,
		TotalPrice:   unitPrice.Mul(instanceHours),
		Unpriced:     unpriced,
	}, nil
}

// FargateModel prices Fargate/ECS tasks billed by vCPU and memory.
// Parameters: vcpu, memory_gb, hours_per_month, region.
type FargateModel struct{}

// NewFargateModel creates a Fargate cost model
func NewFargateModel() *FargateModel {
	return &FargateModel{}
}

// Kind returns the service kind
func (m *FargateModel) Kind() types.ServiceKind {
	return types.ServiceFargate
}

// Estimate prices vCPU-hours plus memory-GB-hours
func (m *FargateModel) Estimate(params types.Params) (types.PriceQuote, error) {
	vcpu := decimal.NewFromFloat(params.Float("vcpu", 1))
	memoryGB := decimal.NewFromFloat(params.Float("memory_gb", 2))
	hours := decimal.NewFromFloat(params.Float("hours_per_month", 730))
	region := params.Str("region", "us-east-1")

	vcpuPrice := catalog.FargateVCPUPrice(region)
	memoryPrice := catalog.FargateMemoryPrice(region)

	vcpuCost := vcpuPrice.Mul(vcpu).Mul(hours)
	memoryCost := memoryPrice.Mul(memoryGB).Mul(hours)

	// Hourly price of the whole task, vCPU plus memory
	unitPrice := vcpuPrice.Mul(vcpu).Add(memoryPrice.Mul(memoryGB))

	return types.PriceQuote{
		Service:      types.ServiceFargate,
		UnitPrice:    unitPrice,
		Quantity:     hours,
		MonthlyHours: hours,
		SubCosts: []types.SubCost{
			{Name: "vcpu_cost", Amount: vcpuCost},
			{Name: "memory_cost", Amount: memoryCost},
		},
		TotalPrice: vcpuCost.Add(memoryCost),
	}, nil
}

// Package types - Shared pricing and estimation types
package types

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The export contract serializes money as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// ServiceKind identifies a priceable AWS service
type ServiceKind string

const (
	ServiceEC2         ServiceKind = "EC2"
	ServiceS3          ServiceKind = "S3"
	ServiceLambda      ServiceKind = "Lambda"
	ServiceFargate     ServiceKind = "Fargate/ECS"
	ServiceCloudWatch  ServiceKind = "CloudWatch"
	ServiceElastiCache ServiceKind = "ElastiCache"
	ServiceECR         ServiceKind = "ECR"
	ServiceOpenSearch  ServiceKind = "OpenSearch"
	ServiceRoute53     ServiceKind = "Route 53"
)

// String returns the string representation
func (k ServiceKind) String() string {
	return string(k)
}

// AllServiceKinds returns the closed set of supported service kinds
func AllServiceKinds() []ServiceKind {
	return []ServiceKind{
		ServiceEC2, ServiceS3, ServiceLambda, ServiceFargate,
		ServiceCloudWatch, ServiceElastiCache, ServiceECR,
		ServiceOpenSearch, ServiceRoute53,
	}
}

// PriceSource indicates where a resolved price came from
type PriceSource string

const (
	// SourceAPI - authoritative value from the live pricing API
	SourceAPI PriceSource = "api"

	// SourceStatic - exact value from the bundled static price table
	SourceStatic PriceSource = "static_data"

	// SourceEstimated - approximation derived from instance family and size
	SourceEstimated PriceSource = "estimated_data"
)

// Params carries the caller-supplied configuration for one pricing request.
// Values are untyped because each service kind reads its own dimensions.
type Params map[string]interface{}

// Str returns a string parameter or a default
func (p Params) Str(key, defaultVal string) string {
	if v, ok := p[key].(string); ok && v != "" {
		return v
	}
	return defaultVal
}

// Float returns a numeric parameter or a default
func (p Params) Float(key string, defaultVal float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case decimal.Decimal:
		f, _ := v.Float64()
		return f
	}
	return defaultVal
}

// Int returns an integer parameter or a default
func (p Params) Int(key string, defaultVal int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return defaultVal
}

// SubCost is one itemized component of a quote
type SubCost struct {
	// Name identifies the component (e.g. "storage_cost", "query_cost")
	Name string `json:"name"`

	// Amount is the monthly cost of the component
	Amount decimal.Decimal `json:"amount"`
}

// PriceQuote is the priced output of a cost model for one resource
// configuration. When SubCosts is non-empty, TotalPrice equals their
// sum; otherwise it equals UnitPrice * Quantity exactly.
type PriceQuote struct {
	// Service is the service kind that produced this quote
	Service ServiceKind `json:"service"`

	// UnitPrice is the price per natural billing unit
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Quantity is the usage amount in the service's natural unit
	// (instance-hours, GB, GB-seconds, node-hours, zones)
	Quantity decimal.Decimal `json:"quantity"`

	// MonthlyHours is the hours-per-month dimension, where relevant
	MonthlyHours decimal.Decimal `json:"monthly_hours"`

	// SubCosts itemizes the components of TotalPrice, if any
	SubCosts []SubCost `json:"sub_costs,omitempty"`

	// TotalPrice is the estimated monthly cost
	TotalPrice decimal.Decimal `json:"total_price"`

	// Unpriced marks a quote where no price could be resolved at all
	// and zero was used as a last resort
	Unpriced bool `json:"unpriced,omitempty"`
}

// SubCostTotal returns the sum of the itemized sub-costs
func (q PriceQuote) SubCostTotal() decimal.Decimal {
	total := decimal.Zero
	for _, sc := range q.SubCosts {
		total = total.Add(sc.Amount)
	}
	return total
}

// PriceRecord is a resolved hourly price for one EC2 instance configuration
type PriceRecord struct {
	// InstanceType is the EC2 instance type (e.g. "t3.micro")
	InstanceType string `json:"instance_type"`

	// Region is the AWS region code
	Region string `json:"region"`

	// OperatingSystem is the priced OS variant
	OperatingSystem string `json:"operating_system"`

	// PricePerHour is the on-demand hourly price in USD
	PricePerHour decimal.Decimal `json:"price_per_hour"`

	// HoursPerMonth is the usage assumption behind MonthlyCost
	HoursPerMonth decimal.Decimal `json:"hours_per_month"`

	// MonthlyCost is PricePerHour * HoursPerMonth
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// Source tags whether the price is authoritative or approximate
	Source PriceSource `json:"source"`

	// Note carries a caveat for approximate prices
	Note string `json:"note,omitempty"`
}

// VolumeRecord is a resolved storage price for one EBS volume type
type VolumeRecord struct {
	// VolumeType is the EBS volume type (e.g. "gp3")
	VolumeType string `json:"volume_type"`

	// Region is the AWS region code
	Region string `json:"region"`

	// PricePerGBMonth is the monthly per-GB price in USD
	PricePerGBMonth decimal.Decimal `json:"price_per_gb_month"`

	// Source tags whether the price is authoritative or approximate
	Source PriceSource `json:"source"`
}

// InstanceSpec describes an EC2 instance type
type InstanceSpec struct {
	// Type is the instance type (e.g. "t3.micro")
	Type string `json:"type"`

	// Family is the instance family (e.g. "t3")
	Family string `json:"family"`

	// VCPU is the vCPU count
	VCPU int `json:"vcpu"`

	// Memory is the memory size as published (e.g. "1 GiB")
	Memory string `json:"memory"`

	// Arch is the CPU architecture
	Arch string `json:"arch"`

	// GPU describes attached GPUs, if any
	GPU string `json:"gpu,omitempty"`
}

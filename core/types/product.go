// Package types - Live pricing source contract types
package types

import "github.com/shopspring/decimal"

// PricingFilter is one exact-match filter for a live pricing query
type PricingFilter struct {
	// Field is the product attribute to match (e.g. "instanceType")
	Field string `json:"field"`

	// Value is the required attribute value
	Value string `json:"value"`
}

// Product is one priced product record from a pricing source
type Product struct {
	// ServiceCode is the pricing service code (e.g. "AmazonEC2")
	ServiceCode string `json:"service_code"`

	// Attributes are the product's pricing dimensions
	Attributes map[string]string `json:"attributes"`

	// OnDemandPriceUSD is the on-demand unit price in USD
	OnDemandPriceUSD decimal.Decimal `json:"on_demand_price_usd"`

	// Unit is the billing unit for the price (e.g. "Hrs")
	Unit string `json:"unit"`
}

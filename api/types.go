// Package api - Request and response types
package api

import (
	"pricecalc/core/session"
	"pricecalc/core/types"
)

// EstimateRequest asks for a cost estimate of one resource
type EstimateRequest struct {
	// Service is the service kind to estimate (e.g. "EC2")
	Service string `json:"service"`

	// Label is an optional name recorded with the resource
	Label string `json:"label,omitempty"`

	// Params are the service-specific estimation parameters
	Params map[string]interface{} `json:"params,omitempty"`
}

// EstimateResponse carries the resulting quote
type EstimateResponse struct {
	Label string           `json:"label,omitempty"`
	Quote types.PriceQuote `json:"quote"`
}

// BatchEstimateRequest asks for estimates of several resources at once
type BatchEstimateRequest struct {
	Resources []EstimateRequest `json:"resources"`
}

// BatchEstimateResponse aggregates the quotes like a session export
type BatchEstimateResponse struct {
	Resources []session.Resource `json:"resources"`
	TotalCost string             `json:"total_cost"`
}

// InstancePriceResponse carries a resolved instance price
type InstancePriceResponse struct {
	Record types.PriceRecord `json:"record"`
}

// VolumePriceResponse carries a resolved EBS volume price
type VolumePriceResponse struct {
	Record types.VolumeRecord `json:"record"`
}

// InstanceSpecResponse carries resolved hardware specs
type InstanceSpecResponse struct {
	Spec types.InstanceSpec `json:"spec"`
}

// InstanceTypesResponse lists known instance type names
type InstanceTypesResponse struct {
	InstanceTypes []string `json:"instance_types"`
	Count         int      `json:"count"`
}

// ProductsResponse carries raw pricing products
type ProductsResponse struct {
	ServiceCode string          `json:"service_code"`
	Products    []types.Product `json:"products"`
	Count       int             `json:"count"`
}

// ConnectivityResponse reports the monitor's view of the pricing API
type ConnectivityResponse struct {
	State  string `json:"state"`
	Forced bool   `json:"forced"`
}

// ForceConnectivityRequest overrides the monitor's state
type ForceConnectivityRequest struct {
	// Mode is "online", "offline", or "auto" to clear the override
	Mode string `json:"mode"`
}

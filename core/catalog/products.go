// Package catalog - Synthetic product records for offline pricing queries
package catalog

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"pricecalc/core/types"
)

// mockRegions are the regions synthetic products are generated for
var mockRegions = []string{"us-east-1", "us-west-2", "eu-west-1", "sa-east-1"}

// perVCPUHourly anchors synthetic EC2 prices at $0.0052 per vCPU-hour
var perVCPUHourly = decimal.NewFromFloat(0.0052)

// Products returns synthetic product records for a service code, in
// the same shape the live pricing API produces. It stands in for the
// remote source when the calculator is offline. Only AmazonEC2 has
// synthetic data; other service codes yield an empty list.
func Products(serviceCode string, filters []types.PricingFilter) []types.Product {
	if serviceCode != "AmazonEC2" {
		return []types.Product{}
	}

	products := make([]types.Product, 0, len(instanceSpecs)*len(mockRegions)*2)
	for _, instanceType := range sortedInstanceTypes {
		spec := instanceSpecs[instanceType]
		for _, region := range mockRegions {
			for _, osType := range []string{"Linux", "Windows"} {
				price := perVCPUHourly.Mul(decimal.NewFromInt(int64(spec.VCPU)))
				if osType == "Windows" {
					price = price.Mul(Price(WindowsMultiplier))
				}
				switch region {
				case "us-west-2":
					price = price.Mul(Price(1.05))
				case "eu-west-1":
					price = price.Mul(Price(1.1))
				case "sa-east-1":
					price = price.Mul(Price(1.25))
				}

				product := types.Product{
					ServiceCode: "AmazonEC2",
					Attributes: map[string]string{
						"instanceType":    spec.Type,
						"operatingSystem": osType,
						"regionCode":      region,
						"vcpu":            strconv.Itoa(spec.VCPU),
						"memory":          spec.Memory,
						"instanceFamily":  spec.Family,
					},
					OnDemandPriceUSD: price.Round(4),
					Unit:             "Hrs",
				}
				if matchesFilters(product, filters) {
					products = append(products, product)
				}
			}
		}
	}
	return products
}

// matchesFilters applies exact-match filters against product attributes
func matchesFilters(p types.Product, filters []types.PricingFilter) bool {
	for _, f := range filters {
		if v, ok := p.Attributes[f.Field]; !ok || v != f.Value {
			return false
		}
	}
	return true
}

// ProductInstanceTypes returns the distinct instance types present in
// a product list, sorted.
func ProductInstanceTypes(products []types.Product) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		if t, ok := p.Attributes["instanceType"]; ok {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

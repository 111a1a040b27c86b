// Package catalog - Bundled static price tables and accessors
// The catalog is the offline half of the pricing engine: approximate,
// versioned prices used whenever the live pricing API is unavailable.
// All tables are read-only after process start.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"pricecalc/core/types"
)

// DefaultRegionKey is the mandatory per-type fallback entry used when
// a specific region is absent from a price table.
const DefaultRegionKey = "default"

// RegionPrices maps a region code to a unit price, with an optional
// DefaultRegionKey entry.
type RegionPrices map[string]float64

// ForRegion returns the price for a region, falling back to the
// table's default entry. The second return is false only when neither
// the region nor a default exists.
func (p RegionPrices) ForRegion(region string) (float64, bool) {
	if price, ok := p[region]; ok {
		return price, true
	}
	if price, ok := p[DefaultRegionKey]; ok {
		return price, true
	}
	return 0, false
}

// Price converts a raw table value to a decimal price
func Price(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// EC2HourlyPrice returns the hourly Linux price for an instance type
// in a region. Unknown instance types resolve to DefaultEC2Hourly;
// a known type with neither the region nor a default entry resolves
// to zero with unpriced=true.
func EC2HourlyPrice(instanceType, region string) (price decimal.Decimal, unpriced bool) {
	table, ok := ec2Prices[instanceType]
	if !ok {
		return Price(DefaultEC2Hourly), false
	}
	v, ok := table.ForRegion(region)
	if !ok {
		return decimal.Zero, true
	}
	return Price(v), false
}

// S3PricePerGB returns the monthly per-GB price for a storage class
// in a region. Unknown classes resolve to the Standard default.
func S3PricePerGB(storageClass, region string) decimal.Decimal {
	table, ok := s3Prices[storageClass]
	if !ok {
		return Price(DefaultS3PerGB)
	}
	if v, ok := table.ForRegion(region); ok {
		return Price(v)
	}
	return Price(DefaultS3PerGB)
}

// LambdaRequestPrice returns the price per million requests for a region
func LambdaRequestPrice(region string) decimal.Decimal {
	v, _ := lambdaRequestPrices.ForRegion(region)
	return Price(v)
}

// LambdaDurationPrice returns the price per GB-second for a region
func LambdaDurationPrice(region string) decimal.Decimal {
	v, _ := lambdaDurationPrices.ForRegion(region)
	return Price(v)
}

// FargateVCPUPrice returns the hourly per-vCPU price for a region
func FargateVCPUPrice(region string) decimal.Decimal {
	v, _ := fargateVCPUPrices.ForRegion(region)
	return Price(v)
}

// FargateMemoryPrice returns the hourly per-GB memory price for a region
func FargateMemoryPrice(region string) decimal.Decimal {
	v, _ := fargateMemoryPrices.ForRegion(region)
	return Price(v)
}

// CacheNodePrice returns the hourly base price for an ElastiCache node
// type, before the region multiplier. Unknown node types resolve to
// the smallest node's price.
func CacheNodePrice(nodeType string) decimal.Decimal {
	if v, ok := cacheNodePrices[nodeType]; ok {
		return Price(v)
	}
	return Price(DefaultCacheNodeHourly)
}

// SearchInstancePrice returns the hourly base price for an OpenSearch
// instance type, before the region multiplier.
func SearchInstancePrice(instanceType string) decimal.Decimal {
	if v, ok := searchInstancePrices[instanceType]; ok {
		return Price(v)
	}
	return Price(DefaultSearchHourly)
}

// RegionMultiplier returns the price multiplier relative to us-east-1
// used by the node-priced services (ElastiCache, OpenSearch).
func RegionMultiplier(region string) decimal.Decimal {
	if v, ok := regionMultipliers[region]; ok {
		return Price(v)
	}
	return decimal.NewFromInt(1)
}

// StaticInstancePrice looks up the exact static hourly price keyed by
// region, instance type, and operating system.
func StaticInstancePrice(instanceType, region, os string) (decimal.Decimal, bool) {
	if v, ok := staticEC2Prices[region+":"+instanceType+":"+os]; ok {
		return Price(v), true
	}
	return decimal.Zero, false
}

// Spec returns the specification record for an instance type
func Spec(instanceType string) (types.InstanceSpec, bool) {
	spec, ok := instanceSpecs[instanceType]
	return spec, ok
}

// InstanceTypes returns every instance type in the catalog, sorted
func InstanceTypes() []string {
	out := make([]string, len(sortedInstanceTypes))
	copy(out, sortedInstanceTypes)
	return out
}

// StorageClasses returns the S3 storage classes the catalog prices
func StorageClasses() []string {
	return []string{
		"Standard", "Intelligent-Tiering", "Standard-IA",
		"One Zone-IA", "Glacier", "Glacier Deep Archive",
	}
}

// CacheNodeTypes returns the ElastiCache node types the catalog prices
func CacheNodeTypes() []string {
	out := make([]string, 0, len(cacheNodePrices))
	for nodeType := range cacheNodePrices {
		out = append(out, nodeType)
	}
	sort.Strings(out)
	return out
}

// SearchInstanceTypes returns the OpenSearch instance types the catalog prices
func SearchInstanceTypes() []string {
	out := make([]string, 0, len(searchInstancePrices))
	for instanceType := range searchInstancePrices {
		out = append(out, instanceType)
	}
	sort.Strings(out)
	return out
}

// Regions returns the known AWS region codes
func Regions() []string {
	out := make([]string, len(awsRegions))
	copy(out, awsRegions)
	return out
}

// OperatingSystems returns the OS variants the catalog understands
func OperatingSystems() []string {
	out := make([]string, len(operatingSystems))
	copy(out, operatingSystems)
	return out
}

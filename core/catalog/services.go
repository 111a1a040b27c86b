// Package catalog - Non-EC2 service price tables
package catalog

const (
	// DefaultS3PerGB is the fallback per-GB-month price (Standard, us-east-1)
	DefaultS3PerGB = 0.023

	// DefaultCacheNodeHourly is the fallback ElastiCache node price
	DefaultCacheNodeHourly = 0.018

	// DefaultSearchHourly is the fallback OpenSearch instance price
	DefaultSearchHourly = 0.036

	// SearchStoragePerGB is the OpenSearch EBS storage price per GB-month
	SearchStoragePerGB = 0.135

	// ECRStoragePerGB is the registry storage price per GB-month
	ECRStoragePerGB = 0.10

	// ECRTransferPerGB is the registry data-transfer price per GB
	ECRTransferPerGB = 0.09

	// Route53ZonePrice is the monthly price per hosted zone
	Route53ZonePrice = 0.50

	// Route53QueryPrice is the price per million DNS queries
	Route53QueryPrice = 0.40

	// CloudWatchIngestionPerGB is the log ingestion price per GB
	CloudWatchIngestionPerGB = 0.50

	// CloudWatchStoragePerGB is the log storage price per GB-month
	CloudWatchStoragePerGB = 0.03

	// CloudWatchMetricPrice is the monthly price per custom metric
	CloudWatchMetricPrice = 0.30

	// CloudWatchAlarmPrice is the monthly price per alarm
	CloudWatchAlarmPrice = 0.10

	// CloudWatchDashboardPrice is the monthly price per dashboard
	CloudWatchDashboardPrice = 3.00
)

// s3Prices holds monthly per-GB prices per storage class and region
var s3Prices = map[string]RegionPrices{
	"Standard": {
		"us-east-1": 0.023, "us-west-2": 0.023,
		"eu-west-1": 0.024, "sa-east-1": 0.0405,
		DefaultRegionKey: 0.023,
	},
	"Intelligent-Tiering": {
		"us-east-1": 0.025, "us-west-2": 0.025,
		"eu-west-1": 0.026, "sa-east-1": 0.0435,
		DefaultRegionKey: 0.025,
	},
	"Standard-IA": {
		"us-east-1": 0.0125, "us-west-2": 0.0125,
		"eu-west-1": 0.0131, "sa-east-1": 0.0216,
		DefaultRegionKey: 0.0125,
	},
	"One Zone-IA": {
		"us-east-1": 0.01, "us-west-2": 0.01,
		"eu-west-1": 0.0104, "sa-east-1": 0.0172,
		DefaultRegionKey: 0.01,
	},
	"Glacier": {
		"us-east-1": 0.004, "us-west-2": 0.004,
		"eu-west-1": 0.0042, "sa-east-1": 0.0069,
		DefaultRegionKey: 0.004,
	},
	"Glacier Deep Archive": {
		"us-east-1": 0.00099, "us-west-2": 0.00099,
		"eu-west-1": 0.00104, "sa-east-1": 0.00171,
		DefaultRegionKey: 0.00099,
	},
}

// lambdaRequestPrices holds the price per million requests
var lambdaRequestPrices = RegionPrices{
	"us-east-1": 0.20, "us-west-2": 0.20,
	"eu-west-1": 0.20, "sa-east-1": 0.20,
	DefaultRegionKey: 0.20,
}

// lambdaDurationPrices holds the price per GB-second
var lambdaDurationPrices = RegionPrices{
	"us-east-1": 0.0000166667, "us-west-2": 0.0000166667,
	"eu-west-1": 0.0000166667, "sa-east-1": 0.0000166667,
	DefaultRegionKey: 0.0000166667,
}

// fargateVCPUPrices holds the hourly price per vCPU
var fargateVCPUPrices = RegionPrices{
	"us-east-1": 0.04048, "us-west-2": 0.04048,
	"eu-west-1": 0.04452, "sa-east-1": 0.04856,
	DefaultRegionKey: 0.04048,
}

// fargateMemoryPrices holds the hourly price per GB of memory
var fargateMemoryPrices = RegionPrices{
	"us-east-1": 0.004445, "us-west-2": 0.004445,
	"eu-west-1": 0.004889, "sa-east-1": 0.005334,
	DefaultRegionKey: 0.004445,
}

// cacheNodePrices holds hourly base prices per ElastiCache node type
// (us-east-1 reference; apply RegionMultiplier).
var cacheNodePrices = map[string]float64{
	"cache.t3.micro":  0.018,
	"cache.t3.small":  0.036,
	"cache.t3.medium": 0.074,
	"cache.m5.large":  0.156,
	"cache.r5.large":  0.216,
}

// searchInstancePrices holds hourly base prices per OpenSearch
// instance type (us-east-1 reference; apply RegionMultiplier).
var searchInstancePrices = map[string]float64{
	"t3.small.search":  0.036,
	"t3.medium.search": 0.073,
	"m5.large.search":  0.139,
	"c5.large.search":  0.123,
}

// regionMultipliers adjusts node-priced services relative to us-east-1
var regionMultipliers = map[string]float64{
	"us-east-1": 1.0,
	"us-west-2": 1.0,
	"eu-west-1": 1.1,
	"sa-east-1": 1.25,
}

package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ebsPrices holds monthly per-GB prices for EBS volume types. Every
// type carries a DefaultRegionKey entry for regions not listed.
var ebsPrices = map[string]RegionPrices{
	"gp2": {
		"us-east-1": 0.10, "us-east-2": 0.10, "us-west-1": 0.11,
		"us-west-2": 0.10, "eu-west-1": 0.11, "ap-northeast-1": 0.12,
		DefaultRegionKey: 0.11,
	},
	"gp3": {
		"us-east-1": 0.08, "us-east-2": 0.08, "us-west-1": 0.09,
		"us-west-2": 0.08, "eu-west-1": 0.09, "ap-northeast-1": 0.09,
		DefaultRegionKey: 0.09,
	},
	"io1": {
		"us-east-1": 0.125, "us-east-2": 0.125, "us-west-1": 0.138,
		"us-west-2": 0.125, "eu-west-1": 0.138, "ap-northeast-1": 0.142,
		DefaultRegionKey: 0.135,
	},
	"st1": {
		"us-east-1": 0.045, "us-east-2": 0.045, "us-west-1": 0.05,
		"us-west-2": 0.045, "eu-west-1": 0.05, "ap-northeast-1": 0.055,
		DefaultRegionKey: 0.05,
	},
	"sc1": {
		"us-east-1": 0.025, "us-east-2": 0.025, "us-west-1": 0.027,
		"us-west-2": 0.025, "eu-west-1": 0.027, "ap-northeast-1": 0.03,
		DefaultRegionKey: 0.027,
	},
	"standard": {
		"us-east-1": 0.05, "us-east-2": 0.05, "us-west-1": 0.055,
		"us-west-2": 0.05, "eu-west-1": 0.055, "ap-northeast-1": 0.06,
		DefaultRegionKey: 0.055,
	},
}

// EBSVolumePrice returns the monthly per-GB price for a volume type in
// a region, falling back to the type's default entry. The second
// return is false when the volume type itself is unknown.
func EBSVolumePrice(volumeType, region string) (decimal.Decimal, bool) {
	table, ok := ebsPrices[volumeType]
	if !ok {
		return decimal.Zero, false
	}
	v, _ := table.ForRegion(region)
	return Price(v), true
}

// VolumeTypes returns the EBS volume types the catalog prices, sorted
func VolumeTypes() []string {
	out := make([]string, 0, len(ebsPrices))
	for volumeType := range ebsPrices {
		out = append(out, volumeType)
	}
	sort.Strings(out)
	return out
}

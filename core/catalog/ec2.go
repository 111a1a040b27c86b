// Package catalog - EC2 price data and instance specifications
package catalog

import (
	"regexp"
	"sort"

	"github.com/shopspring/decimal"

	"pricecalc/core/types"
	"pricecalc/internal/errors"
)

const (
	// DefaultEC2Hourly is the fallback hourly price for unknown
	// instance types (the t3.medium us-east-1 rate).
	DefaultEC2Hourly = 0.0416

	// WindowsMultiplier scales a Linux price to a Windows price in
	// the estimate models.
	WindowsMultiplier = 1.3

	// WindowsHourlyPremium is the flat hourly add applied by the
	// family/size heuristic when no OS-specific static entry exists.
	WindowsHourlyPremium = 0.058
)

// ec2Prices holds on-demand hourly Linux prices per instance type and
// region. Every type carries a DefaultRegionKey entry for regions not
// listed in its row.
var ec2Prices = map[string]RegionPrices{
	// t2 family
	"t2.nano": {
		"us-east-1": 0.0058, "us-east-2": 0.0052, "us-west-1": 0.0069,
		"us-west-2": 0.0059, "eu-west-1": 0.0063, "ap-northeast-1": 0.0074,
		DefaultRegionKey: 0.0065,
	},
	"t2.micro": {
		"us-east-1": 0.0116, "us-east-2": 0.0104, "us-west-1": 0.0139,
		"us-west-2": 0.0117, "eu-west-1": 0.0127, "ap-northeast-1": 0.0146,
		DefaultRegionKey: 0.0130,
	},
	"t2.small": {
		"us-east-1": 0.023, "us-east-2": 0.0207, "us-west-1": 0.0275,
		"us-west-2": 0.0233, "eu-west-1": 0.0250, "ap-northeast-1": 0.0292,
		DefaultRegionKey: 0.0260,
	},
	"t2.medium": {
		"us-east-1": 0.0464, "us-east-2": 0.0418, "us-west-1": 0.0555,
		"us-west-2": 0.0468, "eu-west-1": 0.0504, "ap-northeast-1": 0.0584,
		DefaultRegionKey: 0.0520,
	},
	"t2.large": {
		"us-east-1": 0.0928, "us-east-2": 0.0835, "us-west-1": 0.1109,
		"us-west-2": 0.0936, "eu-west-1": 0.1008, "ap-northeast-1": 0.1168,
		DefaultRegionKey: 0.1040,
	},
	"t2.xlarge": {
		"us-east-1": 0.1856, "us-east-2": 0.1670, "us-west-1": 0.2219,
		"us-west-2": 0.1872, "eu-west-1": 0.2016, "ap-northeast-1": 0.2336,
		DefaultRegionKey: 0.2080,
	},
	"t2.2xlarge": {
		"us-east-1": 0.3712, "us-east-2": 0.3341, "us-west-1": 0.4438,
		"us-west-2": 0.3744, "eu-west-1": 0.4032, "ap-northeast-1": 0.4672,
		DefaultRegionKey: 0.4160,
	},
	// t3 family
	"t3.nano": {
		"us-east-1": 0.0052, "us-east-2": 0.0047, "us-west-1": 0.0062,
		"us-west-2": 0.0052, "eu-west-1": 0.0057, "ap-northeast-1": 0.0066,
		DefaultRegionKey: 0.0059,
	},
	"t3.micro": {
		"us-east-1": 0.0104, "us-east-2": 0.0094, "us-west-1": 0.0125,
		"us-west-2": 0.0104, "eu-west-1": 0.0114, "ap-northeast-1": 0.0132,
		DefaultRegionKey: 0.0117,
	},
	"t3.small": {
		"us-east-1": 0.0208, "us-east-2": 0.0187, "us-west-1": 0.0250,
		"us-west-2": 0.0208, "eu-west-1": 0.0227, "ap-northeast-1": 0.0264,
		DefaultRegionKey: 0.0234,
	},
	// m5 family
	"m5.large": {
		"us-east-1": 0.096, "us-east-2": 0.086, "us-west-1": 0.113,
		"us-west-2": 0.096, "eu-west-1": 0.105, "ap-northeast-1": 0.121,
		DefaultRegionKey: 0.107,
	},
	"m5.xlarge": {
		"us-east-1": 0.192, "us-east-2": 0.173, "us-west-1": 0.226,
		"us-west-2": 0.192, "eu-west-1": 0.210, "ap-northeast-1": 0.242,
		DefaultRegionKey: 0.215,
	},
	"m5.2xlarge": {
		"us-east-1": 0.384, "us-east-2": 0.346, "us-west-1": 0.452,
		"us-west-2": 0.384, "eu-west-1": 0.419, "ap-northeast-1": 0.484,
		DefaultRegionKey: 0.430,
	},
	// c5 family
	"c5.large": {
		"us-east-1": 0.085, "us-east-2": 0.077, "us-west-1": 0.101,
		"us-west-2": 0.085, "eu-west-1": 0.093, "ap-northeast-1": 0.108,
		DefaultRegionKey: 0.095,
	},
	"c5.xlarge": {
		"us-east-1": 0.170, "us-east-2": 0.154, "us-west-1": 0.202,
		"us-west-2": 0.170, "eu-west-1": 0.186, "ap-northeast-1": 0.216,
		DefaultRegionKey: 0.190,
	},
	"c5.2xlarge": {
		"us-east-1": 0.340, "us-east-2": 0.308, "us-west-1": 0.404,
		"us-west-2": 0.340, "eu-west-1": 0.372, "ap-northeast-1": 0.432,
		DefaultRegionKey: 0.380,
	},
	// r5 family
	"r5.large": {
		"us-east-1": 0.126, "us-east-2": 0.113, "us-west-1": 0.149,
		"us-west-2": 0.126, "eu-west-1": 0.139, "ap-northeast-1": 0.160,
		DefaultRegionKey: 0.141,
	},
	"r5.xlarge": {
		"us-east-1": 0.252, "us-east-2": 0.226, "us-west-1": 0.298,
		"us-west-2": 0.252, "eu-west-1": 0.278, "ap-northeast-1": 0.320,
		DefaultRegionKey: 0.282,
	},
	"r5.2xlarge": {
		"us-east-1": 0.504, "us-east-2": 0.452, "us-west-1": 0.596,
		"us-west-2": 0.504, "eu-west-1": 0.556, "ap-northeast-1": 0.640,
		DefaultRegionKey: 0.564,
	},
}

// staticEC2Prices holds exact hourly prices keyed "region:type:os".
// These are the authoritative offline values for ResolveInstancePrice.
var staticEC2Prices = map[string]float64{
	// us-east-1 (N. Virginia)
	"us-east-1:t2.micro:Linux":   0.0116,
	"us-east-1:t2.small:Linux":   0.023,
	"us-east-1:t2.medium:Linux":  0.0464,
	"us-east-1:t2.large:Linux":   0.0928,
	"us-east-1:t3.micro:Linux":   0.0104,
	"us-east-1:t3.small:Linux":   0.0208,
	"us-east-1:t3.medium:Linux":  0.0416,
	"us-east-1:m5.large:Linux":   0.096,
	"us-east-1:m5.xlarge:Linux":  0.192,
	"us-east-1:m5.2xlarge:Linux": 0.384,
	"us-east-1:c5.large:Linux":   0.085,
	"us-east-1:c5.xlarge:Linux":  0.17,
	"us-east-1:r5.large:Linux":   0.126,
	"us-east-1:r5.xlarge:Linux":  0.252,
	"us-east-1:t2.micro:Windows":  0.0162,
	"us-east-1:t2.medium:Windows": 0.0644,
	"us-east-1:m5.large:Windows":  0.192,
	// us-west-2 (Oregon)
	"us-west-2:t2.micro:Linux":  0.0116,
	"us-west-2:t2.medium:Linux": 0.0464,
	"us-west-2:m5.large:Linux":  0.096,
	"us-west-2:c5.large:Linux":  0.085,
	// eu-west-1 (Ireland)
	"eu-west-1:t2.micro:Linux":  0.0126,
	"eu-west-1:t2.medium:Linux": 0.0504,
	"eu-west-1:m5.large:Linux":  0.107,
	"eu-west-1:c5.large:Linux":  0.097,
	// sa-east-1 (Sao Paulo)
	"sa-east-1:t2.micro:Linux":  0.0181,
	"sa-east-1:t2.small:Linux":  0.0362,
	"sa-east-1:t2.medium:Linux": 0.0724,
	"sa-east-1:t3.micro:Linux":  0.0162,
	"sa-east-1:t3.small:Linux":  0.0324,
	"sa-east-1:t3.medium:Linux": 0.0648,
	"sa-east-1:m5.large:Linux":  0.148,
	"sa-east-1:c5.large:Linux":  0.13,
	"sa-east-1:r5.large:Linux":  0.196,
}

// familyBasePrices anchors the heuristic estimator: approximate hourly
// price of the family's small size, us-east-1 Linux.
var familyBasePrices = map[string]float64{
	"t2":  0.0116,
	"t3":  0.0104,
	"t4g": 0.0084,
	"m5":  0.096,
	"m6g": 0.077,
	"m6i": 0.096,
	"c5":  0.085,
	"c6g": 0.068,
	"c6i": 0.085,
	"r5":  0.126,
	"r6g": 0.101,
	"r6i": 0.126,
	"x2":  3.97,
	"z1d": 0.24,
}

// sizeMultipliers scales a family base price by instance size
var sizeMultipliers = map[string]float64{
	"nano":     0.25,
	"micro":    0.5,
	"small":    1,
	"medium":   2,
	"large":    4,
	"xlarge":   8,
	"2xlarge":  16,
	"4xlarge":  32,
	"8xlarge":  64,
	"12xlarge": 96,
	"16xlarge": 128,
	"24xlarge": 192,
	"32xlarge": 256,
	"metal":    128,
}

// estimateRegionMultipliers adjusts heuristic prices by region,
// us-east-1 as the reference.
var estimateRegionMultipliers = map[string]float64{
	"us-east-1":      1.0,
	"us-east-2":      1.0,
	"us-west-1":      1.08,
	"us-west-2":      1.02,
	"ca-central-1":   1.07,
	"eu-west-1":      1.02,
	"eu-west-2":      1.10,
	"eu-west-3":      1.10,
	"eu-central-1":   1.15,
	"eu-north-1":     1.05,
	"ap-northeast-1": 1.20,
	"ap-northeast-2": 1.20,
	"ap-southeast-1": 1.18,
	"ap-southeast-2": 1.22,
	"ap-south-1":     1.15,
	"sa-east-1":      1.30,
}

var instanceTypePattern = regexp.MustCompile(`^([a-z]+[0-9][a-z]*)\.([a-z0-9-]+)$`)

// ParseInstanceType splits an instance type into family and size
func ParseInstanceType(instanceType string) (family, size string, err error) {
	m := instanceTypePattern.FindStringSubmatch(instanceType)
	if m == nil {
		return "", "", errors.Newf(errors.TypeInput, "invalid instance type: %s", instanceType)
	}
	return m[1], m[2], nil
}

// EstimateHourlyPrice approximates an hourly price for an instance
// type absent from every static table, from its family base price,
// size multiplier, and region multiplier. Windows adds the flat
// hourly premium. The result is approximate by construction and must
// be tagged SourceEstimated by callers.
func EstimateHourlyPrice(instanceType, region, os string) (decimal.Decimal, error) {
	family, size, err := ParseInstanceType(instanceType)
	if err != nil {
		return decimal.Zero, err
	}

	base, ok := familyBasePrices[family]
	if !ok {
		base = 0.05
	}

	mult := 1.0
	if m, ok := sizeMultipliers[size]; ok {
		mult = m
	}

	regionMult := 1.0
	if m, ok := estimateRegionMultipliers[region]; ok {
		regionMult = m
	}

	price := Price(base).Mul(Price(mult)).Mul(Price(regionMult))
	if os == "Windows" {
		price = price.Add(Price(WindowsHourlyPremium))
	}
	return price, nil
}

// specFamilies defines the instance specification catalog by family
var specFamilies = map[string][]types.InstanceSpec{
	"t4g": {
		{Type: "t4g.nano", VCPU: 2, Memory: "0.5 GiB", Arch: "arm64"},
		{Type: "t4g.micro", VCPU: 2, Memory: "1 GiB", Arch: "arm64"},
		{Type: "t4g.small", VCPU: 2, Memory: "2 GiB", Arch: "arm64"},
		{Type: "t4g.medium", VCPU: 2, Memory: "4 GiB", Arch: "arm64"},
		{Type: "t4g.large", VCPU: 2, Memory: "8 GiB", Arch: "arm64"},
		{Type: "t4g.xlarge", VCPU: 4, Memory: "16 GiB", Arch: "arm64"},
		{Type: "t4g.2xlarge", VCPU: 8, Memory: "32 GiB", Arch: "arm64"},
	},
	"t3": {
		{Type: "t3.nano", VCPU: 2, Memory: "0.5 GiB", Arch: "x86_64"},
		{Type: "t3.micro", VCPU: 2, Memory: "1 GiB", Arch: "x86_64"},
		{Type: "t3.small", VCPU: 2, Memory: "2 GiB", Arch: "x86_64"},
		{Type: "t3.medium", VCPU: 2, Memory: "4 GiB", Arch: "x86_64"},
		{Type: "t3.large", VCPU: 2, Memory: "8 GiB", Arch: "x86_64"},
		{Type: "t3.xlarge", VCPU: 4, Memory: "16 GiB", Arch: "x86_64"},
		{Type: "t3.2xlarge", VCPU: 8, Memory: "32 GiB", Arch: "x86_64"},
	},
	"m5": {
		{Type: "m5.large", VCPU: 2, Memory: "8 GiB", Arch: "x86_64"},
		{Type: "m5.xlarge", VCPU: 4, Memory: "16 GiB", Arch: "x86_64"},
		{Type: "m5.2xlarge", VCPU: 8, Memory: "32 GiB", Arch: "x86_64"},
		{Type: "m5.4xlarge", VCPU: 16, Memory: "64 GiB", Arch: "x86_64"},
		{Type: "m5.8xlarge", VCPU: 32, Memory: "128 GiB", Arch: "x86_64"},
		{Type: "m5.12xlarge", VCPU: 48, Memory: "192 GiB", Arch: "x86_64"},
		{Type: "m5.16xlarge", VCPU: 64, Memory: "256 GiB", Arch: "x86_64"},
		{Type: "m5.24xlarge", VCPU: 96, Memory: "384 GiB", Arch: "x86_64"},
	},
	"m6g": {
		{Type: "m6g.medium", VCPU: 1, Memory: "4 GiB", Arch: "arm64"},
		{Type: "m6g.large", VCPU: 2, Memory: "8 GiB", Arch: "arm64"},
		{Type: "m6g.xlarge", VCPU: 4, Memory: "16 GiB", Arch: "arm64"},
		{Type: "m6g.2xlarge", VCPU: 8, Memory: "32 GiB", Arch: "arm64"},
		{Type: "m6g.4xlarge", VCPU: 16, Memory: "64 GiB", Arch: "arm64"},
		{Type: "m6g.8xlarge", VCPU: 32, Memory: "128 GiB", Arch: "arm64"},
	},
	"m6i": {
		{Type: "m6i.large", VCPU: 2, Memory: "8 GiB", Arch: "x86_64"},
		{Type: "m6i.xlarge", VCPU: 4, Memory: "16 GiB", Arch: "x86_64"},
		{Type: "m6i.2xlarge", VCPU: 8, Memory: "32 GiB", Arch: "x86_64"},
		{Type: "m6i.4xlarge", VCPU: 16, Memory: "64 GiB", Arch: "x86_64"},
		{Type: "m6i.8xlarge", VCPU: 32, Memory: "128 GiB", Arch: "x86_64"},
	},
	"c5": {
		{Type: "c5.large", VCPU: 2, Memory: "4 GiB", Arch: "x86_64"},
		{Type: "c5.xlarge", VCPU: 4, Memory: "8 GiB", Arch: "x86_64"},
		{Type: "c5.2xlarge", VCPU: 8, Memory: "16 GiB", Arch: "x86_64"},
		{Type: "c5.4xlarge", VCPU: 16, Memory: "32 GiB", Arch: "x86_64"},
	},
	"c6g": {
		{Type: "c6g.medium", VCPU: 1, Memory: "2 GiB", Arch: "arm64"},
		{Type: "c6g.large", VCPU: 2, Memory: "4 GiB", Arch: "arm64"},
		{Type: "c6g.xlarge", VCPU: 4, Memory: "8 GiB", Arch: "arm64"},
		{Type: "c6g.2xlarge", VCPU: 8, Memory: "16 GiB", Arch: "arm64"},
	},
	"r5": {
		{Type: "r5.large", VCPU: 2, Memory: "16 GiB", Arch: "x86_64"},
		{Type: "r5.xlarge", VCPU: 4, Memory: "32 GiB", Arch: "x86_64"},
		{Type: "r5.2xlarge", VCPU: 8, Memory: "64 GiB", Arch: "x86_64"},
		{Type: "r5.4xlarge", VCPU: 16, Memory: "128 GiB", Arch: "x86_64"},
	},
	"r6g": {
		{Type: "r6g.medium", VCPU: 1, Memory: "8 GiB", Arch: "arm64"},
		{Type: "r6g.large", VCPU: 2, Memory: "16 GiB", Arch: "arm64"},
		{Type: "r6g.xlarge", VCPU: 4, Memory: "32 GiB", Arch: "arm64"},
	},
	"g5": {
		{Type: "g5.xlarge", VCPU: 4, Memory: "16 GiB", Arch: "x86_64", GPU: "1x NVIDIA A10G"},
		{Type: "g5.2xlarge", VCPU: 8, Memory: "32 GiB", Arch: "x86_64", GPU: "1x NVIDIA A10G"},
		{Type: "g5.12xlarge", VCPU: 48, Memory: "192 GiB", Arch: "x86_64", GPU: "4x NVIDIA A10G"},
		{Type: "g5.48xlarge", VCPU: 192, Memory: "768 GiB", Arch: "x86_64", GPU: "8x NVIDIA A10G"},
	},
}

var (
	instanceSpecs       map[string]types.InstanceSpec
	sortedInstanceTypes []string
)

func init() {
	instanceSpecs = make(map[string]types.InstanceSpec)
	for family, specs := range specFamilies {
		for _, spec := range specs {
			spec.Family = family
			instanceSpecs[spec.Type] = spec
		}
	}
	sortedInstanceTypes = make([]string, 0, len(instanceSpecs))
	for instanceType := range instanceSpecs {
		sortedInstanceTypes = append(sortedInstanceTypes, instanceType)
	}
	sort.Strings(sortedInstanceTypes)
}

// awsRegions lists the region codes the calculator understands
var awsRegions = []string{
	"us-east-1", "us-east-2", "us-west-1", "us-west-2",
	"af-south-1", "ap-east-1", "ap-south-1",
	"ap-northeast-1", "ap-northeast-2", "ap-northeast-3",
	"ap-southeast-1", "ap-southeast-2",
	"ca-central-1",
	"eu-central-1", "eu-west-1", "eu-west-2", "eu-west-3",
	"eu-north-1", "eu-south-1",
	"me-south-1", "sa-east-1",
}

// operatingSystems lists the OS variants the calculator understands
var operatingSystems = []string{
	"Linux", "Windows", "RHEL", "SUSE",
}

// Package awspricing - Live price lookups against the AWS Price List API
package awspricing

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pricecalc/core/catalog"
	"pricecalc/core/types"
	"pricecalc/internal/errors"
	"pricecalc/internal/logging"
)

// The Price List API is only served from these regions
const defaultAPIRegion = "us-east-1"

const ec2ServiceCode = "AmazonEC2"

// Client queries the AWS Price List API. It implements the resolver's
// LiveSource contract.
type Client struct {
	api        *pricing.Client
	maxResults int32
	logger     *zap.Logger
}

// Options configure the client
type Options struct {
	// Profile is the shared-credentials profile to use, empty for default
	Profile string

	// Region is the endpoint region for the Price List API
	Region string

	// MaxResults caps the page size of GetProducts calls
	MaxResults int32
}

// NewClient builds a client from the ambient AWS credential chain
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	region := opts.Region
	if region == "" {
		region = defaultAPIRegion
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to load AWS configuration", err)
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	return &Client{
		api:        pricing.NewFromConfig(cfg),
		maxResults: maxResults,
		logger:     logging.Logger,
	}, nil
}

// InstancePrice looks up the on-demand hourly price for one instance type
func (c *Client) InstancePrice(ctx context.Context, instanceType, region, os string) (types.PriceRecord, error) {
	filters := []types.PricingFilter{
		{Field: "instanceType", Value: instanceType},
		{Field: "regionCode", Value: region},
		{Field: "operatingSystem", Value: os},
		{Field: "preInstalledSw", Value: "NA"},
		{Field: "tenancy", Value: "Shared"},
		{Field: "capacitystatus", Value: "Used"},
	}

	products, err := c.Products(ctx, ec2ServiceCode, filters)
	if err != nil {
		return types.PriceRecord{}, err
	}
	if len(products) == 0 {
		return types.PriceRecord{}, errors.NotFound("on-demand price",
			instanceType+" ("+os+") in "+region)
	}

	return types.PriceRecord{
		InstanceType:    instanceType,
		Region:          region,
		OperatingSystem: os,
		PricePerHour:    products[0].OnDemandPriceUSD,
		Source:          types.SourceAPI,
	}, nil
}

// InstanceSpec looks up published hardware attributes for an instance type
func (c *Client) InstanceSpec(ctx context.Context, instanceType string) (types.InstanceSpec, error) {
	filters := []types.PricingFilter{
		{Field: "instanceType", Value: instanceType},
		{Field: "regionCode", Value: defaultAPIRegion},
		{Field: "operatingSystem", Value: "Linux"},
		{Field: "preInstalledSw", Value: "NA"},
		{Field: "tenancy", Value: "Shared"},
		{Field: "capacitystatus", Value: "Used"},
	}

	products, err := c.Products(ctx, ec2ServiceCode, filters)
	if err != nil {
		return types.InstanceSpec{}, err
	}
	if len(products) == 0 {
		return types.InstanceSpec{}, errors.NotFound("instance type", instanceType)
	}

	attrs := products[0].Attributes
	vcpu, _ := strconv.Atoi(attrs["vcpu"])
	return types.InstanceSpec{
		Type:   instanceType,
		Family: attrs["instanceFamily"],
		VCPU:   vcpu,
		Memory: attrs["memory"],
		Arch:   attrs["physicalProcessor"],
		GPU:    attrs["gpu"],
	}, nil
}

// InstanceTypes lists the distinct instance types the API prices in the
// default region
func (c *Client) InstanceTypes(ctx context.Context) ([]string, error) {
	filters := []types.PricingFilter{
		{Field: "regionCode", Value: defaultAPIRegion},
		{Field: "operatingSystem", Value: "Linux"},
		{Field: "preInstalledSw", Value: "NA"},
		{Field: "tenancy", Value: "Shared"},
		{Field: "capacitystatus", Value: "Used"},
	}

	products, err := c.Products(ctx, ec2ServiceCode, filters)
	if err != nil {
		return nil, err
	}
	return catalog.ProductInstanceTypes(products), nil
}

// VolumePrice looks up the monthly per-GB price for an EBS volume type
func (c *Client) VolumePrice(ctx context.Context, volumeType, region string) (types.VolumeRecord, error) {
	filters := []types.PricingFilter{
		{Field: "productFamily", Value: "Storage"},
		{Field: "volumeApiName", Value: volumeType},
		{Field: "regionCode", Value: region},
	}

	products, err := c.Products(ctx, ec2ServiceCode, filters)
	if err != nil {
		return types.VolumeRecord{}, err
	}
	if len(products) == 0 {
		return types.VolumeRecord{}, errors.NotFound("volume type",
			volumeType+" in "+region)
	}

	return types.VolumeRecord{
		VolumeType:      volumeType,
		Region:          region,
		PricePerGBMonth: products[0].OnDemandPriceUSD,
		Source:          types.SourceAPI,
	}, nil
}

// Products runs a filtered GetProducts query and parses the price list
func (c *Client) Products(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]types.Product, error) {
	apiFilters := make([]pricingtypes.Filter, 0, len(filters))
	for _, f := range filters {
		apiFilters = append(apiFilters, pricingtypes.Filter{
			Type:  pricingtypes.FilterTypeTermMatch,
			Field: aws.String(f.Field),
			Value: aws.String(f.Value),
		})
	}

	input := &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     apiFilters,
		MaxResults:  aws.Int32(c.maxResults),
	}

	output, err := c.api.GetProducts(ctx, input)
	if err != nil {
		return nil, errors.Wrap(errors.TypeNetwork, "pricing API query failed", err)
	}

	products := make([]types.Product, 0, len(output.PriceList))
	for _, raw := range output.PriceList {
		p, err := parsePriceListEntry(serviceCode, raw)
		if err != nil {
			c.logger.Warn("skipping unparseable price list entry",
				zap.String("service_code", serviceCode),
				zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// priceListEntry mirrors the subset of the Price List JSON we consume
type priceListEntry struct {
	Product struct {
		Attributes map[string]string `json:"attributes"`
	} `json:"product"`
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				Unit         string            `json:"unit"`
				PricePerUnit map[string]string `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

func parsePriceListEntry(serviceCode, raw string) (types.Product, error) {
	var entry priceListEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return types.Product{}, errors.Wrap(errors.TypeInternal, "malformed price list JSON", err)
	}

	for _, term := range entry.Terms.OnDemand {
		for _, dim := range term.PriceDimensions {
			usd, ok := dim.PricePerUnit["USD"]
			if !ok {
				continue
			}
			price, err := decimal.NewFromString(strings.TrimSpace(usd))
			if err != nil {
				return types.Product{}, errors.Wrap(errors.TypeInternal, "unparseable USD price", err)
			}
			return types.Product{
				ServiceCode:      serviceCode,
				Attributes:       entry.Product.Attributes,
				OnDemandPriceUSD: price,
				Unit:             dim.Unit,
			}, nil
		}
	}
	return types.Product{}, errors.Internal("price list entry has no on-demand USD price", nil)
}

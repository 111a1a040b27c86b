// Package costreport - Actual-spend reports from AWS Cost Explorer,
// used to compare estimates against real billing data
package costreport

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/shopspring/decimal"

	"pricecalc/internal/errors"
)

const costMetric = "UnblendedCost"

// ServiceCost is the billed cost of one AWS service over a period
type ServiceCost struct {
	Service string          `json:"service"`
	Amount  decimal.Decimal `json:"amount"`
}

// Report is an actual-spend summary for one billing period
type Report struct {
	Start    string          `json:"start"`
	End      string          `json:"end"`
	Services []ServiceCost   `json:"services"`
	Total    decimal.Decimal `json:"total"`
}

// Client queries Cost Explorer for billed spend
type Client struct {
	api *costexplorer.Client
}

// NewClient builds a client from the ambient AWS credential chain
func NewClient(ctx context.Context, profile string) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to load AWS configuration", err)
	}

	return &Client{api: costexplorer.NewFromConfig(cfg)}, nil
}

// CurrentMonth reports month-to-date spend grouped by service
func (c *Client) CurrentMonth(ctx context.Context) (Report, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return c.Period(ctx, start, now)
}

// LastMonth reports the previous full month's spend grouped by service
func (c *Client) LastMonth(ctx context.Context) (Report, error) {
	now := time.Now()
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfThisMonth.AddDate(0, -1, 0)
	return c.Period(ctx, firstOfLastMonth, firstOfThisMonth)
}

// Period reports spend grouped by service over an arbitrary date range
func (c *Client) Period(ctx context.Context, start, end time.Time) (Report, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: cetypes.GranularityMonthly,
		TimePeriod: &cetypes.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(end.Format("2006-01-02")),
		},
		Metrics: []string{costMetric},
		GroupBy: []cetypes.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: cetypes.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := c.api.GetCostAndUsage(ctx, input)
	if err != nil {
		return Report{}, errors.Wrap(errors.TypeNetwork, "cost explorer query failed", err)
	}
	if len(output.ResultsByTime) == 0 {
		return Report{}, errors.NotFound("cost report",
			start.Format("2006-01-02")+".."+end.Format("2006-01-02"))
	}

	result := output.ResultsByTime[0]
	report := Report{
		Start: aws.ToString(result.TimePeriod.Start),
		End:   aws.ToString(result.TimePeriod.End),
	}

	for _, group := range result.Groups {
		metric, ok := group.Metrics[costMetric]
		if !ok || metric.Amount == nil || len(group.Keys) == 0 {
			continue
		}
		amount, err := decimal.NewFromString(aws.ToString(metric.Amount))
		if err != nil {
			continue
		}
		if amount.IsZero() {
			continue
		}
		report.Services = append(report.Services, ServiceCost{
			Service: group.Keys[0],
			Amount:  amount,
		})
		report.Total = report.Total.Add(amount)
	}

	sort.Slice(report.Services, func(i, j int) bool {
		return report.Services[i].Amount.GreaterThan(report.Services[j].Amount)
	})

	return report, nil
}

// Package cmd - compare command
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"pricecalc/core/session"
	"pricecalc/core/types"
	"pricecalc/internal/config"
	"pricecalc/remote/costreport"
)

var compareLastMonth bool

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <export.json>",
	Short: "Compare an exported estimate against actual AWS billing",
	Long: `Compare a previously exported estimation session against the actual
spend reported by Cost Explorer.

Examples:
  pricecalc estimate --file resources.hcl --export costs.json
  pricecalc compare costs.json
  pricecalc compare costs.json --last-month`,
	Args: cobra.ExactArgs(1),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&compareLastMonth, "last-month", false, "compare against the previous full month instead of month-to-date")
}

// billingNames maps service kinds to the names Cost Explorer reports
var billingNames = map[types.ServiceKind]string{
	types.ServiceEC2:         "Elastic Compute Cloud",
	types.ServiceS3:          "Simple Storage Service",
	types.ServiceLambda:      "Lambda",
	types.ServiceFargate:     "Elastic Container Service",
	types.ServiceCloudWatch:  "CloudWatch",
	types.ServiceElastiCache: "ElastiCache",
	types.ServiceECR:         "Container Registry",
	types.ServiceOpenSearch:  "OpenSearch",
	types.ServiceRoute53:     "Route 53",
}

func runCompare(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read export file: %w", err)
	}
	export, err := session.ParseExport(data)
	if err != nil {
		return err
	}

	client, err := costreport.NewClient(cmd.Context(), config.Get().AWS.Profile)
	if err != nil {
		return err
	}

	var report costreport.Report
	if compareLastMonth {
		report, err = client.LastMonth(cmd.Context())
	} else {
		report, err = client.CurrentMonth(cmd.Context())
	}
	if err != nil {
		return err
	}

	printComparison(export, report)
	return nil
}

func printComparison(export session.Export, report costreport.Report) {
	// Estimates grouped by service kind
	estimated := make(map[types.ServiceKind]decimal.Decimal)
	for _, res := range export.Resources {
		estimated[res.Service] = estimated[res.Service].Add(res.TotalPrice)
	}

	tw := table.Table{}
	tw.AppendHeader(table.Row{
		"Service",
		"Estimated",
		fmt.Sprintf("Actual\n(%s to %s)", report.Start, report.End),
		"Difference",
	})

	for _, kind := range types.AllServiceKinds() {
		est, ok := estimated[kind]
		if !ok {
			continue
		}
		actual := actualFor(report, kind)
		diff := actual.Sub(est)

		diffCell := text.FgGreen.Sprintf("%.2f", diff.InexactFloat64())
		if diff.IsPositive() {
			diffCell = text.FgRed.Sprintf("+%.2f", diff.InexactFloat64())
		}

		tw.AppendRow(table.Row{
			string(kind),
			fmt.Sprintf("$%.2f", est.InexactFloat64()),
			fmt.Sprintf("$%.2f", actual.InexactFloat64()),
			diffCell,
		})
	}

	tw.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("$%.2f", export.TotalCost.InexactFloat64()),
		fmt.Sprintf("$%.2f", report.Total.InexactFloat64()),
		fmt.Sprintf("%.2f", report.Total.Sub(export.TotalCost).InexactFloat64()),
	})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

// actualFor sums the billed services whose Cost Explorer name matches
// the kind's billing name
func actualFor(report costreport.Report, kind types.ServiceKind) decimal.Decimal {
	needle, ok := billingNames[kind]
	if !ok {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, svc := range report.Services {
		if strings.Contains(svc.Service, needle) {
			total = total.Add(svc.Amount)
		}
	}
	return total
}

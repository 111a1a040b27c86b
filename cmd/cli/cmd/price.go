// Package cmd - price command
package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"pricecalc/core/types"
)

var (
	priceRegion string
	priceOS     string
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <instance-type>",
	Short: "Resolve the on-demand price of an EC2 instance type",
	Long: `Resolve the hourly and monthly on-demand price of an EC2 instance
type. The live pricing API is consulted when reachable; otherwise the
bundled catalog answers, and unknown types get a heuristic estimate.

Examples:
  pricecalc price t3.micro
  pricecalc price m5.large --region eu-west-1 --os Windows`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&priceRegion, "region", "r", "us-east-1", "AWS region")
	priceCmd.Flags().StringVarP(&priceOS, "os", "o", "Linux", "operating system (Linux, Windows, RHEL, SUSE)")
}

func runPrice(cmd *cobra.Command, args []string) error {
	resolver := buildResolver(cmd.Context())

	record, err := resolver.ResolveInstancePrice(cmd.Context(), args[0], priceRegion, priceOS)
	if err != nil {
		return err
	}

	tw := table.Table{}
	tw.AppendRows([]table.Row{
		{"Instance Type", record.InstanceType},
		{"Region", record.Region},
		{"Operating System", record.OperatingSystem},
		{"Hourly Price", "$" + record.PricePerHour.String()},
		{"Monthly Cost", fmt.Sprintf("$%.2f (%s hours)", record.MonthlyCost.InexactFloat64(), record.HoursPerMonth.String())},
		{"Source", sourceLabel(record.Source)},
	})
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())

	if record.Note != "" {
		fmt.Println(text.FgYellow.Sprint("Note: " + record.Note))
	}

	return nil
}

func sourceLabel(source types.PriceSource) string {
	switch source {
	case types.SourceAPI:
		return text.FgGreen.Sprint("live pricing API")
	case types.SourceStatic:
		return "bundled catalog"
	case types.SourceEstimated:
		return text.FgYellow.Sprint("heuristic estimate")
	default:
		return string(source)
	}
}

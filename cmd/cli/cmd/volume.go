// Package cmd - volume command
package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var volumeRegion string

// volumeCmd represents the volume command
var volumeCmd = &cobra.Command{
	Use:   "volume <volume-type>",
	Short: "Resolve the per-GB price of an EBS volume type",
	Long: `Resolve the monthly per-GB storage price of an EBS volume type
(gp2, gp3, io1, st1, sc1, standard). The live pricing API is consulted
when reachable; otherwise the bundled catalog answers.

Examples:
  pricecalc volume gp3
  pricecalc volume io1 --region eu-west-1`,
	Args: cobra.ExactArgs(1),
	RunE: runVolume,
}

func init() {
	volumeCmd.Flags().StringVarP(&volumeRegion, "region", "r", "us-east-1", "AWS region")
}

func runVolume(cmd *cobra.Command, args []string) error {
	resolver := buildResolver(cmd.Context())

	record, err := resolver.ResolveVolumePrice(cmd.Context(), args[0], volumeRegion)
	if err != nil {
		return err
	}

	tw := table.Table{}
	tw.AppendRows([]table.Row{
		{"Volume Type", record.VolumeType},
		{"Region", record.Region},
		{"Price per GB-month", "$" + record.PricePerGBMonth.String()},
		{"Source", sourceLabel(record.Source)},
	})
	tw.SetStyle(table.StyleRounded)
	fmt.Println(tw.Render())

	return nil
}

// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"pricecalc/core/session"
	"pricecalc/core/types"
	"pricecalc/input"
)

var (
	paramFlags    []string
	batchFile     string
	exportFile    string
	showBreakdown bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [service]",
	Short: "Estimate monthly cost for one or more resources",
	Long: `Estimate the monthly cost of AWS resources.

Pass a service name plus --param flags for a single resource, or
--file with an HCL batch file describing several resources.

Examples:
  pricecalc estimate EC2 --param instance_type=t3.small --param quantity=2
  pricecalc estimate S3 --param storage_gb=500 --param storage_class=Standard-IA
  pricecalc estimate --file resources.hcl --export costs.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil, "estimation parameter as key=value (repeatable)")
	estimateCmd.Flags().StringVarP(&batchFile, "file", "f", "", "HCL batch file describing resources")
	estimateCmd.Flags().StringVarP(&exportFile, "export", "e", "", "write the session as JSON to this path")
	estimateCmd.Flags().BoolVarP(&showBreakdown, "details", "d", true, "show per-component cost breakdown")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if batchFile == "" && len(args) == 0 {
		return fmt.Errorf("either a service name or --file is required")
	}

	resolver := buildResolver(cmd.Context())
	list := session.NewList()

	if batchFile != "" {
		requests, err := input.NewLoader().Load(batchFile)
		if err != nil {
			return err
		}
		for _, req := range requests {
			quote, err := resolver.EstimatePrice(req.Service, req.Params)
			if err != nil {
				return fmt.Errorf("resource %q: %w", req.Label, err)
			}
			list.Add(req.Label, quote)
		}
	}

	if len(args) > 0 {
		service := types.ServiceKind(args[0])
		params, err := parseParams(paramFlags)
		if err != nil {
			return err
		}
		quote, err := resolver.EstimatePrice(service, params)
		if err != nil {
			return err
		}
		list.Add(strings.ToLower(args[0]), quote)
	}

	printSession(list)

	if exportFile != "" {
		data, err := list.Export()
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("\nSession exported to %s\n", exportFile)
	}

	return nil
}

// parseParams turns key=value flags into estimation parameters,
// keeping numeric values numeric
func parseParams(flags []string) (types.Params, error) {
	params := make(types.Params, len(flags))
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --param %q, expected key=value", flag)
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			params[key] = f
		} else {
			params[key] = value
		}
	}
	return params, nil
}

func printSession(list *session.List) {
	tw := table.Table{}
	tw.AppendHeader(table.Row{"Resource", "Service", "Unit Price", "Quantity", "Monthly Cost"})

	for _, res := range list.Resources() {
		name := res.Label
		if res.Unpriced {
			name = text.FgYellow.Sprintf("%s (unpriced)", name)
		}
		tw.AppendRow(table.Row{
			name,
			string(res.Service),
			"$" + res.UnitPrice.String(),
			res.Quantity.String(),
			fmt.Sprintf("$%.2f", res.TotalPrice.InexactFloat64()),
		})

		if showBreakdown {
			for _, sc := range res.SubCosts {
				tw.AppendRow(table.Row{
					"  " + sc.Name,
					"",
					"",
					"",
					fmt.Sprintf("$%.2f", sc.Amount.InexactFloat64()),
				})
			}
		}
	}

	tw.AppendFooter(table.Row{
		"TOTAL", "", "", "",
		text.FgHiGreen.Sprintf("$%.2f", list.Total().InexactFloat64()),
	})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())
}

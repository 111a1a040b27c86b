// Package cmd - instances and specs commands
package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// instancesCmd represents the instances command
var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List known EC2 instance types",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := buildResolver(cmd.Context())

		instanceTypes, err := resolver.ListInstanceTypes(cmd.Context())
		if err != nil {
			return err
		}

		for _, t := range instanceTypes {
			fmt.Println(t)
		}
		fmt.Printf("\n%d instance types\n", len(instanceTypes))
		return nil
	},
}

// specsCmd represents the specs command
var specsCmd = &cobra.Command{
	Use:   "specs <instance-type>",
	Short: "Show hardware specs for an EC2 instance type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := buildResolver(cmd.Context())

		spec, err := resolver.ResolveInstanceSpecs(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		tw := table.Table{}
		tw.AppendRows([]table.Row{
			{"Instance Type", spec.Type},
			{"Family", spec.Family},
			{"vCPU", spec.VCPU},
			{"Memory", spec.Memory},
			{"Architecture", spec.Arch},
			{"GPU", spec.GPU},
		})
		tw.SetStyle(table.StyleRounded)
		fmt.Println(tw.Render())
		return nil
	},
}

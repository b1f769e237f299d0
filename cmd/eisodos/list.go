package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustopian/eisodos/env/raw"
	"github.com/rustopian/eisodos/env/sdk"
	"github.com/rustopian/eisodos/harness"
	"github.com/rustopian/eisodos/target"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list every registered target and every sweep combination",
	RunE: func(cmd *cobra.Command, args []string) error {
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		fmt.Fprintln(writer, "ENVIRONMENT\tID\tTARGET")
		for _, descriptor := range sdk.NewExecutor().Registry().Descriptors() {
			fmt.Fprintf(writer, "%v\t%v\t%v\n", sdk.Env, descriptor.ID, descriptor.Name)
		}
		for _, descriptor := range raw.NewExecutor().Registry().Descriptors() {
			fmt.Fprintf(writer, "%v\t%v\t%v\n", raw.Env, descriptor.ID, descriptor.Name)
		}

		fmt.Fprintln(writer, "")
		fmt.Fprintln(writer, "ENVIRONMENT\tID\tPLAN\tSTRATEGY\tVARIATIONS")
		for _, environment := range harness.StandardEnvironments() {
			for _, plan := range environment.Plans {
				descriptor := target.Descriptor{ID: plan.ID, Name: plan.Name}
				variations := plan.Strategy.Generate(descriptor)
				fmt.Fprintf(writer, "%v\t%v\t%v\t%v\t%v\n",
					environment.Name, plan.ID, plan.Name, plan.Strategy.Name(), len(variations))
			}
		}
		return writer.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DAY\tID\tNAME\tDESCRIPTION")
			for _, meta := range a.registry.ListMetadata() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", meta.Day, meta.ID, meta.Name, meta.Description)
			}
			return tw.Flush()
		},
	}
}

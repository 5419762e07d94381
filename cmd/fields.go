package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/shashikanthshadow/talentscout/internal/candidate"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the candidate fields in the order they are collected",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for i, step := range candidate.CollectionOrder() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, step.Field, step.Hint)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

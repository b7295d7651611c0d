package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/typedrills/records"
)

func newRecordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Show available products, completed tasks and profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			available := records.AvailableProducts(records.SampleProducts())
			completed := records.CompletedTasks(records.SampleTasks())
			profiles := records.SampleProfiles()

			if jsonOutput() {
				return printJSON(out, map[string]any{
					"availableProducts": available,
					"completedTasks":    completed,
					"profiles":          profiles,
				})
			}

			section(out, "Available products")
			for _, line := range records.Describe(available) {
				fmt.Fprintln(out, " ", line)
			}
			section(out, "Completed tasks")
			for _, line := range records.Describe(completed) {
				fmt.Fprintln(out, " ", line)
			}
			section(out, "Profiles")
			for _, line := range records.Describe(profiles) {
				fmt.Fprintln(out, " ", line)
			}
			return nil
		},
	}
}

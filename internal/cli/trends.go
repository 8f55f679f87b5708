package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newTrendsCommand(root *rootOptions) *cobra.Command {
	var (
		location   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Score the current posts and print the trend ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cleanup, err := root.runner()
			if err != nil {
				return err
			}
			defer cleanup()

			report, _, err := runner.Trends(cmd.Context(), location)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(w, "Analysis date: %s\n", report.AnalysisDate)
			fmt.Fprintf(w, "Weekend:       %s\n", report.WeekendDate)
			fmt.Fprintf(w, "Posts:         %d\n\n", report.PostCount)

			rows := make([][]string, 0, len(report.Scores))
			for i, ts := range report.Scores {
				rows = append(rows, []string{strconv.Itoa(i + 1), ts.Term, strconv.Itoa(ts.Score)})
			}

			table := tablewriter.NewTable(w,
				tablewriter.WithRendition(tw.Rendition{
					Borders: tw.BorderNone,
					Settings: tw.Settings{
						Separators: tw.Separators{
							ShowHeader: tw.Off,
						},
					},
				}),
			)
			table.Header([]string{"Rank", "Term", "Score"})
			if err := table.Bulk(rows); err != nil {
				return err
			}
			return table.Render()
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", `location filter, or "all"`)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/service/pipeline"
)

func newReportCommand(root *rootOptions) *cobra.Command {
	var (
		location       string
		restaurantType string
		demo           bool
		out            string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full pipeline and print the weekly report",
		Long: `Scrape, analyze, request dish suggestions, and render the weekly markdown report.

The suggestion service must be reachable unless --demo is given. A failed or
malformed suggestion response stops the run; demo suggestions are never used
as an automatic fallback.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cleanup, err := root.runner()
			if err != nil {
				return err
			}
			defer cleanup()

			stderr := cmd.ErrOrStderr()
			progress := color.New(color.FgCyan)
			result, err := runner.Run(cmd.Context(), pipeline.Options{
				Location:       location,
				RestaurantType: restaurantType,
				UseDemo:        demo,
			}, func(ev pipeline.StageEvent) {
				progress.Fprintf(stderr, "%s %s...\n", stageIcon(ev.Stage), ev.Message)
			})
			if err != nil {
				if errors.Is(err, suggestion.ErrGenerationFailed) || errors.Is(err, suggestion.ErrInvalidFormat) {
					return fmt.Errorf("%w (rerun with --demo to use canned suggestions)", err)
				}
				return err
			}

			if out != "" {
				path := out
				if strings.HasSuffix(out, string(os.PathSeparator)) {
					path = out + result.ReportFilename
				}
				if err := os.WriteFile(path, []byte(result.Report), 0o644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				color.New(color.FgGreen).Fprintf(stderr, "✓ Report written to %s\n", path)
				return nil
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, strings.Repeat("=", 60))
			fmt.Fprintln(w, result.Report)
			fmt.Fprintln(w, strings.Repeat("=", 60))
			return nil
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", `location filter, or "all"`)
	cmd.Flags().StringVarP(&restaurantType, "restaurant-type", "r", suggestion.DefaultRestaurantType, "restaurant type label")
	cmd.Flags().BoolVar(&demo, "demo", false, "use canned demo suggestions instead of calling the LLM")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to this file (a trailing separator uses the dated filename)")

	return cmd
}

func stageIcon(stage pipeline.Stage) string {
	switch stage {
	case pipeline.StageScraping:
		return "🔍"
	case pipeline.StageAnalyzing:
		return "📊"
	case pipeline.StageSuggesting:
		return "🤖"
	case pipeline.StageRendering:
		return "📝"
	default:
		return "✅"
	}
}

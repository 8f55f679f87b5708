// Package cli contains the foodtrend command-line interface
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"foodtrend/internal/config"
	"foodtrend/internal/di"
	"foodtrend/internal/domain/post"
	"foodtrend/internal/domain/trend"
	"foodtrend/internal/logger"
	"foodtrend/internal/service/pipeline"
)

// Runner is the pipeline surface the commands drive
type Runner interface {
	Trends(ctx context.Context, location string) (trend.Report, []post.Post, error)
	Run(ctx context.Context, opts pipeline.Options, observe pipeline.Observer) (pipeline.Result, error)
}

// RunnerFactory builds a Runner from configuration and returns a cleanup func
type RunnerFactory func(cfg config.Config, logger *slog.Logger) (Runner, func(), error)

// DefaultRunnerFactory wires the production components
func DefaultRunnerFactory(cfg config.Config, logger *slog.Logger) (Runner, func(), error) {
	components, err := di.NewApplicationComponents(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return components.Pipeline, components.Close, nil
}

type rootOptions struct {
	envFile string
	verbose bool
	factory RunnerFactory
	logger  *slog.Logger
	cfg     config.Config
}

// NewRootCommand creates the foodtrend root command
func NewRootCommand(factory RunnerFactory) *cobra.Command {
	if factory == nil {
		factory = DefaultRunnerFactory
	}
	opts := &rootOptions{factory: factory}

	root := &cobra.Command{
		Use:   "foodtrend",
		Short: "Hyper-local food trend agent",
		Long: `foodtrend scores local social media posts for trending food items,
asks an LLM for themed weekend specials, and renders a markdown report.

Example usage:
  foodtrend trends --location Westside       # Show trend scores only
  foodtrend report --restaurant-type bistro  # Full report (needs ANTHROPIC_API_KEY)
  foodtrend report --demo --out report.md    # Report with canned suggestions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded into the environment")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newReportCommand(opts))
	root.AddCommand(newTrendsCommand(opts))

	return root
}

// Execute runs the root command with the production wiring
func Execute() error {
	return NewRootCommand(nil).Execute()
}

func (o *rootOptions) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	o.cfg = cfg

	level := cfg.Log.Level
	if o.verbose {
		level = "debug"
	}
	o.logger = logger.New(cmd.ErrOrStderr(), level, "text")

	o.logger.Debug("configuration loaded",
		"model", cfg.Suggest.Model,
		"floor_negative_likes", cfg.Trend.FloorNegativeLikes,
		"nats_enabled", cfg.NATS.URL != "",
	)
	return nil
}

func (o *rootOptions) runner() (Runner, func(), error) {
	r, cleanup, err := o.factory(o.cfg, o.logger)
	if err != nil {
		return nil, nil, err
	}
	if cleanup == nil {
		cleanup = func() {}
	}
	return r, cleanup, nil
}

// ExitCode prints err and returns the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

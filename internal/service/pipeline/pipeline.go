// internal/service/pipeline/pipeline.go

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"foodtrend/internal/adapter/events"
	"foodtrend/internal/domain/post"
	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/domain/trend"
	"foodtrend/internal/service/report"
)

// SampleSize is the number of posts kept on a Result for display
const SampleSize = 5

// Stage identifies a step of a pipeline run
type Stage string

const (
	StageScraping   Stage = "scraping"
	StageAnalyzing  Stage = "analyzing"
	StageSuggesting Stage = "suggesting"
	StageRendering  Stage = "rendering"
	StageCompleted  Stage = "completed"
)

// StageEvent reports progress of a run
type StageEvent struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// Observer receives stage events in order
type Observer func(StageEvent)

// Options are the caller's choices for one run
type Options struct {
	Location       string `json:"location"`
	RestaurantType string `json:"restaurant_type"`

	// UseDemo skips the suggestion service and uses the canned demo result
	UseDemo bool `json:"demo"`
}

// Result is the immutable output of one run
type Result struct {
	ID             string            `json:"id"`
	Location       string            `json:"location"`
	RestaurantType string            `json:"restaurant_type"`
	Demo           bool              `json:"demo"`
	Trends         trend.Report      `json:"trends"`
	Suggestions    suggestion.Result `json:"suggestions"`
	Report         string            `json:"report"`
	ReportFilename string            `json:"report_filename"`
	PostsSample    []post.Post       `json:"posts_sample"`
	GeneratedAt    time.Time         `json:"generated_at"`
}

// RunPublisher publishes run completion events
type RunPublisher interface {
	PublishRunCompleted(ctx context.Context, event events.RunCompletedEvent) error
}

// Pipeline runs Source → Scorer → Requester → Renderer
type Pipeline struct {
	detector  trend.Detector
	requester suggestion.Requester
	publisher RunPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// New creates a pipeline. publisher may be nil.
func New(
	detector trend.Detector,
	requester suggestion.Requester,
	publisher RunPublisher,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		detector:  detector,
		requester: requester,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Trends runs only the acquisition and scoring stages
func (p *Pipeline) Trends(ctx context.Context, location string) (trend.Report, []post.Post, error) {
	return p.detector.Detect(ctx, location)
}

// Run executes every stage. A suggestion failure stops the run and is returned
// unchanged; the demo result is used only when opts.UseDemo is set.
func (p *Pipeline) Run(ctx context.Context, opts Options, observe Observer) (Result, error) {
	if observe == nil {
		observe = func(StageEvent) {}
	}
	if opts.RestaurantType == "" {
		opts.RestaurantType = suggestion.DefaultRestaurantType
	}

	runID := uuid.New().String()
	logger := p.logger.With("run_id", runID, "location", opts.Location, "restaurant_type", opts.RestaurantType)

	observe(StageEvent{Stage: StageScraping, Message: scrapingMessage(opts.Location)})
	trends, posts, err := p.detector.Detect(ctx, opts.Location)
	if err != nil {
		return Result{}, fmt.Errorf("error detecting trends: %w", err)
	}
	observe(StageEvent{Stage: StageAnalyzing, Message: fmt.Sprintf("Analyzed %d posts for trending food items", trends.PostCount)})

	var suggestions suggestion.Result
	if opts.UseDemo {
		observe(StageEvent{Stage: StageSuggesting, Message: "Using demo dish suggestions"})
		suggestions = suggestion.DemoResult()
	} else {
		observe(StageEvent{Stage: StageSuggesting, Message: "Consulting LLM for dish suggestions"})
		suggestions, err = p.requester.Suggest(ctx, suggestion.NewRequest(trends, opts.RestaurantType))
		if err != nil {
			logger.Error("run stopped at suggestion stage", "error", err)
			return Result{}, err
		}
	}

	observe(StageEvent{Stage: StageRendering, Message: "Generating weekly report"})
	rendered := report.Render(trends, suggestions)

	result := Result{
		ID:             runID,
		Location:       opts.Location,
		RestaurantType: opts.RestaurantType,
		Demo:           opts.UseDemo,
		Trends:         trends,
		Suggestions:    suggestions,
		Report:         rendered,
		ReportFilename: report.Filename(trends.AnalysisDate),
		PostsSample:    samplePosts(posts),
		GeneratedAt:    p.now(),
	}

	if p.publisher != nil {
		event := events.RunCompletedEvent{
			RunID:          result.ID,
			Location:       result.Location,
			RestaurantType: result.RestaurantType,
			Demo:           result.Demo,
			Headline:       result.Suggestions.MarketingHeadline,
			GeneratedAt:    result.GeneratedAt,
		}
		if err := p.publisher.PublishRunCompleted(ctx, event); err != nil {
			logger.Warn("error publishing run event", "error", err)
		}
	}

	observe(StageEvent{Stage: StageCompleted, Message: "Agent run complete"})
	logger.Info("run completed", "top_terms", trends.TopTerms, "demo", opts.UseDemo)

	return result, nil
}

func scrapingMessage(location string) string {
	if location == "" || location == post.AllLocations {
		return "Scraping local social media trends"
	}
	return fmt.Sprintf("Scraping local social media trends in %s", location)
}

func samplePosts(posts []post.Post) []post.Post {
	n := len(posts)
	if n > SampleSize {
		n = SampleSize
	}
	out := make([]post.Post, n)
	copy(out, posts[:n])
	return out
}

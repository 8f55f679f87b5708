// internal/service/listening/detector.go

package listening

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"foodtrend/internal/domain/post"
	"foodtrend/internal/domain/trend"
)

// EventPublisher publishes analyzed trend reports to the event bus
type EventPublisher interface {
	PublishTrends(ctx context.Context, location string, report trend.Report) error
}

// TrendDetector implements the trend.Detector interface
type TrendDetector struct {
	source        post.Source
	analyzer      trend.Analyzer
	eventBus      EventPublisher
	logger        *slog.Logger
	trendHandlers []func(trend.Report) error
	mu            sync.RWMutex
}

// NewTrendDetector creates a new trend detector. eventBus may be nil.
func NewTrendDetector(
	source post.Source,
	analyzer trend.Analyzer,
	eventBus EventPublisher,
	logger *slog.Logger,
) *TrendDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrendDetector{
		source:        source,
		analyzer:      analyzer,
		eventBus:      eventBus,
		logger:        logger,
		trendHandlers: []func(trend.Report) error{},
	}
}

// Detect acquires a post snapshot for location and scores it
func (td *TrendDetector) Detect(ctx context.Context, location string) (trend.Report, []post.Post, error) {
	posts, err := td.source.Posts(ctx, location)
	if err != nil {
		return trend.Report{}, nil, fmt.Errorf("error acquiring posts: %w", err)
	}

	report := td.analyzer.Analyze(posts)
	td.logger.Info("trends analyzed",
		"location", location,
		"posts", report.PostCount,
		"total_likes", post.TotalLikes(posts),
		"matched_terms", len(report.Scores),
		"top_terms", report.TopTerms,
	)

	if td.eventBus != nil {
		if err := td.eventBus.PublishTrends(ctx, location, report); err != nil {
			td.logger.Warn("error publishing trend event", "error", err)
		}
	}

	td.callTrendHandlers(report)

	return report, posts, nil
}

// RegisterTrendHandler registers a callback function for when trends are analyzed
func (td *TrendDetector) RegisterTrendHandler(handler func(trend.Report) error) error {
	if handler == nil {
		return fmt.Errorf("trend handler is nil")
	}

	td.mu.Lock()
	defer td.mu.Unlock()

	td.trendHandlers = append(td.trendHandlers, handler)
	return nil
}

// callTrendHandlers calls all registered trend handlers
func (td *TrendDetector) callTrendHandlers(r trend.Report) {
	td.mu.RLock()
	handlers := make([]func(trend.Report) error, len(td.trendHandlers))
	copy(handlers, td.trendHandlers)
	td.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(r); err != nil {
			td.logger.Warn("error in trend handler", "error", err)
		}
	}
}

var _ trend.Detector = (*TrendDetector)(nil)

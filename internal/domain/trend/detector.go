// internal/domain/trend/detector.go

package trend

import (
	"context"

	"foodtrend/internal/domain/post"
)

// Analyzer scores posts against a vocabulary
type Analyzer interface {
	// Analyze produces a ranked report from posts. It never mutates posts.
	Analyze(posts []post.Post) Report
}

// Detector acquires posts for a location and analyzes them
type Detector interface {
	// Detect scores the current post snapshot for location
	Detect(ctx context.Context, location string) (Report, []post.Post, error)

	// RegisterTrendHandler registers a callback invoked after each detection
	RegisterTrendHandler(handler func(Report) error) error
}

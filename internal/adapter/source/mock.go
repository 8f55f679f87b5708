// internal/adapter/source/mock.go

package source

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"foodtrend/internal/domain/post"
)

// MockConfig contains configuration for the mock post source
type MockConfig struct {
	// JitterMin and JitterMax bound the random adjustment applied to likes, inclusive
	JitterMin int
	JitterMax int

	// Rand drives the jitter. Defaults to a time-seeded generator.
	Rand *rand.Rand

	// Now stamps ScrapedAt. Defaults to time.Now.
	Now func() time.Time
}

// DefaultMockConfig returns the default jitter bounds
func DefaultMockConfig() MockConfig {
	return MockConfig{
		JitterMin: -100,
		JitterMax: 500,
	}
}

// MockSource serves a static table of local food posts with jittered likes
type MockSource struct {
	posts  []post.Post
	config MockConfig
	randMu sync.Mutex
}

// NewMockSource creates a source over the built-in post table
func NewMockSource(config MockConfig) (*MockSource, error) {
	return NewMockSourceWithPosts(mockPosts, config)
}

// NewMockSourceWithPosts creates a source over posts
func NewMockSourceWithPosts(posts []post.Post, config MockConfig) (*MockSource, error) {
	if config.JitterMax < config.JitterMin {
		return nil, fmt.Errorf("jitter max %d is below jitter min %d", config.JitterMax, config.JitterMin)
	}
	if config.Rand == nil {
		config.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	table := make([]post.Post, len(posts))
	copy(table, posts)

	return &MockSource{
		posts:  table,
		config: config,
	}, nil
}

// Posts returns a fresh jittered copy of the table filtered by location
func (s *MockSource) Posts(ctx context.Context, location string) ([]post.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected := post.FilterByLocation(s.posts, location)
	scrapedAt := s.config.Now()

	out := make([]post.Post, len(selected))
	s.randMu.Lock()
	for i, p := range selected {
		p.Likes += s.jitter()
		p.ScrapedAt = scrapedAt
		out[i] = p
	}
	s.randMu.Unlock()

	return out, nil
}

// Locations returns the distinct locations of the table in first-seen order
func (s *MockSource) Locations() []string {
	seen := make(map[string]struct{})
	var locations []string
	for _, p := range s.posts {
		if _, ok := seen[p.Location]; ok {
			continue
		}
		seen[p.Location] = struct{}{}
		locations = append(locations, p.Location)
	}
	return locations
}

// jitter must be called with randMu held
func (s *MockSource) jitter() int {
	span := s.config.JitterMax - s.config.JitterMin
	if span == 0 {
		return s.config.JitterMin
	}
	return s.config.JitterMin + s.config.Rand.Intn(span+1)
}

var _ post.Source = (*MockSource)(nil)

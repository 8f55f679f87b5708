// internal/adapter/storage/run_store.go

package storage

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"foodtrend/internal/service/pipeline"
)

// ErrNotFound is returned when a run is unknown or was evicted
var ErrNotFound = errors.New("run not found")

// RunStore keeps the most recent pipeline results in memory. Nothing is persisted.
type RunStore struct {
	cache *lru.Cache[string, pipeline.Result]
}

// NewRunStore creates a store holding at most size results
func NewRunStore(size int) (*RunStore, error) {
	cache, err := lru.New[string, pipeline.Result](size)
	if err != nil {
		return nil, fmt.Errorf("error creating run cache: %w", err)
	}
	return &RunStore{cache: cache}, nil
}

// SaveRun stores a result under its ID
func (s *RunStore) SaveRun(r pipeline.Result) {
	s.cache.Add(r.ID, r)
}

// GetRun returns the result stored under id
func (s *RunStore) GetRun(id string) (pipeline.Result, error) {
	r, ok := s.cache.Get(id)
	if !ok {
		return pipeline.Result{}, ErrNotFound
	}
	return r, nil
}

// Len returns the number of stored results
func (s *RunStore) Len() int {
	return s.cache.Len()
}

package llm_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtrend/internal/adapter/llm"
	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/domain/trend"
)

type fakeGenerator struct {
	response  string
	err       error
	block     bool
	prompt    string
	maxTokens int
	calls     int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	g.calls++
	g.prompt = prompt
	g.maxTokens = maxTokens
	if g.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return g.response, g.err
}

func (g *fakeGenerator) Version() string { return "fake-model" }

func testRequest() suggestion.Request {
	return suggestion.Request{
		TopTerms:       []string{"birria", "ramen"},
		Scores:         trend.Scores{{Term: "birria", Score: 150}, {Term: "ramen", Score: 50}},
		WeekendDate:    "October 17",
		RestaurantType: "bistro",
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuggestionRequester_Success(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" + validPayload(t) + "\n```"}
	r := llm.NewSuggestionRequester(gen, llm.RequesterConfig{}, quietLogger())

	result, err := r.Suggest(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, suggestion.DemoResult(), result)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1024, gen.maxTokens)
	assert.Contains(t, gen.prompt, "- Restaurant type: bistro")
}

func TestSuggestionRequester_GenerationFailure(t *testing.T) {
	upstream := errors.New("connection refused")
	r := llm.NewSuggestionRequester(&fakeGenerator{err: upstream}, llm.RequesterConfig{MaxTokens: 512}, quietLogger())

	_, err := r.Suggest(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, suggestion.ErrGenerationFailed)
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, suggestion.ErrInvalidFormat)
}

func TestSuggestionRequester_InvalidFormat(t *testing.T) {
	r := llm.NewSuggestionRequester(&fakeGenerator{response: `{"dishes":[]}`}, llm.RequesterConfig{}, quietLogger())

	_, err := r.Suggest(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, suggestion.ErrInvalidFormat)
	assert.NotErrorIs(t, err, suggestion.ErrGenerationFailed)
}

func TestSuggestionRequester_Timeout(t *testing.T) {
	r := llm.NewSuggestionRequester(&fakeGenerator{block: true}, llm.RequesterConfig{Timeout: 20 * time.Millisecond}, quietLogger())

	_, err := r.Suggest(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, suggestion.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSuggestionRequester_ThroughHTTPClient(t *testing.T) {
	r := llm.NewSuggestionRequester(llm.NewAnthropicClient("", "", "m", time.Second), llm.RequesterConfig{}, quietLogger())

	_, err := r.Suggest(context.Background(), testRequest())
	assert.ErrorIs(t, err, suggestion.ErrGenerationFailed)
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

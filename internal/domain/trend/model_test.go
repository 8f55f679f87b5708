package trend_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtrend/internal/domain/trend"
)

func TestNewVocabulary_NormalizesAndKeepsOrder(t *testing.T) {
	v, err := trend.NewVocabulary([]string{"  Birria ", "SMASH Burger", "ramen"})
	require.NoError(t, err)

	assert.Equal(t, []string{"birria", "smash burger", "ramen"}, v.Terms())
	assert.Equal(t, 3, v.Len())
}

func TestNewVocabulary_RejectsInvalidTerms(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  error
	}{
		{name: "empty term", terms: []string{"birria", "  "}, want: trend.ErrEmptyTerm},
		{name: "exact duplicate", terms: []string{"tacos", "ramen", "tacos"}, want: trend.ErrDuplicateTerm},
		{name: "duplicate after normalization", terms: []string{"Miso", "miso "}, want: trend.ErrDuplicateTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := trend.NewVocabulary(tt.terms)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVocabulary_TermsReturnsCopy(t *testing.T) {
	v := trend.DefaultVocabulary()
	terms := v.Terms()
	terms[0] = "mutated"

	assert.Equal(t, "birria", v.Terms()[0])
	assert.Equal(t, len(trend.DefaultTerms), v.Len())
}

func TestScores_MarshalJSONKeepsRankOrder(t *testing.T) {
	scores := trend.Scores{
		{Term: "tacos", Score: 300},
		{Term: "birria", Score: 150},
		{Term: "ramen", Score: 50},
	}

	data, err := json.Marshal(scores)
	require.NoError(t, err)
	assert.Equal(t, `{"tacos":300,"birria":150,"ramen":50}`, string(data))

	var decoded trend.Scores
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, scores, decoded)
}

func TestScores_MarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(trend.Scores{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestScores_UnmarshalJSONRejectsNonObject(t *testing.T) {
	var s trend.Scores
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"tacos":"many"}`), &s))
}

func TestScores_TopAndGet(t *testing.T) {
	scores := trend.Scores{
		{Term: "a", Score: 5},
		{Term: "b", Score: 4},
		{Term: "c", Score: 3},
	}

	assert.Equal(t, []string{"a", "b"}, scores.Top(2).Terms())
	assert.Len(t, scores.Top(10), 3)
	assert.Empty(t, scores.Top(-1))

	score, ok := scores.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 4, score)

	_, ok = scores.Get("z")
	assert.False(t, ok)
}

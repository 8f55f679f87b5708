package llm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtrend/internal/adapter/llm"
	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/domain/trend"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := llm.BuildPrompt(suggestion.Request{
		TopTerms: []string{"birria", "tacos"},
		Scores: trend.Scores{
			{Term: "birria", Score: 150},
			{Term: "tacos", Score: 100},
		},
		WeekendDate:    "October 17",
		RestaurantType: "food truck",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Top trending items: birria, tacos\n")
	assert.Contains(t, prompt, "\"birria\": 150,\n  \"tacos\": 100\n}")
	assert.Contains(t, prompt, "- Weekend target: October 17\n")
	assert.Contains(t, prompt, "- Restaurant type: food truck\n")
	assert.Contains(t, prompt, "Generate 4 creative weekend special dish suggestions")
	assert.Contains(t, prompt, `"trending_element": "which trend it capitalizes on"`)
	assert.Contains(t, prompt, "Return ONLY valid JSON in this exact format:")

	// scores appear in rank order
	assert.Less(t, strings.Index(prompt, `"birria": 150`), strings.Index(prompt, `"tacos": 100`))
}

package llm_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtrend/internal/adapter/llm"
	"foodtrend/internal/domain/suggestion"
)

func validPayload(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(suggestion.DemoResult())
	require.NoError(t, err)
	return string(data)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `  {"a":1}  `, want: `{"a":1}`},
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "unterminated fence", raw: "```json\n{\"a\":1}", want: `{"a":1}`},
		{name: "text after fence is dropped", raw: "```json\n{\"a\":1}\n```\nEnjoy!", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, llm.StripCodeFence(tt.raw))
		})
	}
}

func TestParseResult_Valid(t *testing.T) {
	payload := validPayload(t)

	for name, raw := range map[string]string{
		"bare":   payload,
		"fenced": "```json\n" + payload + "\n```",
	} {
		t.Run(name, func(t *testing.T) {
			result, err := llm.ParseResult(raw)
			require.NoError(t, err)
			assert.Equal(t, suggestion.DemoResult(), result)
		})
	}
}

func TestParseResult_RejectsMalformedOutput(t *testing.T) {
	payload := validPayload(t)

	var threeDishes map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &threeDishes))
	threeDishes["dishes"] = threeDishes["dishes"].([]any)[:3]
	three, err := json.Marshal(threeDishes)
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "   "},
		{name: "not json", raw: "Here are some ideas: birria everything!"},
		{name: "missing dishes", raw: `{"marketing_headline":"h","key_insight":"k"}`},
		{name: "wrong dish count", raw: string(three)},
		{name: "missing headline", raw: strings.Replace(payload, `"marketing_headline":`, `"marketing_headline_x":`, 1)},
		{name: "unknown field", raw: strings.Replace(payload, `{"dishes"`, `{"extra":true,"dishes"`, 1)},
		{name: "trailing data", raw: payload + ` {"more":1}`},
		{name: "empty dish field", raw: strings.Replace(payload, `"price_range":"$18-$22"`, `"price_range":""`, 1)},
		{name: "wrong type", raw: strings.Replace(payload, `"key_insight":`, `"key_insight":42,"ignored":`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llm.ParseResult(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, suggestion.ErrInvalidFormat)
			assert.NotErrorIs(t, err, suggestion.ErrGenerationFailed)
		})
	}
}

func TestParseResult_ValidationMessageNamesField(t *testing.T) {
	payload := strings.Replace(validPayload(t), `"price_range":"$18-$22"`, `"price_range":""`, 1)

	_, err := llm.ParseResult(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PriceRange")
}

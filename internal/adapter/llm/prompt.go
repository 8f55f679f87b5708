package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"foodtrend/internal/domain/suggestion"
)

const responseShape = `{
  "dishes": [
    {
      "name": "Dish Name",
      "description": "Brief appetizing description",
      "trending_element": "which trend it capitalizes on",
      "price_range": "$XX-$XX",
      "social_hook": "Instagram caption idea"
    }
  ],
  "marketing_headline": "Weekend specials headline",
  "key_insight": "One sentence on why these trends are hot right now"
}`

// BuildPrompt renders the consultant prompt for req
func BuildPrompt(req suggestion.Request) (string, error) {
	scores, err := json.MarshalIndent(req.Scores, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode trend scores: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a creative restaurant consultant helping design weekend specials.\n\n")
	b.WriteString("Based on these local social media food trends:\n")
	fmt.Fprintf(&b, "- Top trending items: %s\n", strings.Join(req.TopTerms, ", "))
	fmt.Fprintf(&b, "- Trend scores: %s\n", scores)
	fmt.Fprintf(&b, "- Weekend target: %s\n", req.WeekendDate)
	fmt.Fprintf(&b, "- Restaurant type: %s\n\n", req.RestaurantType)
	fmt.Fprintf(&b, "Generate %d creative weekend special dish suggestions that:\n", suggestion.DishCount)
	b.WriteString("1. Incorporate the top trending ingredients/themes\n")
	b.WriteString("2. Feel fresh and exciting but achievable\n")
	b.WriteString("3. Have catchy names that will resonate on social media\n")
	b.WriteString("4. Include a brief description and suggested price range\n\n")
	b.WriteString("Return ONLY valid JSON in this exact format:\n")
	b.WriteString(responseShape)

	return b.String(), nil
}

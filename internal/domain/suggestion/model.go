package suggestion

import (
	"context"
	"errors"

	"foodtrend/internal/domain/trend"
)

// DishCount is the number of dishes a suggestion result must carry
const DishCount = 4

// DefaultRestaurantType is used when the caller leaves the label empty
const DefaultRestaurantType = "casual dining"

var (
	// ErrGenerationFailed marks transport, auth, rate-limit, or upstream failures
	ErrGenerationFailed = errors.New("suggestion generation failed")

	// ErrInvalidFormat marks a response that does not match the required shape
	ErrInvalidFormat = errors.New("invalid suggestion format")
)

// Dish is one weekend special proposal
type Dish struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	TrendingElement string `json:"trending_element" validate:"required"`
	PriceRange      string `json:"price_range" validate:"required"`
	SocialHook      string `json:"social_hook" validate:"required"`
}

// Result is the structured output of the suggestion service
type Result struct {
	Dishes            []Dish `json:"dishes" validate:"required,len=4,dive"`
	MarketingHeadline string `json:"marketing_headline" validate:"required"`
	KeyInsight        string `json:"key_insight" validate:"required"`
}

// Request carries the trend fields the suggestion service needs
type Request struct {
	TopTerms       []string
	Scores         trend.Scores
	WeekendDate    string
	RestaurantType string
}

// NewRequest builds a request from a trend report. An empty restaurant type
// falls back to DefaultRestaurantType.
func NewRequest(r trend.Report, restaurantType string) Request {
	if restaurantType == "" {
		restaurantType = DefaultRestaurantType
	}
	return Request{
		TopTerms:       r.TopTerms,
		Scores:         r.Scores,
		WeekendDate:    r.WeekendDate,
		RestaurantType: restaurantType,
	}
}

// Requester asks an external text-generation service for dish suggestions
type Requester interface {
	Suggest(ctx context.Context, req Request) (Result, error)
}

// RestaurantTypes are the labels offered to callers. Free-text labels are also accepted.
var RestaurantTypes = []string{
	"casual dining",
	"bistro",
	"fine dining",
	"fast casual",
	"cafe",
	"food truck",
	"bakery",
}

// internal/domain/post/model.go

package post

import (
	"context"
	"strings"
	"time"
)

// Platform identifies the social channel a post was observed on
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformYelp      Platform = "yelp"
)

// Post is one observed social-media mention
type Post struct {
	Platform  Platform  `json:"platform"`
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
	Location  string    `json:"location"`
	ScrapedAt time.Time `json:"scraped_at"`
}

// AllLocations is the location choice that disables filtering
const AllLocations = "all"

// Source supplies a snapshot of posts, optionally narrowed to a location
type Source interface {
	// Posts returns the posts whose location contains the filter, or every post
	// when the filter is empty, "all", or matches nothing.
	Posts(ctx context.Context, location string) ([]Post, error)

	// Locations returns the distinct locations the source knows about
	Locations() []string
}

// TotalLikes sums the like counts of posts
func TotalLikes(posts []Post) int {
	total := 0
	for _, p := range posts {
		total += p.Likes
	}
	return total
}

// FilterByLocation returns the posts whose location contains location,
// ignoring case. An empty or "all" location, or a location that matches
// nothing, returns posts unchanged.
func FilterByLocation(posts []Post, location string) []Post {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" || needle == AllLocations {
		return posts
	}

	var filtered []Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Location), needle) {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return posts
	}
	return filtered
}

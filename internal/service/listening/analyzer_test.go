package listening_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtrend/internal/domain/post"
	"foodtrend/internal/domain/trend"
	"foodtrend/internal/service/listening"
)

// Wednesday
var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newAnalyzer(t *testing.T, terms []string, floor bool) *listening.Analyzer {
	t.Helper()
	v, err := trend.NewVocabulary(terms)
	require.NoError(t, err)
	return listening.NewAnalyzer(v, listening.AnalyzerConfig{FloorNegativeLikes: floor, Now: fixedClock})
}

func TestAnalyze_BirriaScenario(t *testing.T) {
	a := newAnalyzer(t, []string{"birria", "tacos", "ramen", "fusion"}, false)
	posts := []post.Post{
		{Text: "birria tacos are great", Likes: 100},
		{Text: "birria ramen fusion", Likes: 50},
	}

	report := a.Analyze(posts)

	assert.Equal(t, trend.Scores{
		{Term: "birria", Score: 150},
		{Term: "tacos", Score: 100},
		{Term: "ramen", Score: 50},
		{Term: "fusion", Score: 50},
	}, report.Scores)
	assert.Equal(t, []string{"birria", "tacos", "ramen", "fusion"}, report.TopTerms)
	assert.Equal(t, 2, report.PostCount)
}

func TestAnalyze_TieBreakFollowsVocabularyOrder(t *testing.T) {
	posts := []post.Post{
		{Text: "birria ramen fusion", Likes: 50},
	}

	fusionFirst := newAnalyzer(t, []string{"fusion", "birria", "ramen"}, false).Analyze(posts)
	assert.Equal(t, []string{"fusion", "birria", "ramen"}, fusionFirst.Scores.Terms())

	ramenFirst := newAnalyzer(t, []string{"ramen", "fusion", "birria"}, false).Analyze(posts)
	assert.Equal(t, []string{"ramen", "fusion", "birria"}, ramenFirst.Scores.Terms())
}

func TestAnalyze_EmptyPosts(t *testing.T) {
	a := listening.NewAnalyzer(trend.DefaultVocabulary(), listening.AnalyzerConfig{Now: fixedClock})

	report := a.Analyze(nil)

	assert.Empty(t, report.Scores)
	assert.NotNil(t, report.TopTerms)
	assert.Empty(t, report.TopTerms)
	assert.Equal(t, 0, report.PostCount)
	assert.Equal(t, "2026-10-14", report.AnalysisDate)
	assert.Equal(t, "October 17", report.WeekendDate)
}

func TestAnalyze_MatchingIsCaseInsensitiveSubstring(t *testing.T) {
	a := newAnalyzer(t, []string{"smash burger", "burger", "korean corn dog"}, false)
	posts := []post.Post{
		{Text: "SMASH BURGERS all day", Likes: 10},
		{Text: "#smashburger tutorial", Likes: 7},
		{Text: "Korean corn dogs > everything", Likes: 3},
	}

	report := a.Analyze(posts)

	smash, ok := report.Scores.Get("smash burger")
	require.True(t, ok)
	assert.Equal(t, 10, smash)

	burger, ok := report.Scores.Get("burger")
	require.True(t, ok)
	assert.Equal(t, 17, burger)

	corndog, ok := report.Scores.Get("korean corn dog")
	require.True(t, ok)
	assert.Equal(t, 3, corndog)
}

func TestAnalyze_DefaultVocabularyOverMockTable(t *testing.T) {
	a := listening.NewAnalyzer(trend.DefaultVocabulary(), listening.AnalyzerConfig{Now: fixedClock})
	posts := []post.Post{
		{Text: "Making viral Dubai chocolate at home #dubai #chocolate", Likes: 45000},
		{Text: "Dubai chocolate dessert — unique and absolutely delicious.", Likes: 89},
		{Text: "smash burger tutorial blew up 🍔 #smashburger #burger", Likes: 31000},
		{Text: "The wagyu smash burger was incredible.", Likes: 45},
	}

	report := a.Analyze(posts)

	assert.Equal(t, trend.Scores{
		{Term: "dubai chocolate", Score: 45089},
		{Term: "chocolate", Score: 45089},
		{Term: "smash burger", Score: 31045},
		{Term: "burger", Score: 31045},
		{Term: "wagyu", Score: 45},
	}, report.Scores)
}

func TestAnalyze_TopTermsIsPrefixOfAtMostFive(t *testing.T) {
	terms := []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}
	a := newAnalyzer(t, terms, false)

	var posts []post.Post
	for i, term := range terms {
		posts = append(posts, post.Post{Text: term, Likes: (i + 1) * 10})
	}

	report := a.Analyze(posts)

	require.Len(t, report.Scores, 7)
	assert.Len(t, report.TopTerms, trend.TopTermsLimit)
	assert.Equal(t, report.Scores.Terms()[:trend.TopTermsLimit], report.TopTerms)
	assert.Equal(t, "g7", report.TopTerms[0])
}

func TestAnalyze_DoesNotMutatePosts(t *testing.T) {
	a := listening.NewAnalyzer(trend.DefaultVocabulary(), listening.AnalyzerConfig{FloorNegativeLikes: true, Now: fixedClock})
	posts := []post.Post{
		{Platform: post.PlatformTikTok, Text: "Birria TACOS", Likes: -20, Location: "Eastside"},
		{Platform: post.PlatformYelp, Text: "truffle pasta", Likes: 40, Location: "Downtown"},
	}
	before := make([]post.Post, len(posts))
	copy(before, posts)

	a.Analyze(posts)

	assert.Equal(t, before, posts)
}

func TestAnalyze_IdempotentOnSameInput(t *testing.T) {
	a := listening.NewAnalyzer(trend.DefaultVocabulary(), listening.AnalyzerConfig{})
	posts := randomPosts(rand.New(rand.NewSource(7)), 40)

	first := a.Analyze(posts)
	second := a.Analyze(posts)

	assert.Equal(t, first.Scores, second.Scores)
	assert.Equal(t, first.TopTerms, second.TopTerms)
}

func TestAnalyze_ScoresAreExactSumsOverMatchingPosts(t *testing.T) {
	vocab := trend.DefaultVocabulary()
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 25; round++ {
		posts := randomPosts(r, r.Intn(30))
		report := listening.NewAnalyzer(vocab, listening.AnalyzerConfig{Now: fixedClock}).Analyze(posts)

		for _, term := range vocab.Terms() {
			want := 0
			for _, p := range posts {
				if strings.Contains(strings.ToLower(p.Text), term) {
					want += p.Likes
				}
			}

			got, present := report.Scores.Get(term)
			if want == 0 {
				assert.False(t, present, "round %d: term %q should be absent", round, term)
				continue
			}
			assert.True(t, present, "round %d: term %q should be present", round, term)
			assert.Equal(t, want, got, "round %d: term %q", round, term)
		}

		for i := 1; i < len(report.Scores); i++ {
			assert.GreaterOrEqual(t, report.Scores[i-1].Score, report.Scores[i].Score)
		}
		for _, ts := range report.Scores {
			assert.NotZero(t, ts.Score)
		}
	}
}

func TestAnalyze_NegativeLikesPolicies(t *testing.T) {
	posts := []post.Post{
		{Text: "birria tacos", Likes: -80},
		{Text: "birria ramen", Likes: 50},
		{Text: "miso soup", Likes: -30},
	}
	terms := []string{"birria", "tacos", "ramen", "miso"}

	t.Run("raw sums keep negative contributions", func(t *testing.T) {
		report := newAnalyzer(t, terms, false).Analyze(posts)

		assert.Equal(t, trend.Scores{
			{Term: "ramen", Score: 50},
			{Term: "birria", Score: -30},
			{Term: "miso", Score: -30},
			{Term: "tacos", Score: -80},
		}, report.Scores)
	})

	t.Run("floored likes drop terms that only saw negative posts", func(t *testing.T) {
		report := newAnalyzer(t, terms, true).Analyze(posts)

		assert.Equal(t, trend.Scores{
			{Term: "birria", Score: 50},
			{Term: "ramen", Score: 50},
		}, report.Scores)
	})
}

func TestAnalyze_ZeroSumTermIsOmitted(t *testing.T) {
	report := newAnalyzer(t, []string{"tacos", "ramen"}, false).Analyze([]post.Post{
		{Text: "tacos", Likes: 100},
		{Text: "tacos again", Likes: -100},
		{Text: "ramen", Likes: 1},
	})

	assert.Equal(t, trend.Scores{{Term: "ramen", Score: 1}}, report.Scores)
}

func TestAnalyze_DateFieldsFollowClock(t *testing.T) {
	saturday := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	a := listening.NewAnalyzer(trend.DefaultVocabulary(), listening.AnalyzerConfig{
		Now: func() time.Time { return saturday },
	})

	report := a.Analyze(nil)

	assert.Equal(t, "2026-10-17", report.AnalysisDate)
	assert.Equal(t, "October 17", report.WeekendDate)
	assert.Equal(t, saturday, report.AnalyzedAt)
}

var fragments = []string{
	"birria", "Truffle", "WAGYU", "smash burger", "miso", "caramel", "croissant",
	"tacos", "ramen", "korean corn dog", "Dubai Chocolate", "pasta", "burger",
	"chocolate", "fusion", "salad", "pho", "#foodtok", "🔥",
}

func randomPosts(r *rand.Rand, n int) []post.Post {
	posts := make([]post.Post, n)
	for i := range posts {
		words := make([]string, 1+r.Intn(5))
		for j := range words {
			words[j] = fragments[r.Intn(len(fragments))]
		}
		posts[i] = post.Post{
			Platform: post.PlatformInstagram,
			Text:     strings.Join(words, " "),
			Likes:    r.Intn(2000) - 200,
			Location: "Downtown",
		}
	}
	return posts
}

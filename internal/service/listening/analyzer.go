package listening

import (
	"sort"
	"strings"
	"time"

	"foodtrend/internal/domain/post"
	"foodtrend/internal/domain/trend"
)

// AnalyzerConfig contains configuration for the trend analyzer
type AnalyzerConfig struct {
	// FloorNegativeLikes counts a post with negative likes as zero engagement
	// instead of subtracting from every term it matches.
	FloorNegativeLikes bool

	// Now supplies the analysis time. Defaults to time.Now.
	Now func() time.Time
}

// Analyzer implements keyword-frequency trend scoring
type Analyzer struct {
	vocabulary trend.Vocabulary
	config     AnalyzerConfig
}

// NewAnalyzer creates a new analyzer over vocabulary
func NewAnalyzer(vocabulary trend.Vocabulary, config AnalyzerConfig) *Analyzer {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Analyzer{
		vocabulary: vocabulary,
		config:     config,
	}
}

// Analyze sums likes per vocabulary term over posts whose lowercased text
// contains the term, and ranks the result.
func (a *Analyzer) Analyze(posts []post.Post) trend.Report {
	terms := a.vocabulary.Terms()
	totals := make([]int, len(terms))
	matched := make([]bool, len(terms))

	for _, p := range posts {
		text := strings.ToLower(p.Text)
		weight := p.Likes
		if a.config.FloorNegativeLikes && weight < 0 {
			weight = 0
		}
		for i, term := range terms {
			if strings.Contains(text, term) {
				totals[i] += weight
				matched[i] = true
			}
		}
	}

	now := a.config.Now()
	scores := rankScores(terms, totals, matched)

	return trend.Report{
		Scores:       scores,
		TopTerms:     scores.Top(trend.TopTermsLimit).Terms(),
		PostCount:    len(posts),
		AnalysisDate: now.Format(trend.AnalysisDateLayout),
		WeekendDate:  NextSaturday(now).Format(trend.WeekendDateLayout),
		AnalyzedAt:   now,
	}
}

type rankedTerm struct {
	index int
	trend.TermScore
}

// rankScores orders matched terms by score descending. Equal scores keep
// vocabulary order. Unmatched and zero-sum terms are omitted.
func rankScores(terms []string, totals []int, matched []bool) trend.Scores {
	ranked := make([]rankedTerm, 0, len(terms))
	for i, term := range terms {
		if !matched[i] || totals[i] == 0 {
			continue
		}
		ranked = append(ranked, rankedTerm{index: i, TermScore: trend.TermScore{Term: term, Score: totals[i]}})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].index < ranked[j].index
	})

	scores := make(trend.Scores, len(ranked))
	for i, r := range ranked {
		scores[i] = r.TermScore
	}
	return scores
}

var _ trend.Analyzer = (*Analyzer)(nil)

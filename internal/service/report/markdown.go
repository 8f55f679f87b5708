package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/domain/trend"
)

// FilenamePrefix is the stem of downloadable report filenames
const FilenamePrefix = "food_trend_report"

// Render formats the weekly markdown report. It is deterministic in its inputs.
func Render(trends trend.Report, s suggestion.Result) string {
	// Printers and casers hold state and are built per call.
	printer := message.NewPrinter(language.English)
	titler := cases.Title(language.English)

	lines := []string{
		fmt.Sprintf("# 🍽️ Weekly Food Trend Report — %s", trends.AnalysisDate),
		fmt.Sprintf("\n## Weekend Special Focus: %s", trends.WeekendDate),
		fmt.Sprintf("\n**Posts Analyzed:** %d", trends.PostCount),
		"\n---\n",
		"## 📈 Top Trending Ingredients & Dishes",
	}

	for _, ts := range trends.Scores.Top(trend.TopTermsLimit) {
		lines = append(lines, fmt.Sprintf("- **%s** — Engagement Score: %s", titler.String(ts.Term), printer.Sprintf("%d", ts.Score)))
	}

	lines = append(lines,
		"\n---\n",
		"## 🍴 Weekend Special Recommendations",
		fmt.Sprintf("\n> %s\n", s.MarketingHeadline),
	)

	for i, dish := range s.Dishes {
		lines = append(lines,
			fmt.Sprintf("### %d. %s (%s)", i+1, dish.Name, dish.PriceRange),
			dish.Description,
			fmt.Sprintf("- 🔥 Trend: *%s*", dish.TrendingElement),
			fmt.Sprintf("- 📸 Social Hook: *\"%s\"*\n", dish.SocialHook),
		)
	}

	lines = append(lines,
		"---",
		"## 💡 Key Insight",
		fmt.Sprintf("\n%s", s.KeyInsight),
		"\n\n*Report generated by Hyper-Local Food Trend Agent*",
	)

	return strings.Join(lines, "\n")
}

// Filename returns the download filename for a report produced on analysisDate
func Filename(analysisDate string) string {
	return fmt.Sprintf("%s_%s.md", FilenamePrefix, analysisDate)
}

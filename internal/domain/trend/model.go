package trend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date layouts used for the report date fields
const (
	AnalysisDateLayout = "2006-01-02"
	WeekendDateLayout  = "January 02"
)

// TopTermsLimit is the number of leading scores exposed as top terms
const TopTermsLimit = 5

var (
	ErrEmptyTerm     = errors.New("vocabulary term is empty")
	ErrDuplicateTerm = errors.New("vocabulary term is duplicated")
)

// DefaultTerms is the food vocabulary tracked by the scorer, in tie-break order
var DefaultTerms = []string{
	"birria", "truffle", "wagyu", "smash burger", "miso", "caramel",
	"croissant", "tacos", "ramen", "korean corn dog", "dubai chocolate",
	"pasta", "burger", "chocolate", "fusion",
}

// Vocabulary is an ordered set of lowercase food terms
type Vocabulary struct {
	terms []string
}

// NewVocabulary normalizes terms to trimmed lowercase and rejects empty or
// duplicate entries. Declaration order is preserved.
func NewVocabulary(terms []string) (Vocabulary, error) {
	seen := make(map[string]struct{}, len(terms))
	normalized := make([]string, 0, len(terms))

	for i, raw := range terms {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term == "" {
			return Vocabulary{}, fmt.Errorf("term %d: %w", i, ErrEmptyTerm)
		}
		if _, dup := seen[term]; dup {
			return Vocabulary{}, fmt.Errorf("term %q: %w", term, ErrDuplicateTerm)
		}
		seen[term] = struct{}{}
		normalized = append(normalized, term)
	}

	return Vocabulary{terms: normalized}, nil
}

// DefaultVocabulary returns the vocabulary built from DefaultTerms
func DefaultVocabulary() Vocabulary {
	v, err := NewVocabulary(DefaultTerms)
	if err != nil {
		panic(err)
	}
	return v
}

// Terms returns a copy of the terms in declaration order
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the number of terms
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// TermScore is the accumulated engagement of one term
type TermScore struct {
	Term  string `json:"term"`
	Score int    `json:"score"`
}

// Scores is a ranked list of term scores, highest first
type Scores []TermScore

// Terms returns the terms in rank order
func (s Scores) Terms() []string {
	out := make([]string, len(s))
	for i, ts := range s {
		out[i] = ts.Term
	}
	return out
}

// Get returns the score for term and whether it is present
func (s Scores) Get(term string) (int, bool) {
	for _, ts := range s {
		if ts.Term == term {
			return ts.Score, true
		}
	}
	return 0, false
}

// Top returns at most n leading entries
func (s Scores) Top(n int) Scores {
	if n > len(s) {
		n = len(s)
	}
	if n < 0 {
		n = 0
	}
	out := make(Scores, n)
	copy(out, s[:n])
	return out
}

// MarshalJSON encodes the scores as a JSON object whose key order follows the ranking
func (s Scores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ts := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ts.Term)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", ts.Score)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an ordered JSON object back into ranked scores
func (s *Scores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("scores: expected object, got %v", tok)
	}

	out := Scores{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("scores: expected string key, got %v", keyTok)
		}
		var score int
		if err := dec.Decode(&score); err != nil {
			return fmt.Errorf("scores: value for %q: %w", key, err)
		}
		out = append(out, TermScore{Term: key, Score: score})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// Report is the output of one scoring run
type Report struct {
	Scores       Scores    `json:"all_scores"`
	TopTerms     []string  `json:"top_ingredients"`
	PostCount    int       `json:"total_posts_analyzed"`
	AnalysisDate string    `json:"analysis_date"`
	WeekendDate  string    `json:"weekend"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

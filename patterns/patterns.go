// Package patterns is a static library of domain-term matchers for legal text.
// Capture-style rules (case, statute, court, date references) are regular
// expressions; the fixed legal vocabulary is matched with Aho-Corasick, which
// stays linear no matter how large the term list grows.
package patterns

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

const (
	CategoryCaseReference    = "case_reference"
	CategoryStatuteReference = "statute_reference"
	CategoryCourtReference   = "court_reference"
	CategoryDate             = "date"
	CategoryLegalTerm        = "legal_term"
)

// Match is a typed span produced by the library.
type Match struct {
	Category string `json:"category"`
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

type captureRule struct {
	category string
	re       *regexp.Regexp
	// group selects the submatch reported as Match.Text; 0 reports the whole match.
	group int
}

// Library holds compiled matchers. Construct once per process and share; all
// methods are safe for concurrent use.
type Library struct {
	rules   []captureRule
	vocab   []string
	matcher *ahocorasick.Matcher
}

// NewLegalLibrary builds the default library for regulatory and procedural
// documents.
func NewLegalLibrary() *Library {
	return NewLibrary(defaultLegalTerms)
}

// NewLibrary builds a library with a caller-supplied vocabulary for the
// legal_term category. Terms are matched case-insensitively on word boundaries.
func NewLibrary(vocabulary []string) *Library {
	vocab := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			vocab = append(vocab, term)
		}
	}

	return &Library{
		rules: []captureRule{
			{
				category: CategoryCaseReference,
				re:       regexp.MustCompile(`(?i)(?:Case No\.|Case Number|Docket No\.|Docket Number)\s*:?\s*([A-Z0-9][A-Z0-9\-/]*)`),
				group:    1,
			},
			{
				category: CategoryStatuteReference,
				re:       regexp.MustCompile(`(?i)(?:Section|§|Art\.|Article)\s+(\d+(?:\.\d+)*)`),
				group:    1,
			},
			{
				category: CategoryCourtReference,
				re:       regexp.MustCompile(`(?:Court|Judge|Justice)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
				group:    1,
			},
			{
				category: CategoryDate,
				re:       regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`),
				group:    0,
			},
		},
		vocab:   vocab,
		matcher: ahocorasick.NewStringMatcher(vocab),
	}
}

// FindAll returns every typed span in the text, deduplicated per category by
// lower-cased match text, ordered by category then first occurrence.
func (l *Library) FindAll(text string) []Match {
	var matches []Match

	for _, rule := range l.rules {
		seen := make(map[string]struct{})
		for _, loc := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[2*rule.group], loc[2*rule.group+1]
			if start < 0 {
				continue
			}
			matched := text[start:end]
			key := strings.ToLower(matched)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			matches = append(matches, Match{
				Category: rule.category,
				Text:     matched,
				Start:    start,
				End:      end,
			})
		}
	}

	matches = append(matches, l.findTerms(text)...)
	return matches
}

// FindCategory returns the deduplicated match texts for one category, in first
// occurrence order.
func (l *Library) FindCategory(text, category string) []string {
	var out []string
	for _, m := range l.FindAll(text) {
		if m.Category == category {
			out = append(out, m.Text)
		}
	}
	return out
}

func (l *Library) findTerms(text string) []Match {
	lower := strings.ToLower(text)
	hits := l.matcher.MatchThreadSafe([]byte(lower))
	if len(hits) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(hits))
	var matches []Match
	for _, idx := range hits {
		term := l.vocab[idx]
		if _, ok := seen[term]; ok {
			continue
		}
		pos := wordBoundaryIndex(lower, term)
		if pos < 0 {
			continue
		}
		seen[term] = struct{}{}
		matches = append(matches, Match{
			Category: CategoryLegalTerm,
			Text:     term,
			Start:    pos,
			End:      pos + len(term),
		})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
	return matches
}

// wordBoundaryIndex finds the first occurrence of term that is not embedded in
// a larger word. Aho-Corasick reports substring hits, so "court" inside
// "courtship" must be rejected here.
func wordBoundaryIndex(lower, term string) int {
	from := 0
	for {
		idx := strings.Index(lower[from:], term)
		if idx < 0 {
			return -1
		}
		start := from + idx
		end := start + len(term)
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			return start
		}
		from = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Package keywords extracts a size-capped set of normalized content terms from
// a text span. The primary path tokenizes with prose and keeps content-bearing
// parts of speech; when tagging fails, a corpus-free RAKE pass over the same
// text is the degraded mode.
package keywords

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball"
)

// DefaultLimit caps the keyword set per chunk.
const DefaultLimit = 10

// contentTags are the Penn Treebank tags kept as keyword candidates: nouns and
// proper nouns.
var contentTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

type Extractor struct {
	limit int
	rake  *RAKE
}

func NewExtractor(limit int) *Extractor {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Extractor{limit: limit, rake: NewRAKE()}
}

// Extract returns up to limit stemmed keywords ranked by term frequency, ties
// broken by first occurrence. Falls back to RAKE when POS tagging fails.
func (e *Extractor) Extract(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return e.rake.Extract(text, e.limit), nil
	}

	type candidate struct {
		term  string
		count int
		first int
	}

	byTerm := make(map[string]*candidate)
	order := 0
	for _, tok := range doc.Tokens() {
		if !contentTags[tok.Tag] {
			continue
		}
		word := strings.ToLower(tok.Text)
		if len(word) < 3 || stopWords[word] || !isAlphanumeric(word) {
			continue
		}
		term := Normalize(word)
		if c, ok := byTerm[term]; ok {
			c.count++
		} else {
			byTerm[term] = &candidate{term: term, count: 1, first: order}
		}
		order++
	}

	candidates := make([]*candidate, 0, len(byTerm))
	for _, c := range byTerm {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].first < candidates[j].first
	})

	limit := e.limit
	if len(candidates) < limit {
		limit = len(candidates)
	}
	out := make([]string, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, c.term)
	}
	return out, nil
}

// Normalize lower-cases and stems a term. Words the stemmer rejects pass
// through lower-cased.
func Normalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	stemmed, err := snowball.Stem(word, "english", false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

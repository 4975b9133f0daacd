package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// RAKE is a corpus-free keyword extractor: candidate phrases are maximal runs
// of non-stop words, scored by degree/frequency of their member words.
type RAKE struct {
	punctuation   *regexp.Regexp
	wordSeparator *regexp.Regexp
}

func NewRAKE() *RAKE {
	return &RAKE{
		punctuation:   regexp.MustCompile(`[^\w\s]`),
		wordSeparator: regexp.MustCompile(`\s+`),
	}
}

// Extract returns up to topK phrases, highest score first.
func (r *RAKE) Extract(text string, topK int) []string {
	phrases := r.candidatePhrases(text)
	if len(phrases) == 0 {
		return nil
	}

	wordScores := r.wordScores(phrases)

	type scored struct {
		phrase string
		score  float64
		first  int
	}
	var ranked []scored
	for i, phrase := range phrases {
		var score float64
		for _, word := range strings.Fields(phrase) {
			score += wordScores[word]
		}
		if score > 0 {
			ranked = append(ranked, scored{phrase: phrase, score: score, first: i})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].first < ranked[j].first
	})

	seen := make(map[string]struct{})
	var out []string
	for _, s := range ranked {
		if len(out) >= topK {
			break
		}
		if _, ok := seen[s.phrase]; ok {
			continue
		}
		seen[s.phrase] = struct{}{}
		out = append(out, s.phrase)
	}
	return out
}

func (r *RAKE) candidatePhrases(text string) []string {
	text = strings.ToLower(text)
	text = r.punctuation.ReplaceAllString(text, " ")
	text = r.wordSeparator.ReplaceAllString(text, " ")

	var phrases []string
	var current []string
	for _, word := range strings.Fields(text) {
		if stopWords[word] {
			if len(current) > 0 {
				phrases = append(phrases, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		if len(word) >= 2 {
			current = append(current, word)
		}
	}
	if len(current) > 0 {
		phrases = append(phrases, strings.Join(current, " "))
	}
	return phrases
}

func (r *RAKE) wordScores(phrases []string) map[string]float64 {
	freq := make(map[string]int)
	degree := make(map[string]int)

	for _, phrase := range phrases {
		words := strings.Fields(phrase)
		for _, word := range words {
			freq[word]++
			degree[word] += len(words) - 1
		}
	}

	scores := make(map[string]float64, len(freq))
	for word, f := range freq {
		scores[word] = float64(degree[word]+f) / float64(f)
	}
	return scores
}

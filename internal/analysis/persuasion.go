package analysis

import (
	"regexp"
	"strings"

	"github.com/convolens/convolens/internal/lexicon"
)

const persuasionEngine = "heuristic_lexicon_v1"

// PersuasionScore is the per-utterance ethos/pathos/logos record. Scores are
// total match counts; the match lists are deduplicated for display.
type PersuasionScore struct {
	Text          string   `json:"text"`
	EthosScore    int      `json:"ethos_score"`
	PathosScore   int      `json:"pathos_score"`
	LogosScore    int      `json:"logos_score"`
	EthosMatches  []string `json:"ethos_matches"`
	PathosMatches []string `json:"pathos_matches"`
	LogosMatches  []string `json:"logos_matches"`
	Error         string   `json:"error,omitempty"`
}

// ScorePersuasion scores each utterance against the three classical appeal
// lexicons. Empty input yields a zero-scored record with an error marker
// instead of running the matcher.
func ScorePersuasion(texts []string) []PersuasionScore {
	results := make([]PersuasionScore, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			results = append(results, PersuasionScore{
				Text:          text,
				EthosMatches:  []string{},
				PathosMatches: []string{},
				LogosMatches:  []string{},
				Error:         errEmptyInput,
			})
			continue
		}

		score := PersuasionScore{Text: text}
		score.EthosScore, score.EthosMatches = countLexicon(text, lexicon.EthosPatterns)
		score.PathosScore, score.PathosMatches = countLexicon(text, lexicon.PathosPatterns)
		score.LogosScore, score.LogosMatches = countLexicon(text, lexicon.LogosPatterns)
		results = append(results, score)
	}
	return results
}

func countLexicon(text string, patterns []*regexp.Regexp) (int, []string) {
	count := 0
	matches := []string{}
	seen := make(map[string]bool)
	for _, pat := range patterns {
		found := pat.FindAllString(text, -1)
		count += len(found)
		for _, m := range found {
			key := strings.ToLower(m)
			if !seen[key] {
				seen[key] = true
				matches = append(matches, m)
			}
		}
	}
	return count, matches
}

package analysis

import (
	"regexp"
	"strings"

	"github.com/convolens/convolens/internal/lexicon"
)

const tacticEngine = "heuristic_lexicon_v1"

// Rule-detector category labels.
const (
	TacticAdHominem      = "Ad Hominem"
	TacticFalseDichotomy = "False Dichotomy"
	TacticGuiltTripping  = "Guilt Tripping"
	TacticGaslighting    = "Gaslighting (potential)"
)

// TacticFinding is one detected category in one utterance.
type TacticFinding struct {
	Type     string   `json:"type"`
	Keywords []string `json:"keywords_matched,omitempty"`
	Phrase   string   `json:"phrase_matched,omitempty"`
}

// TacticResult is the per-utterance rule-detector record.
type TacticResult struct {
	Text          string          `json:"text"`
	Fallacies     []TacticFinding `json:"detected_fallacies"`
	Manipulations []TacticFinding `json:"detected_manipulations"`
	Error         string          `json:"error,omitempty"`
}

// DetectTactics runs the keyword/phrase rule families over each utterance.
// Each category is first-match-wins: the first pattern that fires records the
// category once and ends the scan for that category. Categories are
// independent and may all fire on the same utterance.
func DetectTactics(texts []string) []TacticResult {
	results := make([]TacticResult, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			results = append(results, TacticResult{
				Text:          text,
				Fallacies:     []TacticFinding{},
				Manipulations: []TacticFinding{},
				Error:         errEmptyInput,
			})
			continue
		}

		res := TacticResult{
			Text:          text,
			Fallacies:     []TacticFinding{},
			Manipulations: []TacticFinding{},
		}

		if f, ok := firstKeywordMatch(text, lexicon.AdHominemPatterns, TacticAdHominem); ok {
			res.Fallacies = append(res.Fallacies, f)
		}
		if f, ok := falseDichotomyMatch(text); ok {
			res.Fallacies = append(res.Fallacies, f)
		}
		if f, ok := firstKeywordMatch(text, lexicon.GuiltTrippingPatterns, TacticGuiltTripping); ok {
			res.Manipulations = append(res.Manipulations, f)
		}
		if f, ok := firstKeywordMatch(text, lexicon.GaslightingPatterns, TacticGaslighting); ok {
			res.Manipulations = append(res.Manipulations, f)
		}

		results = append(results, res)
	}
	return results
}

// firstKeywordMatch scans the pattern list in order and stops at the first
// pattern with any match, reporting its distinct matched terms.
func firstKeywordMatch(text string, patterns []*regexp.Regexp, kind string) (TacticFinding, bool) {
	for _, pat := range patterns {
		found := pat.FindAllString(text, -1)
		if len(found) == 0 {
			continue
		}
		seen := make(map[string]bool)
		var distinct []string
		for _, m := range found {
			key := strings.ToLower(m)
			if !seen[key] {
				seen[key] = true
				distinct = append(distinct, m)
			}
		}
		return TacticFinding{Type: kind, Keywords: distinct}, true
	}
	return TacticFinding{}, false
}

// falseDichotomyMatch checks the fixed phrase list by substring containment.
// The bare "either...or" entry additionally requires an "either " token
// followed later by " or "; the literal substring gate still applies first,
// so generic "either X or Y" sentences never fire.
func falseDichotomyMatch(text string) (TacticFinding, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range lexicon.FalseDichotomyPhrases {
		if !lexicon.ContainsPhrase(text, phrase) {
			continue
		}
		if phrase == "either...or" && !eitherFollowedByOr(lower) {
			continue
		}
		return TacticFinding{Type: TacticFalseDichotomy, Phrase: phrase}, true
	}
	return TacticFinding{}, false
}

// eitherFollowedByOr reports whether " or " occurs after the last "either ".
func eitherFollowedByOr(lower string) bool {
	idx := strings.LastIndex(lower, "either ")
	if idx < 0 {
		return false
	}
	return strings.Contains(lower[idx+len("either "):], " or ")
}

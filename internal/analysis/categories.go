package analysis

import (
	"strings"

	"github.com/convolens/convolens/internal/lexicon"
	"github.com/convolens/convolens/internal/transcript"
)

const maxExamples = 3

// DetectFallacies counts regex fallacy-category hits across the transcript,
// keeping up to three example utterances per category. Only categories that
// fired appear in the result.
func DetectFallacies(t transcript.Transcript) map[string]CategoryFinding {
	return countCategories(t, lexicon.Fallacies)
}

// DetectManipulation is DetectFallacies over the manipulation table.
func DetectManipulation(t transcript.Transcript) map[string]CategoryFinding {
	return countCategories(t, lexicon.ManipulationTactics)
}

func countCategories(t transcript.Transcript, table lexicon.Table) map[string]CategoryFinding {
	out := make(map[string]CategoryFinding)
	for _, m := range t {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		lower := strings.ToLower(m.Text)
		for _, cat := range table {
			for _, pat := range cat.Patterns {
				if !pat.MatchString(lower) {
					continue
				}
				f := out[cat.Name]
				f.Count++
				if len(f.Examples) < maxExamples {
					f.Examples = append(f.Examples, m.Text)
				}
				out[cat.Name] = f
			}
		}
	}
	return out
}

// AnalyzePersuasionTactics aggregates indicator-category usage: overall
// frequency per tactic (counting each matching pattern) and the set of
// tactics each speaker used, in first-use order.
func AnalyzePersuasionTactics(t transcript.Transcript) PersuasionTacticsSummary {
	frequency := make(map[string]int)
	speakerTactics := make(map[string][]string)
	used := make(map[string]map[string]bool)

	for _, m := range t {
		if m.Speaker == "" || strings.TrimSpace(m.Text) == "" {
			continue
		}
		lower := strings.ToLower(m.Text)
		for _, cat := range lexicon.PersuasionIndicators {
			for _, pat := range cat.Patterns {
				if !pat.MatchString(lower) {
					continue
				}
				frequency[cat.Name]++
				if used[m.Speaker] == nil {
					used[m.Speaker] = make(map[string]bool)
				}
				if !used[m.Speaker][cat.Name] {
					used[m.Speaker][cat.Name] = true
					speakerTactics[m.Speaker] = append(speakerTactics[m.Speaker], cat.Name)
				}
			}
		}
	}

	return PersuasionTacticsSummary{
		TacticFrequency: frequency,
		SpeakerTactics:  speakerTactics,
	}
}

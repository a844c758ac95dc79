package analysis

import (
	"sort"
	"strings"

	"github.com/convolens/convolens/internal/lexicon"
	"github.com/convolens/convolens/internal/sentiment"
	"github.com/convolens/convolens/internal/transcript"
)

// Raw influence increments per utterance.
const (
	tacticWeight    = 0.1  // per indicator category with at least one match
	lengthWeight    = 0.05 // utterances longer than 20 words
	sentimentWeight = 0.2  // scaled by |polarity|
	questionWeight  = 0.1  // utterances containing "?"
	longUtterance   = 20
	perMessageCap   = 0.5 // normalization divisor per message
)

// InfluenceScores computes a normalized [0,1] influence score per speaker
// from tactic usage, message length, sentiment magnitude and questions.
// Output is sorted descending by score; speakers discovered in
// first-encounter order are the stable tie-break.
func InfluenceScores(t transcript.Transcript) []InfluenceScore {
	grouped := make(map[string][]string)
	var order []string
	for _, m := range t {
		if m.Speaker == "" {
			continue
		}
		if _, seen := grouped[m.Speaker]; !seen {
			order = append(order, m.Speaker)
		}
		grouped[m.Speaker] = append(grouped[m.Speaker], m.Text)
	}

	scores := make([]InfluenceScore, 0, len(order))
	for _, speaker := range order {
		messages := grouped[speaker]
		raw := 0.0
		tactics := []string{}
		usedTactic := make(map[string]bool)

		for _, msg := range messages {
			lower := strings.ToLower(msg)

			for _, cat := range lexicon.PersuasionIndicators {
				if matchesAny(lower, cat) {
					raw += tacticWeight
					if !usedTactic[cat.Name] {
						usedTactic[cat.Name] = true
						tactics = append(tactics, cat.Name)
					}
				}
			}

			if len(strings.Fields(msg)) > longUtterance {
				raw += lengthWeight
			}

			raw += abs(sentiment.Polarity(msg)) * sentimentWeight

			if strings.Contains(msg, "?") {
				raw += questionWeight
			}
		}

		normalized := 0.0
		if n := len(messages); n > 0 {
			normalized = raw / (float64(n) * perMessageCap)
			if normalized > 1 {
				normalized = 1
			}
		}

		scores = append(scores, InfluenceScore{
			Speaker:      speaker,
			Score:        normalized,
			Tactics:      tactics,
			MessageCount: len(messages),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

func matchesAny(lower string, cat lexicon.Category) bool {
	for _, pat := range cat.Patterns {
		if pat.MatchString(lower) {
			return true
		}
	}
	return false
}

// Package sentiment provides a small lexicon-based polarity primitive.
//
// Polarity satisfies the collaborator contract the analysis engine expects:
// a stateless polarity(text) scalar in [-1, 1]. It is a heuristic scorer,
// not a validated sentiment model.
package sentiment

import "strings"

var positiveWords = map[string]float64{
	"good": 0.7, "great": 0.8, "excellent": 1.0, "wonderful": 1.0,
	"amazing": 0.9, "fantastic": 0.9, "love": 0.8, "loved": 0.8,
	"happy": 0.8, "joy": 0.8, "delight": 0.8, "pleasure": 0.7,
	"best": 0.9, "better": 0.5, "nice": 0.6, "helpful": 0.6,
	"clear": 0.3, "clearly": 0.3, "right": 0.4, "correct": 0.5,
	"agree": 0.4, "yes": 0.3, "thanks": 0.5, "thank": 0.5,
	"perfect": 1.0, "brilliant": 0.9, "beautiful": 0.8, "win": 0.6,
	"victory": 0.7, "hope": 0.5, "trust": 0.5, "reliable": 0.5,
	"honest": 0.6, "kind": 0.6, "care": 0.4, "support": 0.4,
}

var negativeWords = map[string]float64{
	"bad": 0.7, "terrible": 1.0, "awful": 1.0, "horrible": 1.0,
	"hate": 0.8, "hated": 0.8, "sad": 0.6, "angry": 0.7, "furious": 0.9,
	"stupid": 0.8, "dumb": 0.7, "idiot": 0.9, "moron": 0.9, "fool": 0.7,
	"worst": 1.0, "worse": 0.6, "wrong": 0.5, "fail": 0.6, "failure": 0.7,
	"pain": 0.6, "suffering": 0.8, "heartbreaking": 0.9, "tragic": 0.8,
	"fear": 0.6, "afraid": 0.6, "scared": 0.6, "danger": 0.6,
	"threat": 0.6, "crisis": 0.6, "unfair": 0.6, "injustice": 0.7,
	"liar": 0.8, "lie": 0.6, "lies": 0.6, "disgusting": 0.9,
	"useless": 0.7, "incompetent": 0.8, "clueless": 0.7, "naive": 0.4,
	"regret": 0.5, "guilty": 0.5, "crazy": 0.5, "irrational": 0.5,
	"no": 0.2, "never": 0.2, "problem": 0.4, "broken": 0.5,
}

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "hardly": true,
	"isn't": true, "wasn't": true, "don't": true, "doesn't": true,
	"didn't": true, "can't": true, "won't": true, "couldn't": true,
	"shouldn't": true, "wouldn't": true, "aren't": true,
}

// Polarity scores text in [-1, 1]. Zero means neutral or no sentiment-bearing
// words. A negator directly before a sentiment word flips its sign.
func Polarity(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	var scored int
	for i, tok := range tokens {
		score, ok := wordScore(tok)
		if !ok {
			continue
		}
		if i > 0 && negators[tokens[i-1]] {
			score = -score
		}
		sum += score
		scored++
	}
	if scored == 0 {
		return 0
	}

	return clamp(sum / float64(scored))
}

func wordScore(tok string) (float64, bool) {
	if v, ok := positiveWords[tok]; ok {
		return v, true
	}
	if v, ok := negativeWords[tok]; ok {
		return -v, true
	}
	return 0, false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'':
			return false
		}
		return true
	})
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

package analysis

import (
	"strings"

	"github.com/convolens/convolens/internal/sentiment"
	"github.com/convolens/convolens/internal/transcript"
)

const emotionEngine = "polarity_lexicon_v1"

// EmotionResult is the per-utterance emotion record.
type EmotionResult struct {
	Text     string             `json:"text"`
	Emotions map[string]float64 `json:"emotions"`
	Error    string             `json:"error,omitempty"`
}

const errEmptyInput = "Empty or invalid input text"

// AnalyzeEmotions scores each utterance. Empty or whitespace-only input
// yields a record with an explicit error marker and an empty emotion mapping;
// the sentiment primitive is not called for it.
func AnalyzeEmotions(texts []string) []EmotionResult {
	results := make([]EmotionResult, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			results = append(results, EmotionResult{
				Text:     text,
				Emotions: map[string]float64{},
				Error:    errEmptyInput,
			})
			continue
		}
		results = append(results, EmotionResult{
			Text:     text,
			Emotions: emotionChannels(sentiment.Polarity(text)),
		})
	}
	return results
}

// emotionChannels derives the positive/negative/neutral triple from a scalar
// polarity in [-1, 1].
func emotionChannels(polarity float64) map[string]float64 {
	return map[string]float64{
		"positive": max0(polarity),
		"negative": max0(-polarity),
		"neutral":  1 - abs(polarity),
	}
}

// SpeakerEmotions averages the emotion channels over each speaker's
// utterances. Unweighted arithmetic mean; speaker-less utterances are
// excluded.
func SpeakerEmotions(t transcript.Transcript) map[string]EmotionAverages {
	sums := make(map[string]*EmotionAverages)
	counts := make(map[string]int)

	for _, m := range t {
		if m.Speaker == "" {
			continue
		}
		p := sentiment.Polarity(m.Text)
		s, ok := sums[m.Speaker]
		if !ok {
			s = &EmotionAverages{}
			sums[m.Speaker] = s
		}
		s.Positive += max0(p)
		s.Negative += max0(-p)
		s.Neutral += 1 - abs(p)
		counts[m.Speaker]++
	}

	out := make(map[string]EmotionAverages, len(sums))
	for speaker, s := range sums {
		n := float64(counts[speaker])
		out[speaker] = EmotionAverages{
			Positive: s.Positive / n,
			Negative: s.Negative / n,
			Neutral:  s.Neutral / n,
		}
	}
	return out
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package analysis

import (
	"fmt"

	"github.com/convolens/convolens/internal/transcript"
)

const errNoTexts = "No text content found for analysis."

// Analyze runs every engine component over one transcript and assembles the
// composite report. Component failures never abort the run: each is captured
// as a named entry in the errors list and the affected section carries an
// inline error instead of data. The returned report is always structurally
// complete.
func Analyze(t transcript.Transcript) *Report {
	r := &Report{
		Fallacies:    map[string]CategoryFinding{},
		Emotions:     map[string]EmotionAverages{},
		Manipulation: map[string]CategoryFinding{},
		PersuasionTactics: PersuasionTacticsSummary{
			TacticFrequency: map[string]int{},
			SpeakerTactics:  map[string][]string{},
		},
		InfluenceScores: []InfluenceScore{},
		Errors:          []string{},
	}

	// Speaker statistics. A no-speakers condition is a section-level error
	// only; every other component still runs.
	capture(r, "speaker statistics", func() {
		stats, err := Stats(t)
		if err != nil {
			r.SpeakerStatistics.Error = err.Error()
			r.Errors = append(r.Errors, "speaker statistics: "+err.Error())
			return
		}
		r.SpeakerStatistics.SpeakerStats = stats
	})

	// Per-utterance analyzers share the extracted text list.
	texts := t.Texts()
	if len(texts) == 0 {
		r.EmotionAnalysis.Error = errNoTexts
		r.PersuasionAnalysis.Error = errNoTexts
		r.TacticDetection.Error = errNoTexts
		r.Errors = append(r.Errors, errNoTexts)
	} else {
		capture(r, "emotion analysis", func() {
			r.EmotionAnalysis = EmotionSection{Engine: emotionEngine, Results: AnalyzeEmotions(texts)}
		})
		capture(r, "persuasion analysis", func() {
			r.PersuasionAnalysis = PersuasionSection{Engine: persuasionEngine, Results: ScorePersuasion(texts)}
		})
		capture(r, "tactic detection", func() {
			r.TacticDetection = TacticSection{Engine: tacticEngine, Results: DetectTactics(texts)}
		})
	}

	capture(r, "influence graph", func() {
		r.InfluenceGraph.Graph = InteractionGraph(t)
	})

	// Compact per-conversation sections.
	capture(r, "influence scores", func() {
		r.InfluenceScores = InfluenceScores(t)
	})
	capture(r, "fallacy detection", func() {
		r.Fallacies = DetectFallacies(t)
	})
	capture(r, "emotion averages", func() {
		r.Emotions = SpeakerEmotions(t)
	})
	capture(r, "manipulation detection", func() {
		r.Manipulation = DetectManipulation(t)
	})
	capture(r, "persuasion tactics", func() {
		r.PersuasionTactics = AnalyzePersuasionTactics(t)
	})

	r.Overview = overview(t, r)

	r.Status = StatusCompleted
	if len(r.Errors) > 0 {
		r.Status = StatusCompletedWithErrors
	}
	return r
}

func overview(t transcript.Transcript, r *Report) Overview {
	speakers := make(map[string]bool)
	for _, m := range t {
		if m.Speaker != "" {
			speakers[m.Speaker] = true
		}
	}

	totalFallacies := 0
	for _, f := range r.Fallacies {
		totalFallacies += f.Count
	}

	avg := 0.0
	if len(r.InfluenceScores) > 0 {
		for _, s := range r.InfluenceScores {
			avg += s.Score
		}
		avg /= float64(len(r.InfluenceScores))
	}

	return Overview{
		TotalSpeakers:  len(speakers),
		TotalMessages:  len(t),
		TotalFallacies: totalFallacies,
		AvgInfluence:   avg * 100,
	}
}

// capture isolates a component: a panic becomes a named error entry and the
// run continues.
func capture(r *Report, name string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", name, rec))
		}
	}()
	fn()
}

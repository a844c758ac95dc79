// Package analysis implements the conversation analysis engine: pure,
// stateless scorers over a normalized transcript, and the orchestrator that
// assembles their outputs into one report.
package analysis

// Overview summarises a whole conversation.
type Overview struct {
	TotalSpeakers  int     `json:"total_speakers"`
	TotalMessages  int     `json:"total_messages"`
	TotalFallacies int     `json:"total_fallacies"`
	AvgInfluence   float64 `json:"avg_influence"` // mean influence score x100
}

// InfluenceScore is one speaker's normalized influence record.
type InfluenceScore struct {
	Speaker      string   `json:"speaker"`
	Score        float64  `json:"score"` // in [0,1]
	Tactics      []string `json:"tactics"`
	MessageCount int      `json:"message_count"`
}

// CategoryFinding is a per-category hit count with up to three example
// utterances.
type CategoryFinding struct {
	Count    int      `json:"count"`
	Examples []string `json:"examples"`
}

// EmotionAverages is a speaker's mean emotion triple.
type EmotionAverages struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// PersuasionTacticsSummary aggregates indicator-category usage.
type PersuasionTacticsSummary struct {
	TacticFrequency map[string]int      `json:"tactic_frequency"`
	SpeakerTactics  map[string][]string `json:"speaker_tactics"`
}

// Report is the composite analysis output. The first six sections are the
// compact per-conversation view; the remaining keyed sections are the full
// pipeline results, each able to carry an inline error instead of data.
type Report struct {
	Status string `json:"status"`

	Overview          Overview                   `json:"overview"`
	InfluenceScores   []InfluenceScore           `json:"influence_scores"`
	Fallacies         map[string]CategoryFinding `json:"fallacies"`
	Emotions          map[string]EmotionAverages `json:"emotions"`
	Manipulation      map[string]CategoryFinding `json:"manipulation"`
	PersuasionTactics PersuasionTacticsSummary   `json:"persuasion_tactics"`

	SpeakerStatistics  StatsSection      `json:"speaker_statistics"`
	EmotionAnalysis    EmotionSection    `json:"emotion_analysis"`
	PersuasionAnalysis PersuasionSection `json:"persuasion_analysis"`
	TacticDetection    TacticSection     `json:"tactic_detection"`
	InfluenceGraph     GraphSection      `json:"influence_graph"`

	Errors []string `json:"errors"`
}

// Report statuses.
const (
	StatusCompleted           = "completed"
	StatusCompletedWithErrors = "completed_with_errors"
)

// Sections wrap component output with an optional inline error. When Error is
// set the embedded data pointer is nil and its fields are absent from the
// serialized report.

type StatsSection struct {
	*SpeakerStats
	Error string `json:"error,omitempty"`
}

type EmotionSection struct {
	Engine  string          `json:"emotion_analysis_engine,omitempty"`
	Results []EmotionResult `json:"results,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type PersuasionSection struct {
	Engine  string            `json:"persuasion_analysis_engine,omitempty"`
	Results []PersuasionScore `json:"results,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type TacticSection struct {
	Engine  string         `json:"tactic_detection_engine,omitempty"`
	Results []TacticResult `json:"results,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type GraphSection struct {
	*Graph
	Error string `json:"error,omitempty"`
}

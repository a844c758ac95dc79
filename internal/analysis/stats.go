package analysis

import (
	"errors"

	"github.com/convolens/convolens/internal/transcript"
)

// ErrNoSpeakers is returned when normalization produced messages but none of
// them carried an identifiable speaker. Callers must be able to distinguish
// this from a legitimately empty conversation.
var ErrNoSpeakers = errors.New("could not identify any speakers; file may be empty or misformatted")

// SpeakerStats aggregates message counts per speaker.
type SpeakerStats struct {
	TotalMessages          int            `json:"total_messages"`
	SpeakersFound          []string       `json:"speakers_found"`
	MessageCountPerSpeaker map[string]int `json:"message_count_per_speaker"`
}

// Stats counts messages per speaker. Speaker-less utterances contribute
// nothing. SpeakersFound preserves first-encounter order.
func Stats(t transcript.Transcript) (*SpeakerStats, error) {
	counts := make(map[string]int)
	var order []string
	total := 0

	for _, m := range t {
		if m.Speaker == "" {
			continue
		}
		if _, seen := counts[m.Speaker]; !seen {
			order = append(order, m.Speaker)
		}
		counts[m.Speaker]++
		total++
	}

	if total == 0 {
		return nil, ErrNoSpeakers
	}

	return &SpeakerStats{
		TotalMessages:          total,
		SpeakersFound:          order,
		MessageCountPerSpeaker: counts,
	}, nil
}

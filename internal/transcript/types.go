package transcript

import "strings"

// Message is a single utterance in a conversation. Speaker may be empty when
// the source line carried no speaker delimiter; Text may be empty when a
// speaker tag had no content after the colon. Both are never empty at once.
type Message struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Transcript is the ordered sequence of messages for one conversation.
// Order matches the original turn order in the source file.
type Transcript []Message

// Texts returns the non-empty utterance texts in order.
func (t Transcript) Texts() []string {
	texts := make([]string, 0, len(t))
	for _, m := range t {
		if strings.TrimSpace(m.Text) != "" {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// ExtractionError reports a structural failure to parse a source format.
// Row- and line-level problems are swallowed during extraction; this error
// means the file as a whole could not be read.
type ExtractionError struct {
	Format string
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extract " + e.Format + ": " + e.Reason
}

package transcript

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Key probe order for structured message records. First present non-empty
// value wins.
var (
	speakerKeys = []string{"speaker", "user", "author", "name", "user_id"}
	textKeys    = []string{"text", "message", "line", "content", "utterance", "msg"}
)

// parseStructured extracts messages from a JSON log. The root may itself be
// the message array, or a record exposing it under "transcript" or
// "log.messages". Elements that are not records are skipped.
func parseStructured(raw []byte) (Transcript, error) {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, &ExtractionError{Format: "json", Reason: err.Error()}
	}

	items := messageSequence(root)

	var out Transcript
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}

		speaker := probeString(rec, speakerKeys)
		text := probeText(rec, textKeys)
		if speaker != "" || text != "" {
			out = append(out, Message{Speaker: speaker, Text: text})
		}

		// Known vendor shape: response.output.generic[0].text carries an
		// additional utterance independent of the element's direct text field.
		if extra := genericResponseText(rec); extra != "" {
			out = append(out, Message{Text: extra})
		}
	}

	return out, nil
}

// messageSequence locates the message array, trying the root itself, then
// "transcript", then "log.messages".
func messageSequence(root any) []any {
	if seq, ok := root.([]any); ok {
		return seq
	}
	rec, ok := root.(map[string]any)
	if !ok {
		return nil
	}
	if seq, ok := rec["transcript"].([]any); ok {
		return seq
	}
	if log, ok := rec["log"].(map[string]any); ok {
		if seq, ok := log["messages"].([]any); ok {
			return seq
		}
	}
	return nil
}

// probeString returns the first non-empty value among keys, stringified.
// Numeric identifiers (e.g. user_id) are accepted; zero counts as absent.
func probeString(rec map[string]any, keys []string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			if v != 0 {
				if v == float64(int64(v)) {
					return strconv.FormatInt(int64(v), 10)
				}
				return strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
	}
	return ""
}

// probeText returns the first non-empty string value among keys. Only string
// values qualify as utterance text.
func probeText(rec map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := rec[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func genericResponseText(rec map[string]any) string {
	resp, ok := rec["response"].(map[string]any)
	if !ok {
		return ""
	}
	output, ok := resp["output"].(map[string]any)
	if !ok {
		return ""
	}
	generic, ok := output["generic"].([]any)
	if !ok || len(generic) == 0 {
		return ""
	}
	first, ok := generic[0].(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := first["text"].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

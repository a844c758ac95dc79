// Package transcript turns raw transcript files of heterogeneous formats
// into one canonical ordered sequence of (speaker, utterance) pairs.
//
// Three source shapes are supported: line-delimited "Name: text" transcripts,
// nested JSON chat logs, and tabular exports with or without a header row.
// Extraction is tolerant: malformed rows and lines are dropped individually,
// and only a structural failure of the whole file yields an error.
package transcript

import "strings"

// Normalize parses raw bytes into a transcript using the declared format.
// ext is a file extension with or without the leading dot ("txt", ".json",
// "csv"). A *ExtractionError is returned for unreadable input or an unknown
// format; the transcript is never partially returned alongside an error.
func Normalize(raw []byte, ext string) (Transcript, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "txt":
		return parseLines(raw)
	case "json":
		return parseStructured(raw)
	case "csv":
		return parseTabular(raw)
	default:
		return nil, &ExtractionError{Format: ext, Reason: "unsupported file type"}
	}
}

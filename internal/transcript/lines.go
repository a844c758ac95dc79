package transcript

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

// speakerLine matches a "Name: text" line: a speaker of word, space, dot or
// hyphen characters, a colon, then required whitespace before the utterance.
var speakerLine = regexp.MustCompile(`^\s*([\w\s.-]+?)\s*:\s+(.*)$`)

const maxSpeakerLen = 50

// parseLines extracts messages from a line-delimited transcript. Blank lines
// are skipped. Lines without a recognisable speaker are kept as speaker-less
// utterances so their text still reaches the analyzers.
func parseLines(raw []byte) (Transcript, error) {
	var out Transcript

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := speakerLine.FindStringSubmatch(line); m != nil {
			speaker := strings.TrimSpace(m[1])
			// Purely numeric prefixes ("12: some text") are timestamps or
			// line numbers, not speakers.
			if !isDigits(speaker) {
				out = append(out, Message{
					Speaker: speaker,
					Text:    strings.TrimSpace(m[2]),
				})
				continue
			}
		}

		// Fallback for "Name:text" without whitespace after the colon.
		if speaker, rest, ok := splitColonPrefix(line); ok {
			out = append(out, Message{Speaker: speaker, Text: rest})
			continue
		}

		// No speaker delimiter: whole line is an utterance.
		out = append(out, Message{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ExtractionError{Format: "txt", Reason: err.Error()}
	}

	return out, nil
}

// splitColonPrefix accepts the prefix before the first colon as a speaker
// label when it is shorter than 50 characters and not purely numeric.
func splitColonPrefix(line string) (speaker, rest string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	prefix := strings.TrimSpace(line[:idx])
	if prefix == "" || len(prefix) >= maxSpeakerLen || isDigits(prefix) {
		return "", "", false
	}
	return prefix, strings.TrimSpace(line[idx+1:]), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

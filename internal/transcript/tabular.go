package transcript

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Column name candidates, matched case-insensitively against header cells.
var (
	speakerColumns = []string{"speaker", "user", "author", "speaker_id", "from", "name"}
	textColumns    = []string{"text", "message", "content", "utterance", "line", "transcript", "msg"}
)

// parseTabular extracts messages from CSV content. The first 2KB are sniffed
// for a header row; when sniffing cannot decide, a header is assumed since
// that yields more accurate field mapping on ambiguous input. Individual bad
// rows are dropped without aborting the file.
func parseTabular(raw []byte) (Transcript, error) {
	rows, err := readRows(raw)
	if err != nil {
		return nil, &ExtractionError{Format: "csv", Reason: err.Error()}
	}
	if len(rows) == 0 {
		return Transcript{}, nil
	}

	hasHeader, err := sniffHeader(rows)
	if err != nil {
		hasHeader = true
	}

	if hasHeader {
		return tabularWithHeader(rows[0], rows[1:]), nil
	}
	return tabularPositional(rows), nil
}

// readRows parses all CSV rows, skipping rows that fail to parse. A failure
// on the very first read is structural and reported to the caller.
func readRows(raw []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(raw)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if len(rows) == 0 {
				return nil, err
			}
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sniffHeader decides whether the first row is a header by comparing its
// cells against the column types of the following rows: a header cell is
// non-numeric where the column below it is consistently numeric. With a
// single row there is nothing to compare against.
func sniffHeader(rows [][]string) (bool, error) {
	if len(rows) < 2 {
		return false, errors.New("not enough rows to sniff header")
	}

	first := rows[0]
	votes := 0
	voters := 0
	for col, cell := range first {
		numericBelow := true
		seen := false
		for _, row := range rows[1:] {
			if col >= len(row) {
				continue
			}
			seen = true
			if !isNumeric(row[col]) {
				numericBelow = false
				break
			}
		}
		if !seen {
			continue
		}
		voters++
		if numericBelow && !isNumeric(cell) {
			votes++
		}
		// A header cell that names a known column is decisive on its own.
		if matchColumn(cell, speakerColumns) || matchColumn(cell, textColumns) {
			return true, nil
		}
	}
	if voters == 0 {
		return false, errors.New("no comparable columns")
	}
	return votes > 0, nil
}

func tabularWithHeader(header []string, rows [][]string) Transcript {
	speakerCol := findColumn(header, speakerColumns)
	textCol := findColumn(header, textColumns)

	var out Transcript
	for _, row := range rows {
		var msg Message
		if speakerCol >= 0 && speakerCol < len(row) {
			msg.Speaker = strings.TrimSpace(row[speakerCol])
		} else if speakerCol < 0 && len(row) > 0 {
			// No named speaker column: try the first cell if it looks like
			// a speaker label.
			if s := strings.TrimSpace(row[0]); validSpeakerShape(s) {
				msg.Speaker = s
			}
		}
		if textCol >= 0 && textCol < len(row) {
			msg.Text = strings.TrimSpace(row[textCol])
		}
		if msg.Speaker != "" || msg.Text != "" {
			out = append(out, msg)
		}
	}
	return out
}

func tabularPositional(rows [][]string) Transcript {
	var out Transcript
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		var msg Message
		if s := strings.TrimSpace(row[0]); validSpeakerShape(s) {
			msg.Speaker = s
		}
		if len(row) > 1 {
			msg.Text = strings.TrimSpace(row[len(row)-1])
		} else {
			msg.Text = strings.TrimSpace(row[0])
		}
		if msg.Speaker != "" || msg.Text != "" {
			out = append(out, msg)
		}
	}
	return out
}

// findColumn returns the index of the first header cell whose name is in the
// candidate set, or -1.
func findColumn(header []string, candidates []string) int {
	for i, cell := range header {
		if matchColumn(cell, candidates) {
			return i
		}
	}
	return -1
}

func matchColumn(cell string, candidates []string) bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	for _, c := range candidates {
		if cell == c {
			return true
		}
	}
	return false
}

// validSpeakerShape applies the positional speaker heuristic: short,
// non-numeric, and free of colons.
func validSpeakerShape(s string) bool {
	return s != "" && len(s) < maxSpeakerLen && !isDigits(s) && !strings.Contains(s, ":")
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

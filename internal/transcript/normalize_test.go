package transcript

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNormalize_LineDelimited(t *testing.T) {
	raw := []byte("Alice: hello there\n\nBob: hi Alice\nAlice: how are you?\n")

	got, err := Normalize(raw, ".txt")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := Transcript{
		{Speaker: "Alice", Text: "hello there"},
		{Speaker: "Bob", Text: "hi Alice"},
		{Speaker: "Alice", Text: "how are you?"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalize_LineFallbacks(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Message
	}{
		{"dotted speaker", "Dr. Smith: some text", Message{Speaker: "Dr. Smith", Text: "some text"}},
		{"no space after colon", "Bob:quick reply", Message{Speaker: "Bob", Text: "quick reply"}},
		{"numeric prefix rejected", "12: some text", Message{Text: "12: some text"}},
		{"no delimiter at all", "just a bare line", Message{Text: "just a bare line"}},
		{"hyphenated speaker", "Mary-Jane: hi", Message{Speaker: "Mary-Jane", Text: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.line), "txt")
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("expected 1 message, got %d", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("got %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestNormalize_LongColonPrefixNotSpeaker(t *testing.T) {
	long := "this prefix is way too long to be a plausible speaker name for anybody"
	got, err := Normalize([]byte(long+": text"), "txt")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(got) != 1 || got[0].Speaker != "" {
		t.Errorf("expected speaker-less utterance, got %+v", got)
	}
}

func TestNormalize_JSONRootArray(t *testing.T) {
	raw := []byte(`[{"speaker":"X","text":"hi"},{"speaker":"Y","text":"hello"}]`)

	got, err := Normalize(raw, ".json")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := Transcript{{Speaker: "X", Text: "hi"}, {Speaker: "Y", Text: "hello"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Round-trip: re-serializing preserves speakers, texts and order.
	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Transcript
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(back, got) {
		t.Errorf("round-trip mismatch: %+v vs %+v", back, got)
	}
}

func TestNormalize_JSONNestedPaths(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Transcript
	}{
		{
			"transcript key",
			`{"transcript":[{"user":"A","message":"hey"}]}`,
			Transcript{{Speaker: "A", Text: "hey"}},
		},
		{
			"log.messages key",
			`{"log":{"messages":[{"author":"B","content":"yo"}]}}`,
			Transcript{{Speaker: "B", Text: "yo"}},
		},
		{
			"key priority: speaker beats user",
			`[{"speaker":"S","user":"U","text":"t"}]`,
			Transcript{{Speaker: "S", Text: "t"}},
		},
		{
			"numeric user_id accepted",
			`[{"user_id":42,"msg":"ping"}]`,
			Transcript{{Speaker: "42", Text: "ping"}},
		},
		{
			"large numeric user_id stays plain decimal",
			`[{"user_id":10000000000,"msg":"pong"}]`,
			Transcript{{Speaker: "10000000000", Text: "pong"}},
		},
		{
			"vendor generic path adds extra utterance",
			`[{"speaker":"bot","text":"direct","response":{"output":{"generic":[{"text":"nested reply"}]}}}]`,
			Transcript{{Speaker: "bot", Text: "direct"}, {Text: "nested reply"}},
		},
		{
			"non-record elements skipped",
			`["loose string",{"speaker":"C","text":"kept"}]`,
			Transcript{{Speaker: "C", Text: "kept"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.raw), "json")
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalize_JSONInvalid(t *testing.T) {
	_, err := Normalize([]byte(`{"transcript": [unterminated`), "json")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	var ee *ExtractionError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExtractionError, got %T", err)
	}
}

func TestNormalize_CSVWithHeader(t *testing.T) {
	raw := []byte("speaker,message\nAlice,Because the data shows clear evidence\nBob,I feel this is heartbreaking\n")

	got, err := Normalize(raw, ".csv")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := Transcript{
		{Speaker: "Alice", Text: "Because the data shows clear evidence"},
		{Speaker: "Bob", Text: "I feel this is heartbreaking"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalize_CSVHeaderCaseInsensitive(t *testing.T) {
	raw := []byte("From,Content\nAlice,hello\n")
	got, err := Normalize(raw, "csv")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := Transcript{{Speaker: "Alice", Text: "hello"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalize_CSVHeaderless(t *testing.T) {
	raw := []byte("Alice,hello there\nBob,hi back\n")

	got, err := Normalize(raw, "csv")
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	want := Transcript{
		{Speaker: "Alice", Text: "hello there"},
		{Speaker: "Bob", Text: "hi back"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestNormalize_CSVHeaderlessShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Message
	}{
		{"numeric first cell is not a speaker", "123,some text\n456,more text", Message{Text: "some text"}},
		{"last column wins as text", "Alice,10:30,actual words\nBob,10:31,reply words", Message{Speaker: "Alice", Text: "actual words"}},
		{"single column doubles as speaker candidate and text", "Standalone remark\nAnother remark", Message{Speaker: "Standalone remark", Text: "Standalone remark"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.raw), "csv")
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if len(got) == 0 {
				t.Fatal("expected at least one message")
			}
			if got[0] != tt.want {
				t.Errorf("got %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestNormalize_UnsupportedExtension(t *testing.T) {
	_, err := Normalize([]byte("whatever"), ".pdf")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestTranscript_TextsFiltersEmpty(t *testing.T) {
	tr := Transcript{
		{Speaker: "A", Text: "hello"},
		{Speaker: "B", Text: ""},
		{Text: "bare line"},
	}
	got := tr.Texts()
	want := []string{"hello", "bare line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

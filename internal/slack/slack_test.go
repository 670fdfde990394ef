package slack

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFenceUnderLimit(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		limit int
	}{
		{
			name:  "short text unchanged",
			raw:   `{"message": "hello"}`,
			limit: 2900,
		},
		{
			name:  "text exactly at limit unchanged",
			raw:   strings.Repeat("x", 100),
			limit: 100,
		},
		{
			name:  "zero limit falls back to default",
			raw:   strings.Repeat("x", 2900),
			limit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Fence(tt.raw, tt.limit)
			if truncated {
				t.Error("Fence() reported truncation for text within limit")
			}
			if want := "```" + tt.raw + "```"; got != want {
				t.Errorf("Fence() = %q, want %q", got, want)
			}
		})
	}
}

func TestFenceOverLimit(t *testing.T) {
	limit := 2900
	raw := strings.Repeat("a", limit+1)

	got, truncated := Fence(raw, limit)
	if !truncated {
		t.Fatal("Fence() did not report truncation")
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(got, "```"), "```")
	if !strings.HasSuffix(inner, TruncationMarker) {
		t.Errorf("truncated text does not end with marker: %q", inner[len(inner)-40:])
	}
	if want := limit - 20 + len(TruncationMarker); len(inner) != want {
		t.Errorf("truncated text length = %d, want %d", len(inner), want)
	}
	if len(inner) > limit+len(TruncationMarker) {
		t.Errorf("truncated text length %d exceeds limit plus marker overhead", len(inner))
	}
}

func TestFenceTinyLimit(t *testing.T) {
	// Limits below the tail offset must not panic.
	got, truncated := Fence("abcdefghij", 5)
	if !truncated {
		t.Fatal("Fence() did not report truncation")
	}
	if want := "```" + TruncationMarker + "```"; got != want {
		t.Errorf("Fence() = %q, want %q", got, want)
	}
}

func TestBlockJSONShape(t *testing.T) {
	msg := Message{
		Text: "hello",
		Blocks: []Block{
			Header("New Firestore message"),
			Section("hello"),
			Fields("Collection:\nmessages", "Doc ID:\nabc123"),
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded struct {
		Text   string `json:"text"`
		Blocks []struct {
			Type string `json:"type"`
			Text *struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"text"`
			Fields []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"fields"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if decoded.Text != "hello" {
		t.Errorf("text = %q, want hello", decoded.Text)
	}
	if len(decoded.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(decoded.Blocks))
	}
	if decoded.Blocks[0].Type != "header" || decoded.Blocks[0].Text.Type != "plain_text" {
		t.Errorf("header block has wrong shape: %+v", decoded.Blocks[0])
	}
	if decoded.Blocks[1].Text.Type != "mrkdwn" {
		t.Errorf("section text type = %q, want mrkdwn", decoded.Blocks[1].Text.Type)
	}
	if len(decoded.Blocks[2].Fields) != 2 || decoded.Blocks[2].Fields[1].Text != "Doc ID:\nabc123" {
		t.Errorf("fields block has wrong shape: %+v", decoded.Blocks[2])
	}
	// header section must not serialize an empty fields array
	if strings.Contains(string(data), `"fields":[]`) {
		t.Errorf("empty fields serialized: %s", data)
	}
}

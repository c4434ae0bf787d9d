package chatlog

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestampDayFirst(t *testing.T) {
	tests := []struct {
		dateText string
		timeText string
		dayFirst bool
		want     time.Time
	}{
		{"12/01/2026", "08:15", true, time.Date(2026, 1, 12, 8, 15, 0, 0, time.UTC)},
		{"12/01/26", "08:15", true, time.Date(2026, 1, 12, 8, 15, 0, 0, time.UTC)},
		{"12/01/2026", "08:15", false, time.Date(2026, 12, 1, 8, 15, 0, 0, time.UTC)},
		{"3/4/2026", "23:59:07", true, time.Date(2026, 4, 3, 23, 59, 7, 0, time.UTC)},
		{"3/4/2026", "23:59:07", false, time.Date(2026, 3, 4, 23, 59, 7, 0, time.UTC)},
		// 31 cannot be a month, so the month-first policy falls
		// through to the day-first templates.
		{"31/12/2026", "00:00", false, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		got, err := ParseTimestamp(tc.dateText, tc.timeText, tc.dayFirst)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q, %q, %v): %v", tc.dateText, tc.timeText, tc.dayFirst, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseTimestamp(%q, %q, %v) = %v, want %v", tc.dateText, tc.timeText, tc.dayFirst, got, tc.want)
		}
	}
}

func TestParseTimestampUnparseable(t *testing.T) {
	for _, dateText := range []string{"2026-01-12", "13/13/2026", "not a date", ""} {
		_, err := ParseTimestamp(dateText, "08:15", true)
		if !errors.Is(err, ErrUnparseableDate) {
			t.Fatalf("ParseTimestamp(%q) error = %v, want ErrUnparseableDate", dateText, err)
		}
	}
	if _, err := ParseTimestamp("12/01/2026", "8h15", true); !errors.Is(err, ErrUnparseableDate) {
		t.Fatalf("bad time error = %v, want ErrUnparseableDate", err)
	}
}

func TestExtractMessageShapes(t *testing.T) {
	want := time.Date(2026, 1, 12, 8, 15, 0, 0, time.UTC)
	lines := []string{
		"12/01/2026, 08:15 - Alice: Wordle 1689 3/6",
		"[12/01/2026, 08:15] Alice: Wordle 1689 3/6",
	}
	for _, line := range lines {
		msg, ok := ExtractMessage(line, true)
		if !ok {
			t.Fatalf("ExtractMessage(%q) did not match", line)
		}
		if msg.Sender != "Alice" {
			t.Fatalf("sender = %q, want Alice", msg.Sender)
		}
		if !msg.Timestamp.Equal(want) {
			t.Fatalf("timestamp = %v, want %v", msg.Timestamp, want)
		}
		if msg.Body != "Wordle 1689 3/6" {
			t.Fatalf("body = %q", msg.Body)
		}
	}
}

func TestExtractMessageSeconds(t *testing.T) {
	msg, ok := ExtractMessage("12/01/2026, 08:15:42 - Bob: hi", true)
	if !ok {
		t.Fatalf("line with seconds did not match")
	}
	if msg.Timestamp.Second() != 42 {
		t.Fatalf("seconds = %d, want 42", msg.Timestamp.Second())
	}
}

func TestExtractMessageSkips(t *testing.T) {
	lines := []string{
		"",
		"a continuation line of a long message",
		"12/01/2026, 08:15 - Messages are end-to-end encrypted",
		"99/99/2026, 08:15 - Alice: hello",
	}
	for _, line := range lines {
		if _, ok := ExtractMessage(line, true); ok {
			t.Fatalf("ExtractMessage(%q) matched, want skip", line)
		}
	}
}

func TestExtractMessageTrimsSender(t *testing.T) {
	msg, ok := ExtractMessage("12/01/2026, 08:15 -  Alice : hello  ", true)
	if !ok {
		t.Fatalf("line did not match")
	}
	if msg.Sender != "Alice" {
		t.Fatalf("sender = %q, want Alice", msg.Sender)
	}
	if msg.Body != "hello" {
		t.Fatalf("body = %q, want hello", msg.Body)
	}
}

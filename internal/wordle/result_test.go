package wordle

import (
	"testing"

	"wordle-league/internal/model"
)

func TestExtractResult(t *testing.T) {
	tests := []struct {
		body    string
		puzzle  int
		guesses int
		failed  bool
	}{
		{"Wordle 1689 3/6", 1689, 3, false},
		{"Wordle 1,689 3/6", 1689, 3, false},
		{"wordle 42 X/6", 42, 0, true},
		{"WORDLE 42 x/6", 42, 0, true},
		{"Great puzzle today! Wordle 1689 6/6 phew", 1689, 6, false},
		{"Wordle 1689 1/6\n\ngreen green green", 1689, 1, false},
	}
	for _, tc := range tests {
		result, puzzle, ok := ExtractResult(tc.body)
		if !ok {
			t.Fatalf("ExtractResult(%q) did not match", tc.body)
		}
		if puzzle != tc.puzzle {
			t.Fatalf("ExtractResult(%q) puzzle = %d, want %d", tc.body, puzzle, tc.puzzle)
		}
		if result.Failed != tc.failed || (!tc.failed && result.Guesses != tc.guesses) {
			t.Fatalf("ExtractResult(%q) result = %+v", tc.body, result)
		}
	}
}

func TestExtractResultFirstMatchWins(t *testing.T) {
	result, puzzle, ok := ExtractResult("Wordle 100 2/6 and also Wordle 101 5/6")
	if !ok || puzzle != 100 || result.Guesses != 2 {
		t.Fatalf("got puzzle %d result %+v ok %v, want first token", puzzle, result, ok)
	}
}

func TestExtractResultNoToken(t *testing.T) {
	bodies := []string{
		"no puzzle here",
		"Wordle was fun today",
		"Wordle 1689 7/6",
		"Wordle 1689 0/6",
		"crossword 12 3/6",
	}
	for _, body := range bodies {
		if _, _, ok := ExtractResult(body); ok {
			t.Fatalf("ExtractResult(%q) matched, want none", body)
		}
	}
}

func TestResultPoints(t *testing.T) {
	for guesses, want := range map[int]float64{1: 6, 2: 5, 3: 4, 4: 3, 5: 2, 6: 1} {
		result, err := model.Solved(guesses)
		if err != nil {
			t.Fatalf("Solved(%d): %v", guesses, err)
		}
		if got := result.Points(); got != want {
			t.Fatalf("Points for %d guesses = %v, want %v", guesses, got, want)
		}
	}
	if got := model.FailedResult().Points(); got != 0.5 {
		t.Fatalf("failed points = %v, want 0.5", got)
	}
}

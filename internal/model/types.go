// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Result is the outcome of a single Wordle attempt: solved in 1-6
// guesses, or failed (the X/6 share).
type Result struct {
	Guesses int
	Failed  bool
}

// Solved builds a solved result after validating the guess count.
func Solved(guesses int) (Result, error) {
	if guesses < 1 || guesses > 6 {
		return Result{}, fmt.Errorf("guesses must be between 1 and 6, got %d", guesses)
	}
	return Result{Guesses: guesses}, nil
}

// FailedResult is the X/6 outcome.
func FailedResult() Result {
	return Result{Failed: true}
}

// Points returns the score value of the result: 7-g for a solve, so
// fewer guesses score higher, and 0.5 partial credit for a fail.
func (r Result) Points() float64 {
	if r.Failed {
		return 0.5
	}
	return float64(7 - r.Guesses)
}

// ParsedMessage is one chat line that matched a known export shape.
type ParsedMessage struct {
	Sender    string
	Timestamp time.Time
	Body      string
}

// ResultEvent is a scored submission extracted from a message.
type ResultEvent struct {
	Player    string
	Puzzle    int
	Result    Result
	Timestamp time.Time
}

// SeasonConfig holds the settings for one report run. DoubleDates keys
// are ISO dates (YYYY-MM-DD). StartDate must be a midnight UTC date.
type SeasonConfig struct {
	StartDate   time.Time
	StartPuzzle int
	Weeks       int
	ReportWeek  int
	DayFirst    bool
	DoubleDates map[string]struct{}
}

// Standing is one ranked leaderboard row.
type Standing struct {
	Player string
	Points float64
}

// MissingEntry lists the puzzles a player skipped in the report week,
// in ascending order.
type MissingEntry struct {
	Player  string
	Puzzles []int
}

// Report is the computed leaderboard for one run.
type Report struct {
	Week          int
	WeekStart     time.Time
	WeekEnd       time.Time
	DoubleDays    []string
	WeekRanking   []Standing
	SeasonRanking []Standing
	Missing       []MissingEntry
}

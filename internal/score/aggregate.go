// Package score aggregates ledger events into ranked point totals.
package score

import (
	"time"

	"wordle-league/internal/ledger"
	"wordle-league/internal/season"
)

// Total is one player's aggregate over a date range: summed points and
// the puzzle numbers with no submission, in ascending order.
type Total struct {
	Points  float64
	Missing []int
}

// Aggregate sums points per player over the inclusive date range. Each
// date maps to its puzzle via the calendar and contributes the stored
// result's points times the date multiplier (2 on double dates, else
// 1). A fresh map is returned per call; nothing is shared or mutated.
func Aggregate(led *ledger.Ledger, players []string, from, to time.Time, doubles map[string]struct{}, cal season.Calendar) map[string]Total {
	totals := make(map[string]Total, len(players))
	for _, d := range season.Dates(from, to) {
		puzzle := cal.PuzzleForDate(d)
		multiplier := 1.0
		if _, ok := doubles[season.ISO(d)]; ok {
			multiplier = 2.0
		}
		for _, player := range players {
			total := totals[player]
			if ev, ok := led.Get(player, puzzle); ok {
				total.Points += ev.Result.Points() * multiplier
			} else {
				total.Missing = append(total.Missing, puzzle)
			}
			totals[player] = total
		}
	}
	for _, player := range players {
		if _, ok := totals[player]; !ok {
			totals[player] = Total{}
		}
	}
	return totals
}

// DoubleDays returns the ISO dates within the inclusive range that are
// double-point dates, in calendar order.
func DoubleDays(from, to time.Time, doubles map[string]struct{}) []string {
	var days []string
	for _, d := range season.Dates(from, to) {
		iso := season.ISO(d)
		if _, ok := doubles[iso]; ok {
			days = append(days, iso)
		}
	}
	return days
}

// Package season maps calendar dates to puzzle numbers and week ranges.
package season

import "time"

const isoDate = "2006-01-02"

// Calendar anchors the sequential puzzle numbering at a known
// (date, puzzle number) pair. Both directions are exact inverses for
// any integer offset; dates before the anchor map below the anchor
// puzzle without clamping.
type Calendar struct {
	StartDate   time.Time
	StartPuzzle int
}

// PuzzleForDate returns the puzzle number published on the given date.
func (c Calendar) PuzzleForDate(d time.Time) int {
	days := int(d.Sub(c.StartDate) / (24 * time.Hour))
	return c.StartPuzzle + days
}

// DateForPuzzle returns the date a puzzle number was published on.
func (c Calendar) DateForPuzzle(puzzle int) time.Time {
	return c.StartDate.AddDate(0, 0, puzzle-c.StartPuzzle)
}

// WeekRange returns the inclusive 7-day date range of a 1-based week
// counted from the season start.
func WeekRange(start time.Time, week int) (time.Time, time.Time) {
	from := start.AddDate(0, 0, (week-1)*7)
	return from, from.AddDate(0, 0, 6)
}

// Dates expands an inclusive date range into consecutive days.
func Dates(from, to time.Time) []time.Time {
	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ISO formats a date as YYYY-MM-DD.
func ISO(d time.Time) string {
	return d.Format(isoDate)
}

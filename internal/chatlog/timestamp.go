// Package chatlog extracts messages from WhatsApp chat exports.
package chatlog

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnparseableDate reports a date string that matched no template.
var ErrUnparseableDate = errors.New("unparseable date")

var (
	dayFirstLayouts   = []string{"2/1/2006", "2/1/06", "1/2/2006", "1/2/06"}
	monthFirstLayouts = []string{"1/2/2006", "1/2/06", "2/1/2006", "2/1/06"}

	timeLayouts = []string{"15:04:05", "15:04"}
)

// ParseTimestamp combines an export date string and time string into a
// UTC timestamp. Date templates are tried in order under the day-first
// or month-first policy; the first template that consumes the whole
// string wins, so an ambiguous date like 03/04/2026 is resolved by
// policy. Seconds are optional and default to zero.
func ParseTimestamp(dateText, timeText string, dayFirst bool) (time.Time, error) {
	layouts := monthFirstLayouts
	if dayFirst {
		layouts = dayFirstLayouts
	}

	var day time.Time
	parsed := false
	for _, layout := range layouts {
		d, err := time.ParseInLocation(layout, dateText, time.UTC)
		if err == nil {
			day = d
			parsed = true
			break
		}
	}
	if !parsed {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, dateText)
	}

	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, timeText, time.UTC)
		if err != nil {
			continue
		}
		return time.Date(day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%w: bad time %q", ErrUnparseableDate, timeText)
}

package season

import (
	"regexp"
	"strings"
	"time"
)

var doubleDateSplit = regexp.MustCompile(`[,\n]+`)

// ParseDoubleDates reads double-point dates from free text, one
// YYYY-MM-DD token per comma- or newline-separated field. Tokens that
// fail to parse are not errors; they are returned so the caller can
// warn about them.
func ParseDoubleDates(text string) (map[string]struct{}, []string) {
	dates := make(map[string]struct{})
	var invalid []string
	for _, part := range doubleDateSplit.Split(strings.TrimSpace(text), -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := time.ParseInLocation(isoDate, part, time.UTC); err != nil {
			invalid = append(invalid, part)
			continue
		}
		dates[part] = struct{}{}
	}
	return dates, invalid
}

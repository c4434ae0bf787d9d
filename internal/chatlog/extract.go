package chatlog

import (
	"regexp"
	"strings"

	"wordle-league/internal/model"
)

// Known export line shapes. The leading delimiter is distinct per
// shape, so a well-formed line can match at most one of them.
var linePatterns = []*regexp.Regexp{
	// "12/01/2026, 08:15 - Name: message"
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?) - (.*?): (.*)$`),
	// "[12/01/2026, 08:15] Name: message"
	regexp.MustCompile(`^\[(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2}(?::\d{2})?)\] (.*?): (.*)$`),
}

// ExtractMessage matches a raw export line against the known shapes and
// returns the parsed message. Lines that match no shape, or whose date
// fails every template, return ok=false and are meant to be skipped;
// continuation lines of multi-line messages fall out here too.
func ExtractMessage(line string, dayFirst bool) (model.ParsedMessage, bool) {
	for _, pattern := range linePatterns {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, err := ParseTimestamp(m[1], m[2], dayFirst)
		if err != nil {
			return model.ParsedMessage{}, false
		}
		return model.ParsedMessage{
			Sender:    strings.TrimSpace(m[3]),
			Timestamp: ts,
			Body:      strings.TrimSpace(m[4]),
		}, true
	}
	return model.ParsedMessage{}, false
}

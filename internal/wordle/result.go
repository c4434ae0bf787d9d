// Package wordle recognizes Wordle result tokens in chat messages.
package wordle

import (
	"regexp"
	"strconv"
	"strings"

	"wordle-league/internal/model"
)

// Token shape: "Wordle 1689 3/6" or "Wordle 1,689 X/6". The puzzle
// number may carry comma group separators; comma is never a decimal
// separator here, so it is stripped outright.
var resultPattern = regexp.MustCompile(`(?i)\bwordle\s+(\d[\d,]*)\s+([1-6X])/6`)

// ExtractResult scans a message body for the first Wordle result token
// and returns the result and puzzle number. Bodies without a token
// return ok=false; they are ordinary chatter, not an error.
func ExtractResult(body string) (model.Result, int, bool) {
	m := resultPattern.FindStringSubmatch(body)
	if m == nil {
		return model.Result{}, 0, false
	}
	puzzle, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || puzzle < 1 {
		return model.Result{}, 0, false
	}
	if strings.EqualFold(m[2], "X") {
		return model.FailedResult(), puzzle, true
	}
	guesses, err := strconv.Atoi(m[2])
	if err != nil {
		return model.Result{}, 0, false
	}
	result, err := model.Solved(guesses)
	if err != nil {
		return model.Result{}, 0, false
	}
	return result, puzzle, true
}

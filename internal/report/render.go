package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wordle-league/internal/model"
	"wordle-league/internal/season"
)

// Render produces the fixed chat-ready report block, one display line
// per element. The result is meant to be joined with newlines and
// pasted back into the group chat unchanged.
func Render(rep model.Report) []string {
	lines := []string{
		fmt.Sprintf("🏁 Wordle League — Week %d (%s to %s)",
			rep.Week, season.ISO(rep.WeekStart), season.ISO(rep.WeekEnd)),
	}
	if len(rep.DoubleDays) > 0 {
		lines = append(lines, "🍂 Double points days this week: "+strings.Join(rep.DoubleDays, ", "))
	}
	lines = append(lines, "", "📊 Weekly points")
	lines = append(lines, rankedLines(rep.WeekRanking)...)
	lines = append(lines, "", fmt.Sprintf("🏆 Season total (Weeks 1–%d)", rep.Week))
	lines = append(lines, rankedLines(rep.SeasonRanking)...)
	lines = append(lines, "", "❗ Missing submissions this week (0 points)")
	if len(rep.Missing) == 0 {
		lines = append(lines, "None 🎉")
		return lines
	}
	for _, entry := range rep.Missing {
		puzzles := make([]string, len(entry.Puzzles))
		for i, p := range entry.Puzzles {
			puzzles[i] = strconv.Itoa(p)
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", entry.Player, strings.Join(puzzles, ", ")))
	}
	return lines
}

func rankedLines(standings []model.Standing) []string {
	lines := make([]string, 0, len(standings))
	for i, s := range standings {
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, s.Player, FormatPoints(s.Points)))
	}
	return lines
}

// FormatPoints renders a point total as a bare integer when it is
// exactly whole, otherwise with one decimal place.
func FormatPoints(x float64) string {
	if math.Abs(x-math.Round(x)) < 1e-9 {
		return strconv.Itoa(int(math.Round(x)))
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

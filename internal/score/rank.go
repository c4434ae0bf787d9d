package score

import (
	"sort"
	"strings"

	"wordle-league/internal/model"
)

// Rank orders players by points descending, breaking ties by
// case-insensitive name. Distinct names never compare equal: names
// identical under case folding fall back to a byte compare, so the
// order is total and repeatable.
func Rank(players []string, totals map[string]Total) []model.Standing {
	standings := make([]model.Standing, 0, len(players))
	for _, player := range players {
		standings = append(standings, model.Standing{
			Player: player,
			Points: totals[player].Points,
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		a, b := strings.ToLower(standings[i].Player), strings.ToLower(standings[j].Player)
		if a != b {
			return a < b
		}
		return standings[i].Player < standings[j].Player
	})
	return standings
}

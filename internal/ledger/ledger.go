// Package ledger keeps first submissions per player and puzzle.
package ledger

import (
	"sort"
	"strings"

	"wordle-league/internal/model"
)

type key struct {
	player string
	puzzle int
}

// Ledger stores at most one result event per (player, puzzle) pair,
// keeping the earliest-timestamped submission. It only grows during a
// run; there is no delete.
type Ledger struct {
	events  map[key]model.ResultEvent
	players map[string]struct{}
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		events:  make(map[key]model.ResultEvent),
		players: make(map[string]struct{}),
	}
}

// Record inserts the event unless an earlier or equal submission for
// the same player and puzzle is already present. Later duplicates are
// discarded; an earlier duplicate replaces the stored one, so insertion
// order does not matter.
func (l *Ledger) Record(ev model.ResultEvent) {
	l.players[ev.Player] = struct{}{}
	k := key{player: ev.Player, puzzle: ev.Puzzle}
	existing, ok := l.events[k]
	if ok && !existing.Timestamp.After(ev.Timestamp) {
		return
	}
	l.events[k] = ev
}

// Get returns the stored event for a player and puzzle, if any.
func (l *Ledger) Get(player string, puzzle int) (model.ResultEvent, bool) {
	ev, ok := l.events[key{player: player, puzzle: puzzle}]
	return ev, ok
}

// Players returns every player seen, sorted case-insensitively.
func (l *Ledger) Players() []string {
	players := make([]string, 0, len(l.players))
	for p := range l.players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		a, b := strings.ToLower(players[i]), strings.ToLower(players[j])
		if a == b {
			return players[i] < players[j]
		}
		return a < b
	})
	return players
}

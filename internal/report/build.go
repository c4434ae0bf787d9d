// Package report builds and renders league leaderboards.
package report

import (
	"errors"
	"fmt"
	"strings"

	"wordle-league/internal/chatlog"
	"wordle-league/internal/ledger"
	"wordle-league/internal/model"
	"wordle-league/internal/score"
	"wordle-league/internal/season"
	"wordle-league/internal/wordle"
)

// ErrInvalidConfig reports a structurally invalid season config.
var ErrInvalidConfig = errors.New("invalid season config")

// Build runs the full pipeline: extract result events from the raw
// export text, keep first submissions, and aggregate the report week
// and the season-to-date range into ranked standings. It is a pure
// function of its inputs; malformed lines are skipped, only a bad
// config is an error.
func Build(rawText string, cfg model.SeasonConfig) (model.Report, error) {
	if err := validateConfig(cfg); err != nil {
		return model.Report{}, err
	}

	led := ledger.New()
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimRight(line, "\r")
		msg, ok := chatlog.ExtractMessage(line, cfg.DayFirst)
		if !ok {
			continue
		}
		result, puzzle, ok := wordle.ExtractResult(msg.Body)
		if !ok {
			continue
		}
		led.Record(model.ResultEvent{
			Player:    msg.Sender,
			Puzzle:    puzzle,
			Result:    result,
			Timestamp: msg.Timestamp,
		})
	}

	cal := season.Calendar{StartDate: cfg.StartDate, StartPuzzle: cfg.StartPuzzle}
	players := led.Players()

	weekFrom, weekTo := season.WeekRange(cfg.StartDate, cfg.ReportWeek)
	// Season standings are cumulative: weeks 1 through the report week.
	weekTotals := score.Aggregate(led, players, weekFrom, weekTo, cfg.DoubleDates, cal)
	seasonTotals := score.Aggregate(led, players, cfg.StartDate, weekTo, cfg.DoubleDates, cal)

	var missing []model.MissingEntry
	for _, player := range players {
		if puzzles := weekTotals[player].Missing; len(puzzles) > 0 {
			missing = append(missing, model.MissingEntry{Player: player, Puzzles: puzzles})
		}
	}

	return model.Report{
		Week:          cfg.ReportWeek,
		WeekStart:     weekFrom,
		WeekEnd:       weekTo,
		DoubleDays:    score.DoubleDays(weekFrom, weekTo, cfg.DoubleDates),
		WeekRanking:   score.Rank(players, weekTotals),
		SeasonRanking: score.Rank(players, seasonTotals),
		Missing:       missing,
	}, nil
}

func validateConfig(cfg model.SeasonConfig) error {
	if cfg.StartDate.IsZero() {
		return fmt.Errorf("%w: season start date is not set", ErrInvalidConfig)
	}
	if cfg.StartPuzzle < 1 {
		return fmt.Errorf("%w: start puzzle must be >= 1, got %d", ErrInvalidConfig, cfg.StartPuzzle)
	}
	if cfg.Weeks < 1 {
		return fmt.Errorf("%w: season length must be >= 1 week, got %d", ErrInvalidConfig, cfg.Weeks)
	}
	if cfg.ReportWeek < 1 || cfg.ReportWeek > cfg.Weeks {
		return fmt.Errorf("%w: report week %d outside season of %d weeks", ErrInvalidConfig, cfg.ReportWeek, cfg.Weeks)
	}
	return nil
}

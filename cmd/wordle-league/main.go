// Package main provides the CLI entrypoint for wordle-league.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wordle-league/internal/config"
	"wordle-league/internal/model"
	"wordle-league/internal/report"
	"wordle-league/internal/season"
)

const (
	defaultWeeks = 10
	defaultWeek  = 1
)

var (
	scoreStart    string
	scorePuzzle   int
	scoreWeeks    int
	scoreWeek     int
	scoreDayFirst bool
	scoreDouble   string
	scorePlain    bool
)

var (
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordle-league <chat-export.txt>",
		Short:         "Score a Wordle league from a WhatsApp chat export",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runScoreCmd,
	}

	rootCmd.Flags().StringVar(&scoreStart, "start", "", "season start date, week 1 day 1 (YYYY-MM-DD)")
	rootCmd.Flags().IntVar(&scorePuzzle, "puzzle", 0, "Wordle puzzle number on the start date")
	rootCmd.Flags().IntVar(&scoreWeeks, "weeks", defaultWeeks, "season length in weeks")
	rootCmd.Flags().IntVar(&scoreWeek, "week", defaultWeek, "week to report")
	rootCmd.Flags().BoolVar(&scoreDayFirst, "day-first", true, "export uses day/month date order")
	rootCmd.Flags().StringVar(&scoreDouble, "double", "", "double points dates (YYYY-MM-DD), comma separated")
	rootCmd.Flags().BoolVar(&scorePlain, "plain", false, "print only the chat-ready block")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "start", &scoreStart, fileCfg.Season.Start)
	applyIntConfig(cmd, "puzzle", &scorePuzzle, fileCfg.Season.Puzzle)
	applyIntConfig(cmd, "weeks", &scoreWeeks, fileCfg.Season.Weeks)
	applyBoolConfig(cmd, "day-first", &scoreDayFirst, fileCfg.Season.DayFirst)
	applyStringConfig(cmd, "double", &scoreDouble, fileCfg.Season.DoubleDates)

	if scoreStart == "" {
		return fmt.Errorf("--start is required (or set start in %s)", config.DefaultConfigPath())
	}
	startDate, err := time.ParseInLocation("2006-01-02", scoreStart, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid --start value: %w", err)
	}
	if scorePuzzle <= 0 {
		return fmt.Errorf("--puzzle is required (or set puzzle in %s)", config.DefaultConfigPath())
	}

	doubleDates, invalid := season.ParseDoubleDates(scoreDouble)
	if len(invalid) > 0 {
		logErrln(warnStyle.Render(
			"Ignoring invalid double-point dates (should be YYYY-MM-DD): " + strings.Join(invalid, ", ")))
	}

	rawText, err := readExport(args[0])
	if err != nil {
		return err
	}

	cfg := model.SeasonConfig{
		StartDate:   startDate,
		StartPuzzle: scorePuzzle,
		Weeks:       scoreWeeks,
		ReportWeek:  scoreWeek,
		DayFirst:    scoreDayFirst,
		DoubleDates: doubleDates,
	}
	rep, err := report.Build(rawText, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, strings.Join(report.Render(rep), "\n")); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !scorePlain && term.IsTerminal(int(os.Stdout.Fd())) {
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		for _, line := range report.RenderTables(rep) {
			if _, err := fmt.Fprintln(out, headerStyle.Render(line)); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
	}

	logErrln("Rules: first submission only; late submissions allowed; X/6 scores 0.5; double dates score x2.")
	return nil
}

// readExport loads the chat export as UTF-8, replacing invalid byte
// sequences instead of failing; exports pass through enough devices
// that mojibake is expected.
func readExport(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read chat export: %w", err)
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordle-league configuration
# Uncomment a value to enable it. CLI flags override config values.

[season]
# start = "2026-01-12"      # Season start date, week 1 day 1 (YYYY-MM-DD)
# puzzle = 1689             # Wordle puzzle number on the start date
# weeks = %d                # Season length in weeks
# day-first = true          # Export uses day/month date order
# double-dates = ""         # Double points dates, comma separated
`,
		defaultWeeks,
	)
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

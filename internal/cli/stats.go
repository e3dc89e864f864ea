package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/Flyrell/moodchart/internal/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

const notePreviewWidth = 60

func statsCmd() *cobra.Command {
	return LeafCommand{
		Use:      "stats",
		Short:    "Print best and worst months and the longest notes",
		Args:     cobra.NoArgs,
		StrFlags: inputFlags,
		IntFlags: rankFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return runStats(cmd, cfg, logger)
		},
	}.Build()
}

func runStats(cmd *cobra.Command, cfg *Config, logger *slog.Logger) error {
	entries, err := loadEntries(cmd, cfg, logger)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w, Info(periodLabel(entries)))

	printMonths(w, "Top Moods", stats.TopMonths(entries, cfg.TopMonths))
	printMonths(w, "Worst Moods", stats.WorstMonths(entries, cfg.TopMonths))
	printNotes(w, "Top Longest Notes", stats.LongestNotes(entries, cfg.LongestNotes))
	return nil
}

func printMonths(w io.Writer, title string, months []stats.MonthScore) {
	rows := make([][]string, len(months))
	for i, m := range months {
		rows[i] = []string{m.Label(), strconv.FormatFloat(m.Mean, 'f', 2, 64), strconv.Itoa(m.Count)}
	}
	printTable(w, title, []string{"Month", "Mean", "Entries"}, rows)
}

func printNotes(w io.Writer, title string, entries []mood.Entry) {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Date.Format(mood.DateLayout), strconv.Itoa(e.NoteLength()), preview(e.Note, notePreviewWidth)}
	}
	printTable(w, title, []string{"Date", "Length", "Note"}, rows)
}

func printTable(w io.Writer, title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(silentStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)

	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", Primary(title), t.Render())
}

// preview flattens a note onto one line and cuts it to width runes.
func preview(note string, width int) string {
	flat := strings.Join(strings.Fields(note), " ")
	runes := []rune(flat)
	if len(runes) <= width {
		return flat
	}
	return string(runes[:width-1]) + "…"
}

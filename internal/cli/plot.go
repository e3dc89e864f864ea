package cli

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Flyrell/moodchart/internal/chart"
	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/Flyrell/moodchart/internal/report"
	"github.com/Flyrell/moodchart/internal/stringutil"
	"github.com/spf13/cobra"
)

func plotCmd() *cobra.Command {
	return LeafCommand{
		Use:   "plot",
		Short: "Render the mood charts",
		Long: "Reads a JSON array of journal entries and renders six charts: mood trend, " +
			"top and worst months, longest notes, note length trend and keyword trend.",
		Args: cobra.NoArgs,
		StrFlags: append([]StringFlag{
			{Name: keyOut, Shorthand: "o", Usage: "output directory", Default: defaultOut},
			{Name: keyFormat, Usage: "image format (png, svg)", Default: string(chart.FormatPNG)},
			{Name: keyPDF, Usage: "also bundle all charts into this PDF file (png only)"},
		}, inputFlags...),
		IntFlags: append([]IntFlag{
			{Name: keyWidth, Usage: "chart width in pixels", Default: defaultWidth},
			{Name: keyHeight, Usage: "chart height in pixels", Default: defaultHeight},
			{Name: keyTrendWindow, Usage: "mood trend smoothing half-width", Default: report.DefaultSettings().TrendWindow},
			{Name: keyNoteWindow, Usage: "note length smoothing half-width", Default: report.DefaultSettings().NoteWindow},
			{Name: keyKeywordWindow, Usage: "keyword trend smoothing half-width", Default: report.DefaultSettings().KeywordWindow},
		}, rankFlags...),
		SliceFlags: []StringSliceFlag{
			{Name: keyKeyword, Usage: "keyword to count in notes (repeatable)", Default: report.DefaultSettings().Keywords},
		},
		BoolFlags: []BoolFlag{
			{Name: keyOpen, Usage: "open each chart in the system viewer"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return runPlot(cmd, cfg, logger, openFile)
		},
	}.Build()
}

// opener opens a rendered file for viewing and waits for the viewer command.
type opener func(ctx context.Context, path string) error

func runPlot(cmd *cobra.Command, cfg *Config, logger *slog.Logger, open opener) error {
	renderer, err := chart.NewRenderer(cfg.ChartOptions())
	if err != nil {
		return err
	}
	if cfg.PDF != "" && renderer.Format() != chart.FormatPNG {
		return fmt.Errorf("--%s requires --%s png", keyPDF, keyFormat)
	}

	entries, err := loadEntries(cmd, cfg, logger)
	if err != nil {
		return err
	}

	charts, err := report.Build(entries, cfg.Settings())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var (
		paths   []string
		figures []chart.Figure
	)
	for i, c := range charts {
		buf := new(bytes.Buffer)
		if err := renderer.Render(buf, c); err != nil {
			return err
		}

		name := fmt.Sprintf("%02d-%s.%s", i+1, stringutil.Slugify(c.ChartTitle()), renderer.Extension())
		path := filepath.Join(cfg.Out, name)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug("chart written", "title", c.ChartTitle(), "path", path, "bytes", buf.Len())

		paths = append(paths, path)
		figures = append(figures, chart.Figure{Title: c.ChartTitle(), PNG: buf.Bytes()})
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Primary("wrote"), path)
	}

	if cfg.PDF != "" {
		opts := renderer.Options()
		rep := chart.Report{
			Title:    "Mood Journal",
			Subtitle: periodLabel(entries),
			Figures:  figures,
		}
		if err := chart.RenderPDF(rep, float64(opts.Height)/float64(opts.Width), cfg.PDF); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Primary("exported"), cfg.PDF)
	}

	if cfg.Open {
		for _, path := range paths {
			if err := open(cmd.Context(), path); err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
		}
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent(fmt.Sprintf("%d entries, %d charts", len(entries), len(charts))))
	return nil
}

// periodLabel describes the date span of sorted entries.
func periodLabel(entries []mood.Entry) string {
	first := entries[0].Date.Format(mood.DateLayout)
	last := entries[len(entries)-1].Date.Format(mood.DateLayout)
	return fmt.Sprintf("%s to %s, %d entries", first, last, len(entries))
}

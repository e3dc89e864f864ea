package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input: pipe a JSON array of entries on stdin or use --input")

// loadEntries reads the journal from --input or stdin, sorts it by date and
// applies the configured filters. An empty result is an error.
func loadEntries(cmd *cobra.Command, cfg *Config, logger *slog.Logger) ([]mood.Entry, error) {
	filter, err := cfg.Filter()
	if err != nil {
		return nil, err
	}

	entries, err := readEntries(cmd.InOrStdin(), cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Debug("entries decoded", "count", len(entries))

	entries = filter.Apply(entries)
	if !filter.IsZero() {
		logger.Debug("entries filtered", "count", len(entries),
			"since", cfg.Since, "until", cfg.Until, "category", cfg.Category)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to chart")
	}
	return entries, nil
}

func readEntries(stdin io.Reader, path string) ([]mood.Entry, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		return mood.Decode(f)
	}

	if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, errNoInput
	}
	return mood.Decode(stdin)
}

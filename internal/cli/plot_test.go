package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedCharts = []string{
	"01-mood-in-time",
	"02-top-moods",
	"03-worst-moods",
	"04-top-longest-notes",
	"05-note-length-in-time",
	"06-days-containing-words-word",
}

func TestPlot_WritesAllCharts(t *testing.T) {
	out := t.TempDir()

	stdout, _, err := execute(t, sampleJournal, "plot", "--out", out, "--width", "400", "--height", "200")
	require.NoError(t, err)

	for _, name := range expectedCharts {
		path := filepath.Join(out, name+".png")
		data, err := os.ReadFile(path)
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), name)
		assert.Contains(t, stdout, path)
	}
	assert.Contains(t, stdout, "5 entries, 6 charts")
}

func TestPlot_SVG(t *testing.T) {
	out := t.TempDir()

	_, _, err := execute(t, sampleJournal, "plot", "--out", out, "--format", "svg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "01-mood-in-time.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPlot_KeywordsInFileName(t *testing.T) {
	out := t.TempDir()

	_, _, err := execute(t, sampleJournal, "plot", "--out", out, "--keyword", "Swim", "--keyword", "lake")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "06-days-containing-words-lake-swim.png"))
	assert.NoError(t, err)
}

func TestPlot_InputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "journal.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleJournal), 0644))
	out := filepath.Join(dir, "charts")

	_, _, err := execute(t, "", "plot", "-i", input, "-o", out)
	require.NoError(t, err)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, len(expectedCharts))
}

func TestPlot_PDF(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "mood.pdf")

	stdout, _, err := execute(t, sampleJournal, "plot", "--out", filepath.Join(dir, "charts"), "--pdf", pdf)
	require.NoError(t, err)

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Contains(t, stdout, pdf)
}

func TestPlot_PDFRequiresPNG(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, sampleJournal, "plot", "--out", dir, "--format", "svg", "--pdf", filepath.Join(dir, "x.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--pdf requires --format png")
}

func TestPlot_Filters(t *testing.T) {
	out := t.TempDir()

	stdout, _, err := execute(t, sampleJournal, "plot", "--out", out, "--since", "2024-02", "--category", "DAILY")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 entries, 6 charts")
}

func TestPlot_Errors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{"empty journal", `[]`, nil, "no entries to chart"},
		{"malformed date", `[{"date": "2024/01/01", "scores": [1]}]`, nil, "entry 0: invalid date"},
		{"missing scores", `[{"date": "2024-01-01"}]`, nil, "entry 0: missing scores"},
		{"not json", `hello`, nil, "decoding entries"},
		{"filter excludes all", sampleJournal, []string{"--category", "yearly"}, "no entries to chart"},
		{"bad since", sampleJournal, []string{"--since", "soon"}, "invalid --since"},
		{"until before since", sampleJournal, []string{"--since", "2024-02-01", "--until", "2024-01-01"}, "--until must not be before --since"},
		{"bad format", sampleJournal, []string{"--format", "gif"}, "format: gif does not satisfy oneof=png svg"},
		{"tiny width", sampleJournal, []string{"--width", "10"}, "width: 10 does not satisfy gte=200"},
		{"negative window", sampleJournal, []string{"--trend-window", "-1"}, "trend-window"},
		{"zero top months", sampleJournal, []string{"--top-months", "0"}, "top-months"},
		{"missing input file", "", []string{"--input", "/does/not/exist.json"}, "opening input"},
		{"unexpected argument", sampleJournal, []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"plot", "--out", t.TempDir()}, tt.args...)
			_, _, err := execute(t, tt.stdin, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPlot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "from-config")
	cfgPath := filepath.Join(dir, "moodchart.yaml")
	cfg := "out: " + out + "\nformat: svg\nkeyword:\n  - swim\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	_, _, err := execute(t, sampleJournal, "plot", "--config", cfgPath)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "06-days-containing-words-swim.svg"))
	assert.NoError(t, err)
}

func TestPlot_FlagOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "moodchart.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: svg\n"), 0644))
	out := filepath.Join(dir, "charts")

	_, _, err := execute(t, sampleJournal, "plot", "--config", cfgPath, "--out", out, "--format", "png")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "01-mood-in-time.png"))
	assert.NoError(t, err)
}

func TestPlot_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, sampleJournal, "plot", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestPlot_EnvOverridesDefault(t *testing.T) {
	out := t.TempDir()
	t.Setenv("MOODCHART_FORMAT", "svg")
	t.Setenv("MOODCHART_OUT", out)

	_, _, err := execute(t, sampleJournal, "plot")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(out, "03-worst-moods.svg"))
	assert.NoError(t, err)
}

func TestPlot_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, sampleJournal, "plot", "--out", t.TempDir(), "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "entries decoded")
	assert.Contains(t, stderr, "chart written")
}

func TestRunPlot_OpensEveryChart(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(sampleJournal))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetContext(context.Background())

	cfg := &Config{
		Out:           t.TempDir(),
		Format:        "png",
		Width:         400,
		Height:        200,
		TrendWindow:   60,
		NoteWindow:    14,
		KeywordWindow: 14,
		TopMonths:     5,
		LongestNotes:  10,
		Keywords:      []string{"word"},
		Open:          true,
	}

	var opened []string
	stub := func(_ context.Context, path string) error {
		opened = append(opened, filepath.Base(path))
		return nil
	}

	require.NoError(t, runPlot(cmd, cfg, newLogger(new(bytes.Buffer), "warn"), stub))

	require.Len(t, opened, len(expectedCharts))
	for i, name := range expectedCharts {
		assert.Equal(t, name+".png", opened[i])
	}
}

// Package report turns a mood journal into the standard chart set.
package report

import (
	"fmt"
	"strings"

	"github.com/Flyrell/moodchart/internal/chart"
	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/Flyrell/moodchart/internal/stats"
	"github.com/Flyrell/moodchart/internal/stringutil"
)

// Settings tune the windows and list sizes of the chart set.
type Settings struct {
	TrendWindow   int
	NoteWindow    int
	KeywordWindow int
	TopMonths     int
	LongestNotes  int
	Keywords      []string
}

// DefaultSettings returns the standard chart set configuration.
func DefaultSettings() Settings {
	return Settings{
		TrendWindow:   stats.TrendWindow,
		NoteWindow:    stats.NoteWindow,
		KeywordWindow: stats.KeywordWindow,
		TopMonths:     5,
		LongestNotes:  10,
		Keywords:      []string{"word"},
	}
}

// Build returns the six charts in display order. entries must be sorted by
// date and non-empty.
func Build(entries []mood.Entry, s Settings) ([]chart.Chart, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to chart")
	}

	moodTrend, err := MoodInTime(entries, s.TrendWindow)
	if err != nil {
		return nil, err
	}
	noteTrend, err := NoteLengthInTime(entries, s.NoteWindow)
	if err != nil {
		return nil, err
	}
	wordTrend, err := DaysContainingWords(entries, s.Keywords, s.KeywordWindow)
	if err != nil {
		return nil, err
	}

	return []chart.Chart{
		moodTrend,
		TopMoods(entries, s.TopMonths),
		WorstMoods(entries, s.TopMonths),
		TopLongestNotes(entries, s.LongestNotes),
		noteTrend,
		wordTrend,
	}, nil
}

// MoodInTime charts the smoothed score over time.
func MoodInTime(entries []mood.Entry, window int) (chart.LineChart, error) {
	points, err := stats.SmoothScores(entries, window)
	if err != nil {
		return chart.LineChart{}, fmt.Errorf("mood trend: %w", err)
	}
	return chart.LineChart{
		Title:  "Mood in Time",
		Legend: "Mood",
		XLabel: "Date",
		YLabel: "Score",
		Points: points,
		Ticks:  stats.MonthTicks(points),
	}, nil
}

// TopMoods charts the n months with the best mean score.
func TopMoods(entries []mood.Entry, n int) chart.BarChart {
	return monthBars("Top Moods", stats.TopMonths(entries, n))
}

// WorstMoods charts the n months with the worst mean score.
func WorstMoods(entries []mood.Entry, n int) chart.BarChart {
	return monthBars("Worst Moods", stats.WorstMonths(entries, n))
}

func monthBars(title string, months []stats.MonthScore) chart.BarChart {
	bars := make([]chart.Bar, len(months))
	for i, m := range months {
		bars[i] = chart.Bar{Label: m.Label(), Value: m.Mean}
	}
	return chart.BarChart{
		Title:  title,
		XLabel: "Month",
		YLabel: "Score",
		Bars:   bars,
	}
}

// TopLongestNotes charts the n longest notes by length.
func TopLongestNotes(entries []mood.Entry, n int) chart.BarChart {
	longest := stats.LongestNotes(entries, n)
	bars := make([]chart.Bar, len(longest))
	for i, e := range longest {
		bars[i] = chart.Bar{Label: e.Date.Format(mood.DateLayout), Value: float64(e.NoteLength())}
	}
	return chart.BarChart{
		Title:        "Top Longest Notes",
		XLabel:       "Date",
		YLabel:       "Length",
		Bars:         bars,
		RotateLabels: true,
	}
}

// NoteLengthInTime charts the smoothed note length over time.
func NoteLengthInTime(entries []mood.Entry, window int) (chart.LineChart, error) {
	points, err := stats.SmoothNoteLengths(entries, window)
	if err != nil {
		return chart.LineChart{}, fmt.Errorf("note length trend: %w", err)
	}
	return chart.LineChart{
		Title:  "Note Length in Time",
		Legend: "Note Length",
		XLabel: "Date",
		YLabel: "Length",
		Points: points,
		Ticks:  stats.MonthTicks(points),
	}, nil
}

// DaysContainingWords charts the smoothed number of keywords found per entry.
func DaysContainingWords(entries []mood.Entry, keywords []string, window int) (chart.LineChart, error) {
	points, err := stats.KeywordTrend(entries, keywords, window)
	if err != nil {
		return chart.LineChart{}, fmt.Errorf("keyword trend: %w", err)
	}
	return chart.LineChart{
		Title:  "Days Containing Words: " + strings.Join(stringutil.FoldWords(keywords), ", "),
		Legend: "Word Count",
		XLabel: "Date",
		YLabel: "Count",
		Points: points,
		Ticks:  stats.MonthTicks(points),
	}, nil
}

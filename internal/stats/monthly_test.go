package stats

import (
	"testing"
	"time"

	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMonths() []mood.Entry {
	return []mood.Entry{
		{Date: date(2023, 12, 30), Score: 2},
		{Date: date(2023, 12, 31), Score: 4}, // Dec: 3
		{Date: date(2024, 1, 5), Score: 5},
		{Date: date(2024, 1, 6), Score: 5}, // Jan: 5
		{Date: date(2024, 2, 1), Score: 1}, // Feb: 1
		{Date: date(2024, 3, 1), Score: 3}, // Mar: 3
	}
}

func TestGroupByMonth(t *testing.T) {
	entries := sampleMonths()
	months := GroupByMonth(entries)

	require.Len(t, months, 4)
	assert.Equal(t, 2023, months[0].Year)
	assert.Equal(t, time.December, months[0].Month)
	assert.InDelta(t, 3.0, months[0].Mean, 1e-9)
	assert.Equal(t, 2, months[0].Count)
	assert.Equal(t, "2024-01", months[1].Label())
	assert.InDelta(t, 5.0, months[1].Mean, 1e-9)

	total := 0
	for _, m := range months {
		total += m.Count
	}
	assert.Equal(t, len(entries), total)
}

func TestGroupByMonth_SameMonthDifferentYears(t *testing.T) {
	entries := []mood.Entry{
		{Date: date(2023, 5, 1), Score: 1},
		{Date: date(2024, 5, 1), Score: 9},
	}
	months := GroupByMonth(entries)
	require.Len(t, months, 2)
	assert.Equal(t, "2023-05", months[0].Label())
	assert.Equal(t, "2024-05", months[1].Label())
}

func TestGroupByMonth_Empty(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil))
}

func labels(months []MonthScore) []string {
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.Label()
	}
	return out
}

func TestTopMonths(t *testing.T) {
	got := TopMonths(sampleMonths(), 3)
	// Dec and Mar tie at 3; Dec was seen first.
	assert.Equal(t, []string{"2024-01", "2023-12", "2024-03"}, labels(got))
}

func TestWorstMonths(t *testing.T) {
	got := WorstMonths(sampleMonths(), 3)
	assert.Equal(t, []string{"2024-02", "2023-12", "2024-03"}, labels(got))
}

func TestRankings_Truncate(t *testing.T) {
	entries := sampleMonths()
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{4, 4},
		{10, 4},
		{-2, 0},
	}
	for _, tt := range tests {
		assert.Len(t, TopMonths(entries, tt.n), tt.want)
		assert.Len(t, WorstMonths(entries, tt.n), tt.want)
	}
}

func TestRankings_Sorted(t *testing.T) {
	top := TopMonths(sampleMonths(), 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Mean, top[i].Mean)
	}
	worst := WorstMonths(sampleMonths(), 10)
	for i := 1; i < len(worst); i++ {
		assert.LessOrEqual(t, worst[i-1].Mean, worst[i].Mean)
	}
}

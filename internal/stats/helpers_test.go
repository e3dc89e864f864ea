package stats

import (
	"time"

	"github.com/Flyrell/moodchart/internal/mood"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daily builds consecutive daily entries starting at start, one per score.
func daily(start time.Time, scores ...int) []mood.Entry {
	entries := make([]mood.Entry, len(scores))
	for i, s := range scores {
		entries[i] = mood.Entry{Date: start.AddDate(0, 0, i), Score: s}
	}
	return entries
}

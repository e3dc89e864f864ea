package stats

import (
	"sort"
	"strings"

	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/Flyrell/moodchart/internal/stringutil"
)

// LongestNotes returns up to n entries with the longest notes, longest first.
// Entries with equal note length keep their relative order.
func LongestNotes(entries []mood.Entry, n int) []mood.Entry {
	sorted := make([]mood.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].NoteLength() > sorted[j].NoteLength()
	})
	return take(sorted, n)
}

// KeywordCounts returns, for every entry, how many of the given keywords occur
// in its note. Matching is case-insensitive and by substring; each keyword
// counts at most once per entry.
func KeywordCounts(entries []mood.Entry, keywords []string) []int {
	words := stringutil.FoldWords(keywords)
	counts := make([]int, len(entries))
	for i, e := range entries {
		note := strings.ToLower(e.Note)
		for _, w := range words {
			if strings.Contains(note, w) {
				counts[i]++
			}
		}
	}
	return counts
}

// KeywordTrend smooths per-entry keyword counts and aligns them to entry dates.
func KeywordTrend(entries []mood.Entry, keywords []string, k int) ([]Point, error) {
	smoothed, err := SmoothCounts(KeywordCounts(entries, keywords), k)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(entries))
	for i, e := range entries {
		points[i] = Point{Date: e.Date, Value: smoothed[i]}
	}
	return points, nil
}

package stats

import (
	"sort"
	"time"

	"github.com/Flyrell/moodchart/internal/mood"
)

// MonthScore holds the mean score of all entries in one calendar month.
type MonthScore struct {
	Year  int
	Month time.Month
	Mean  float64
	Count int
}

// Label formats the month as YYYY-MM.
func (m MonthScore) Label() string {
	return mood.MonthKey{Year: m.Year, Month: m.Month}.String()
}

// GroupByMonth groups entries by (year, month) in the order the months are
// first seen and computes the mean score of each group.
func GroupByMonth(entries []mood.Entry) []MonthScore {
	index := make(map[mood.MonthKey]int)
	var sums []int
	var months []MonthScore

	for _, e := range entries {
		key := e.Key()
		i, ok := index[key]
		if !ok {
			i = len(months)
			index[key] = i
			months = append(months, MonthScore{Year: key.Year, Month: key.Month})
			sums = append(sums, 0)
		}
		months[i].Count++
		sums[i] += e.Score
	}

	for i := range months {
		months[i].Mean = float64(sums[i]) / float64(months[i].Count)
	}
	return months
}

// TopMonths returns up to n months with the highest mean score, best first.
// Ties keep the order in which the months were first seen.
func TopMonths(entries []mood.Entry, n int) []MonthScore {
	months := GroupByMonth(entries)
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Mean > months[j].Mean
	})
	return take(months, n)
}

// WorstMonths returns up to n months with the lowest mean score, worst first.
func WorstMonths(entries []mood.Entry, n int) []MonthScore {
	months := GroupByMonth(entries)
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Mean < months[j].Mean
	})
	return take(months, n)
}

func take[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

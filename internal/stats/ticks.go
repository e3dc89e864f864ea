package stats

import (
	"time"

	"github.com/Flyrell/moodchart/internal/mood"
)

// MonthTick marks the first date seen in a calendar month.
type MonthTick struct {
	Date  time.Time
	Label string
}

// MonthTicks returns one tick per distinct (year, month) among the points,
// placed at the first date encountered for that month.
func MonthTicks(points []Point) []MonthTick {
	seen := make(map[mood.MonthKey]bool)
	var ticks []MonthTick
	for _, p := range points {
		key := mood.MonthKey{Year: p.Date.Year(), Month: p.Date.Month()}
		if seen[key] {
			continue
		}
		seen[key] = true
		ticks = append(ticks, MonthTick{Date: p.Date, Label: key.String()})
	}
	return ticks
}

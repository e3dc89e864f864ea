package mood

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a filter date relative to the current time.
func ParseDate(s string) (time.Time, error) {
	return parseDate(s, time.Now())
}

// parseDate parses a filter date relative to now.
// Supports: "today", "yesterday", "2024-01-15", "2024-01", "jan 2024",
// "january 2024". Month-only forms resolve to the first day of the month.
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "today":
		return truncateToDay(now), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	layouts := []string{
		DateLayout,
		"2006-01",
		"Jan 2006",
		"January 2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package mood

import "time"

// DateLayout is the only accepted layout for an entry's date.
const DateLayout = "2006-01-02"

// Entry represents a single mood journal record.
type Entry struct {
	Category string
	Date     time.Time
	Score    int
	Note     string
}

// NoteLength returns the length of the note in runes.
func (e Entry) NoteLength() int {
	return len([]rune(e.Note))
}

// MonthKey identifies the calendar month an entry falls into.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Key returns the (year, month) the entry belongs to.
func (e Entry) Key() MonthKey {
	return MonthKey{Year: e.Date.Year(), Month: e.Date.Month()}
}

// String formats the key as YYYY-MM.
func (k MonthKey) String() string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

package mood

import (
	"strings"
	"time"
)

// Filter narrows a sorted entry list. Zero values disable a criterion.
type Filter struct {
	Since    time.Time
	Until    time.Time
	Category string
}

// IsZero reports whether the filter would keep every entry.
func (f Filter) IsZero() bool {
	return f.Since.IsZero() && f.Until.IsZero() && f.Category == ""
}

// Apply returns the entries matching f, preserving order. Since and Until are
// inclusive; Category matches case-insensitively.
func (f Filter) Apply(entries []Entry) []Entry {
	if f.IsZero() {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !f.Since.IsZero() && e.Date.Before(f.Since) {
			continue
		}
		if !f.Until.IsZero() && e.Date.After(f.Until) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

package stringutil

import (
	"sort"
	"strings"
)

// FoldWords lowercases and trims the given words, drops blanks and
// duplicates, and returns them sorted.
func FoldWords(words []string) []string {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

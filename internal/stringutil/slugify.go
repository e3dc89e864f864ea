package stringutil

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// maxSlugLen keeps generated file names short.
const maxSlugLen = 48

// Slugify converts a chart title to a file-name-friendly slug.
// It lowercases the input, replaces runs of non-alphanumeric characters with
// a single hyphen, trims leading/trailing hyphens and caps the length.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

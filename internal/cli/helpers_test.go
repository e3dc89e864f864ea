package cli

import (
	"bytes"
	"strings"
	"testing"
)

const sampleJournal = `[
	{"type": "daily", "date": "2024-02-02", "scores": [2], "notes": "Rainy. Stayed in and read a word or two."},
	{"type": "daily", "date": "2024-01-01", "scores": [4, 1], "notes": "New year walk"},
	{"type": "daily", "date": "2024-01-15", "scores": [5], "notes": "Great day at the lake, long swim, good food and better company"},
	{"type": "weekly", "date": "2024-02-20", "scores": [3], "notes": ""},
	{"type": "daily", "date": "2024-03-03", "scores": [1], "notes": "Sick"}
]`

// execute runs a fresh root command with the given stdin and arguments.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

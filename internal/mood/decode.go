package mood

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Record is the raw JSON shape of a journal entry.
type Record struct {
	Type   string        `json:"type"`
	Date   string        `json:"date" validate:"required,datetime=2006-01-02"`
	Scores []json.Number `json:"scores" validate:"required,min=1"`
	Notes  string        `json:"notes"`
}

var validate = validator.New()

// Decode reads a JSON array of records from r and returns the parsed entries
// sorted ascending by date.
func Decode(r io.Reader) ([]Entry, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding entries: %w", err)
	}
	return Parse(records)
}

// Parse converts records into entries sorted ascending by date. The first
// malformed record fails the whole batch.
func Parse(records []Record) ([]Entry, error) {
	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		e, err := rec.Entry()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	SortByDate(entries)
	return entries, nil
}

// Entry converts a single record. Only the first score is kept.
func (rec Record) Entry() (Entry, error) {
	if err := validate.Struct(rec); err != nil {
		return Entry{}, validationError(err)
	}

	date, err := time.Parse(DateLayout, rec.Date)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid date %q: %w", rec.Date, err)
	}

	score, err := parseScore(rec.Scores[0])
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Category: rec.Type,
		Date:     date,
		Score:    score,
		Note:     rec.Notes,
	}, nil
}

// parseScore accepts integral and fractional numbers, truncating toward zero.
func parseScore(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid score %q", n.String())
	}
	return int(f), nil
}

// validationError flattens validator errors into "field: rule" messages.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("missing %s", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must not be empty", field))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("invalid %s %q (expected %s)", field, fe.Value(), DateLayout))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, ", "))
}

// SortByDate sorts entries ascending by date, keeping input order for
// entries on the same day.
func SortByDate(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

package stats

import (
	"fmt"
	"time"

	"github.com/Flyrell/moodchart/internal/mood"
)

// Window sizes used by the default chart set.
const (
	TrendWindow   = 60
	NoteWindow    = 14
	KeywordWindow = 14
)

// Point is a single value aligned to an entry's date.
type Point struct {
	Date  time.Time
	Value float64
}

// WindowBounds returns the half-open index range [start, end) of the
// smoothing window centered on i in a sequence of length n. The window
// shrinks at the edges and always holds between 1 and 2k+1 elements.
func WindowBounds(i, n, k int) (start, end int) {
	start = max(0, i-k)
	end = min(n, i+k+1)
	return start, end
}

// Smooth returns the moving average of values using a window of half-width
// k. The result has the same length as values.
func Smooth(values []float64, k int) ([]float64, error) {
	if k < 0 {
		return nil, fmt.Errorf("invalid window %d (expected >= 0)", k)
	}

	out := make([]float64, len(values))
	for i := range values {
		start, end := WindowBounds(i, len(values), k)
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out, nil
}

// SmoothScores smooths entry scores and aligns each value to its entry date.
func SmoothScores(entries []mood.Entry, k int) ([]Point, error) {
	return smoothField(entries, k, func(e mood.Entry) float64 { return float64(e.Score) })
}

// SmoothNoteLengths smooths note lengths and aligns each value to its entry date.
func SmoothNoteLengths(entries []mood.Entry, k int) ([]Point, error) {
	return smoothField(entries, k, func(e mood.Entry) float64 { return float64(e.NoteLength()) })
}

// SmoothCounts smooths a series of integer counts.
func SmoothCounts(counts []int, k int) ([]float64, error) {
	values := make([]float64, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	return Smooth(values, k)
}

func smoothField(entries []mood.Entry, k int, field func(mood.Entry) float64) ([]Point, error) {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = field(e)
	}

	smoothed, err := Smooth(values, k)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(entries))
	for i, e := range entries {
		points[i] = Point{Date: e.Date, Value: smoothed[i]}
	}
	return points, nil
}

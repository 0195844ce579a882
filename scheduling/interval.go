package scheduling

import (
	"sort"
	"time"
)

// TimeInterval is a half-open time range [Start, End). All instants are
// compared on a single reference clock (UTC); callers must not mix zones.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds a TimeInterval, rejecting start >= end.
func NewInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{Start: start, End: end}, nil
}

// Duration returns the interval's length.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether inner lies entirely within iv.
func (iv TimeInterval) Contains(inner TimeInterval) bool {
	return !iv.Start.After(inner.Start) && !inner.End.After(iv.End)
}

// Equal reports whether both endpoints match.
func (iv TimeInterval) Equal(other TimeInterval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// MergeAll normalizes a set of intervals: sorted by start, with
// overlapping or touching neighbours folded into one. The result is
// the same for any permutation of the input.
func MergeAll(intervals []TimeInterval) []TimeInterval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]TimeInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []TimeInterval{sorted[0]}
	for _, next := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !next.Start.After(last.End) {
			if next.End.After(last.End) {
				last.End = next.End
			}
		} else {
			merged = append(merged, next)
		}
	}
	return merged
}

// Subtract removes cut from base, returning 0, 1 or 2 remainders.
func Subtract(base, cut TimeInterval) []TimeInterval {
	if !base.Overlaps(cut) {
		return []TimeInterval{base}
	}
	var out []TimeInterval
	if base.Start.Before(cut.Start) {
		out = append(out, TimeInterval{Start: base.Start, End: cut.Start})
	}
	if cut.End.Before(base.End) {
		out = append(out, TimeInterval{Start: cut.End, End: base.End})
	}
	return out
}

// DayOf truncates an instant to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

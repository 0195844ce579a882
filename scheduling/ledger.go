package scheduling

import (
	"time"

	"github.com/google/uuid"
	"github.com/lessonbooker/server/models"
)

// WindowDiff describes a ledger mutation as the windows it deletes and
// the windows it creates. The persistence layer applies a diff
// atomically.
type WindowDiff struct {
	Removed []models.AvailabilityWindow `json:"removed"`
	Added   []models.AvailabilityWindow `json:"added"`
}

// Empty reports whether the diff changes nothing.
func (d WindowDiff) Empty() bool {
	return len(d.Removed) == 0 && len(d.Added) == 0
}

// Ledger owns one instructor's availability window set and keeps it
// normalized across mutations. It is an in-memory working copy: the
// facade loads it, mutates it under the instructor's lock, and persists
// the resulting diffs.
type Ledger struct {
	InstructorID uuid.UUID
	Windows      []models.AvailabilityWindow
}

func NewLedger(instructorID uuid.UUID, windows []models.AvailabilityWindow) *Ledger {
	return &Ledger{InstructorID: instructorID, Windows: windows}
}

func windowInterval(w models.AvailabilityWindow) TimeInterval {
	return TimeInterval{Start: w.StartTime, End: w.EndTime}
}

// touches is the merge criterion: overlapping or exactly adjacent.
func touches(a, b TimeInterval) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// AddWindow inserts an open interval and re-normalizes the set,
// absorbing every window the new interval overlaps or touches. It
// returns the mutation diff together with the window now covering the
// interval. Adding time already fully open is a no-op.
func (l *Ledger) AddWindow(iv TimeInterval) (WindowDiff, models.AvailabilityWindow, error) {
	if _, err := NewInterval(iv.Start, iv.End); err != nil {
		return WindowDiff{}, models.AvailabilityWindow{}, err
	}

	var absorbed []models.AvailabilityWindow
	merged := iv
	for _, w := range l.Windows {
		if touches(windowInterval(w), iv) {
			absorbed = append(absorbed, w)
			if w.StartTime.Before(merged.Start) {
				merged.Start = w.StartTime
			}
			if w.EndTime.After(merged.End) {
				merged.End = w.EndTime
			}
		}
	}

	if len(absorbed) == 1 && windowInterval(absorbed[0]).Contains(iv) {
		return WindowDiff{}, absorbed[0], nil
	}

	result := models.AvailabilityWindow{
		ID:           uuid.New(),
		InstructorID: l.InstructorID,
		StartTime:    merged.Start,
		EndTime:      merged.End,
	}
	diff := WindowDiff{Removed: absorbed, Added: []models.AvailabilityWindow{result}}
	l.apply(diff)
	return diff, result, nil
}

// RemoveSubInterval withdraws target from the one window that fully
// contains it, splitting the window when the target sits strictly
// inside. Removal never crosses window boundaries: if no single window
// contains the target, the ledger is untouched and ErrNoMatchingWindow
// is returned.
func (l *Ledger) RemoveSubInterval(target TimeInterval) (WindowDiff, error) {
	if _, err := NewInterval(target.Start, target.End); err != nil {
		return WindowDiff{}, err
	}

	for _, w := range l.Windows {
		if !windowInterval(w).Contains(target) {
			continue
		}
		diff := WindowDiff{Removed: []models.AvailabilityWindow{w}}
		for _, rem := range Subtract(windowInterval(w), target) {
			diff.Added = append(diff.Added, models.AvailabilityWindow{
				ID:           uuid.New(),
				InstructorID: l.InstructorID,
				StartTime:    rem.Start,
				EndTime:      rem.End,
			})
		}
		l.apply(diff)
		return diff, nil
	}
	return WindowDiff{}, ErrNoMatchingWindow
}

// RemoveAllForDay deletes every window starting on the given calendar
// day and returns them.
func (l *Ledger) RemoveAllForDay(day time.Time) WindowDiff {
	var diff WindowDiff
	for _, w := range l.Windows {
		if SameDay(w.StartTime, day) {
			diff.Removed = append(diff.Removed, w)
		}
	}
	l.apply(diff)
	return diff
}

// WindowsContaining returns the windows that fully contain iv. Under
// the normalized invariant there is at most one, but callers treat the
// result as a set.
func (l *Ledger) WindowsContaining(iv TimeInterval) []models.AvailabilityWindow {
	var out []models.AvailabilityWindow
	for _, w := range l.Windows {
		if windowInterval(w).Contains(iv) {
			out = append(out, w)
		}
	}
	return out
}

// Intervals returns the ledger's current window intervals.
func (l *Ledger) Intervals() []TimeInterval {
	out := make([]TimeInterval, 0, len(l.Windows))
	for _, w := range l.Windows {
		out = append(out, windowInterval(w))
	}
	return out
}

func (l *Ledger) apply(diff WindowDiff) {
	if diff.Empty() {
		return
	}
	kept := l.Windows[:0]
	for _, w := range l.Windows {
		removed := false
		for _, r := range diff.Removed {
			if r.ID == w.ID {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, w)
		}
	}
	l.Windows = append(kept, diff.Added...)
}

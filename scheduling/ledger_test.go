package scheduling

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lessonbooker/server/models"
)

func newTestLedger(t *testing.T, intervals ...TimeInterval) *Ledger {
	t.Helper()
	instructorID := uuid.New()
	ledger := NewLedger(instructorID, nil)
	for _, iv := range intervals {
		if _, _, err := ledger.AddWindow(iv); err != nil {
			t.Fatalf("seeding ledger: %v", err)
		}
	}
	return ledger
}

func ledgerIntervals(l *Ledger) []TimeInterval {
	return MergeAll(l.Intervals())
}

func TestLedgerAddWindow(t *testing.T) {
	t.Parallel()

	t.Run("rejects inverted interval", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t)
		if _, _, err := ledger.AddWindow(TimeInterval{Start: at(t, 10, 0), End: at(t, 9, 0)}); !errors.Is(err, ErrInvalidInterval) {
			t.Fatalf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("adjacent windows merge into one", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 10, 0))

		diff, window, err := ledger.AddWindow(iv(t, 10, 0, 11, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(diff.Removed) != 1 || len(diff.Added) != 1 {
			t.Fatalf("diff = %+v, want one removal and one addition", diff)
		}
		if !windowInterval(window).Equal(iv(t, 9, 0, 11, 0)) {
			t.Fatalf("merged window = %v", windowInterval(window))
		}
		if !sameIntervals(ledgerIntervals(ledger), []TimeInterval{iv(t, 9, 0, 11, 0)}) {
			t.Fatalf("ledger = %v", ledgerIntervals(ledger))
		}
	})

	t.Run("bridging window absorbs both neighbours", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 10, 0), iv(t, 11, 0, 12, 0))

		diff, window, err := ledger.AddWindow(iv(t, 9, 30, 11, 30))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(diff.Removed) != 2 {
			t.Fatalf("expected both windows absorbed, removed %d", len(diff.Removed))
		}
		if !windowInterval(window).Equal(iv(t, 9, 0, 12, 0)) {
			t.Fatalf("merged window = %v", windowInterval(window))
		}
	})

	t.Run("re-adding covered time is a no-op", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 12, 0))
		existing := ledger.Windows[0]

		diff, window, err := ledger.AddWindow(iv(t, 10, 0, 11, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !diff.Empty() {
			t.Fatalf("expected empty diff, got %+v", diff)
		}
		if window.ID != existing.ID {
			t.Fatal("expected the existing window back")
		}
		if len(ledger.Windows) != 1 {
			t.Fatalf("ledger grew to %d windows", len(ledger.Windows))
		}
	})

	t.Run("disjoint window is added alongside", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 10, 0))

		if _, _, err := ledger.AddWindow(iv(t, 13, 0, 14, 0)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []TimeInterval{iv(t, 9, 0, 10, 0), iv(t, 13, 0, 14, 0)}
		if !sameIntervals(ledgerIntervals(ledger), want) {
			t.Fatalf("ledger = %v, want %v", ledgerIntervals(ledger), want)
		}
	})
}

func TestLedgerRemoveSubInterval(t *testing.T) {
	t.Parallel()

	t.Run("middle removal splits the window", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 11, 0))

		diff, err := ledger.RemoveSubInterval(iv(t, 9, 30, 10, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(diff.Removed) != 1 || len(diff.Added) != 2 {
			t.Fatalf("diff = %+v", diff)
		}
		want := []TimeInterval{iv(t, 9, 0, 9, 30), iv(t, 10, 0, 11, 0)}
		if !sameIntervals(ledgerIntervals(ledger), want) {
			t.Fatalf("ledger = %v, want %v", ledgerIntervals(ledger), want)
		}
	})

	t.Run("exact removal deletes the window", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 11, 0))

		diff, err := ledger.RemoveSubInterval(iv(t, 9, 0, 11, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(diff.Removed) != 1 || len(diff.Added) != 0 {
			t.Fatalf("diff = %+v", diff)
		}
		if len(ledger.Windows) != 0 {
			t.Fatalf("ledger still holds %d windows", len(ledger.Windows))
		}
	})

	t.Run("edge removal leaves one remainder", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 11, 0))

		if _, err := ledger.RemoveSubInterval(iv(t, 9, 0, 10, 0)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sameIntervals(ledgerIntervals(ledger), []TimeInterval{iv(t, 10, 0, 11, 0)}) {
			t.Fatalf("ledger = %v", ledgerIntervals(ledger))
		}
	})

	t.Run("removal crossing window boundaries is rejected", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 10, 0), iv(t, 11, 0, 12, 0))

		if _, err := ledger.RemoveSubInterval(iv(t, 9, 30, 11, 30)); !errors.Is(err, ErrNoMatchingWindow) {
			t.Fatalf("expected ErrNoMatchingWindow, got %v", err)
		}
		want := []TimeInterval{iv(t, 9, 0, 10, 0), iv(t, 11, 0, 12, 0)}
		if !sameIntervals(ledgerIntervals(ledger), want) {
			t.Fatalf("ledger mutated on failed removal: %v", ledgerIntervals(ledger))
		}
	})

	t.Run("removal of unavailable time is rejected", func(t *testing.T) {
		t.Parallel()
		ledger := newTestLedger(t, iv(t, 9, 0, 10, 0))

		if _, err := ledger.RemoveSubInterval(iv(t, 13, 0, 14, 0)); !errors.Is(err, ErrNoMatchingWindow) {
			t.Fatalf("expected ErrNoMatchingWindow, got %v", err)
		}
	})
}

func TestLedgerRemoveAllForDay(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger(t, iv(t, 9, 0, 10, 0), iv(t, 13, 0, 14, 0))
	nextDay := TimeInterval{
		Start: at(t, 9, 0).AddDate(0, 0, 1),
		End:   at(t, 10, 0).AddDate(0, 0, 1),
	}
	if _, _, err := ledger.AddWindow(nextDay); err != nil {
		t.Fatalf("seeding ledger: %v", err)
	}

	diff := ledger.RemoveAllForDay(at(t, 0, 0))
	if len(diff.Removed) != 2 {
		t.Fatalf("removed %d windows, want 2", len(diff.Removed))
	}
	if !sameIntervals(ledgerIntervals(ledger), []TimeInterval{nextDay}) {
		t.Fatalf("ledger = %v, want only next day's window", ledgerIntervals(ledger))
	}

	t.Run("empty day removes nothing", func(t *testing.T) {
		if diff := ledger.RemoveAllForDay(at(t, 0, 0).AddDate(0, 0, 30)); !diff.Empty() {
			t.Fatalf("diff = %+v, want empty", diff)
		}
	})
}

func TestLedgerWindowsContaining(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger(t, iv(t, 9, 0, 12, 0), iv(t, 13, 0, 14, 0))

	got := ledger.WindowsContaining(iv(t, 10, 0, 11, 0))
	if len(got) != 1 || !windowInterval(got[0]).Equal(iv(t, 9, 0, 12, 0)) {
		t.Fatalf("got %v", got)
	}
	if got := ledger.WindowsContaining(iv(t, 12, 0, 13, 30)); len(got) != 0 {
		t.Fatalf("expected no containing window, got %v", got)
	}
}

func TestLedgerWindowsBelongToInstructor(t *testing.T) {
	t.Parallel()

	instructorID := uuid.New()
	ledger := NewLedger(instructorID, []models.AvailabilityWindow{})
	_, window, err := ledger.AddWindow(iv(t, 9, 0, 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window.InstructorID != instructorID {
		t.Fatal("new window not owned by the ledger's instructor")
	}
	if window.StartTime.IsZero() || !window.EndTime.After(window.StartTime) {
		t.Fatalf("bad window times: %v", window)
	}
}

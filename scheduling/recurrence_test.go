package scheduling

import (
	"testing"
	"time"
)

func TestExpandWeekly(t *testing.T) {
	t.Parallel()

	// Monday 2024-06-10, 09:00-10:00.
	seed := iv(t, 9, 0, 10, 0)

	t.Run("nil repeatUntil yields just the seed", func(t *testing.T) {
		t.Parallel()
		got := ExpandWeekly(seed, nil)
		if len(got) != 1 || !got[0].Equal(seed) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("repeatUntil before the seed yields just the seed", func(t *testing.T) {
		t.Parallel()
		until := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
		got := ExpandWeekly(seed, &until)
		if len(got) != 1 || !got[0].Equal(seed) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("expands on the seed weekday up to and including the end date", func(t *testing.T) {
		t.Parallel()
		until := time.Date(2024, time.June, 24, 0, 0, 0, 0, time.UTC)
		got := ExpandWeekly(seed, &until)

		want := []TimeInterval{
			seed,
			{Start: seed.Start.AddDate(0, 0, 7), End: seed.End.AddDate(0, 0, 7)},
			{Start: seed.Start.AddDate(0, 0, 14), End: seed.End.AddDate(0, 0, 14)},
		}
		if !sameIntervals(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for _, occ := range got {
			if occ.Start.Weekday() != time.Monday {
				t.Fatalf("occurrence %v not on Monday", occ.Start)
			}
			if occ.Duration() != time.Hour {
				t.Fatalf("occurrence %v lost the seed duration", occ)
			}
		}
	})

	t.Run("end date between occurrences stops before it", func(t *testing.T) {
		t.Parallel()
		// Sunday June 23rd: the June 24th Monday must not be produced.
		until := time.Date(2024, time.June, 23, 0, 0, 0, 0, time.UTC)
		got := ExpandWeekly(seed, &until)
		if len(got) != 2 {
			t.Fatalf("got %d occurrences, want 2: %v", len(got), got)
		}
	})

	t.Run("time of day is preserved on every occurrence", func(t *testing.T) {
		t.Parallel()
		until := time.Date(2024, time.July, 22, 0, 0, 0, 0, time.UTC)
		for _, occ := range ExpandWeekly(seed, &until) {
			if occ.Start.Hour() != 9 || occ.Start.Minute() != 0 {
				t.Fatalf("occurrence %v drifted from 09:00", occ.Start)
			}
		}
	})
}

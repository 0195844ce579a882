package scheduling

import (
	"math/rand"
	"testing"
	"time"
)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2024, time.June, 10, hour, min, 0, 0, time.UTC)
}

func iv(t *testing.T, startHour, startMin, endHour, endMin int) TimeInterval {
	t.Helper()
	return TimeInterval{Start: at(t, startHour, startMin), End: at(t, endHour, endMin)}
}

func sameIntervals(a, b []TimeInterval) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func TestNewInterval(t *testing.T) {
	t.Parallel()

	t.Run("rejects start equal to end", func(t *testing.T) {
		t.Parallel()
		if _, err := NewInterval(at(t, 9, 0), at(t, 9, 0)); err != ErrInvalidInterval {
			t.Fatalf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("rejects start after end", func(t *testing.T) {
		t.Parallel()
		if _, err := NewInterval(at(t, 10, 0), at(t, 9, 0)); err != ErrInvalidInterval {
			t.Fatalf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("accepts a proper interval", func(t *testing.T) {
		t.Parallel()
		got, err := NewInterval(at(t, 9, 0), at(t, 10, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Duration() != time.Hour {
			t.Fatalf("expected 1h duration, got %v", got.Duration())
		}
	})
}

func TestOverlapsAndContains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		a, b     TimeInterval
		overlaps bool
		contains bool
	}{
		{"disjoint", iv(t, 9, 0, 10, 0), iv(t, 11, 0, 12, 0), false, false},
		{"touching endpoints do not overlap", iv(t, 9, 0, 10, 0), iv(t, 10, 0, 11, 0), false, false},
		{"partial overlap", iv(t, 9, 0, 10, 30), iv(t, 10, 0, 11, 0), true, false},
		{"inner fully inside", iv(t, 9, 0, 12, 0), iv(t, 10, 0, 11, 0), true, true},
		{"identical", iv(t, 9, 0, 10, 0), iv(t, 9, 0, 10, 0), true, true},
		{"inner sharing start edge", iv(t, 9, 0, 12, 0), iv(t, 9, 0, 10, 0), true, true},
		{"inner sharing end edge", iv(t, 9, 0, 12, 0), iv(t, 11, 0, 12, 0), true, true},
		{"inner overhanging end", iv(t, 9, 0, 12, 0), iv(t, 11, 0, 13, 0), true, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.a.Overlaps(tc.b); got != tc.overlaps {
				t.Errorf("Overlaps = %v, want %v", got, tc.overlaps)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.overlaps {
				t.Errorf("Overlaps is not symmetric: reversed = %v, want %v", got, tc.overlaps)
			}
			if got := tc.a.Contains(tc.b); got != tc.contains {
				t.Errorf("Contains = %v, want %v", got, tc.contains)
			}
		})
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	t.Run("folds adjacent intervals", func(t *testing.T) {
		t.Parallel()
		got := MergeAll([]TimeInterval{iv(t, 9, 0, 10, 0), iv(t, 10, 0, 11, 0)})
		want := []TimeInterval{iv(t, 9, 0, 11, 0)}
		if !sameIntervals(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("folds overlapping intervals keeping the later end", func(t *testing.T) {
		t.Parallel()
		got := MergeAll([]TimeInterval{iv(t, 9, 0, 11, 0), iv(t, 10, 0, 10, 30)})
		want := []TimeInterval{iv(t, 9, 0, 11, 0)}
		if !sameIntervals(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("keeps gaps", func(t *testing.T) {
		t.Parallel()
		got := MergeAll([]TimeInterval{iv(t, 13, 0, 14, 0), iv(t, 9, 0, 10, 0)})
		want := []TimeInterval{iv(t, 9, 0, 10, 0), iv(t, 13, 0, 14, 0)}
		if !sameIntervals(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()
		if got := MergeAll(nil); len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		input := []TimeInterval{
			iv(t, 9, 0, 10, 0), iv(t, 9, 30, 11, 0), iv(t, 12, 0, 13, 0), iv(t, 13, 0, 13, 30),
		}
		once := MergeAll(input)
		twice := MergeAll(once)
		if !sameIntervals(once, twice) {
			t.Fatalf("MergeAll not idempotent: %v vs %v", once, twice)
		}
	})

	t.Run("invariant under permutation", func(t *testing.T) {
		t.Parallel()
		input := []TimeInterval{
			iv(t, 9, 0, 10, 0), iv(t, 9, 30, 11, 0), iv(t, 12, 0, 13, 0),
			iv(t, 13, 0, 13, 30), iv(t, 8, 0, 8, 30),
		}
		want := MergeAll(input)

		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 20; i++ {
			shuffled := make([]TimeInterval, len(input))
			copy(shuffled, input)
			rng.Shuffle(len(shuffled), func(a, b int) {
				shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
			})
			if got := MergeAll(shuffled); !sameIntervals(got, want) {
				t.Fatalf("permutation changed result: %v vs %v", got, want)
			}
		}
	})
}

func TestSubtract(t *testing.T) {
	t.Parallel()

	base := iv(t, 9, 0, 12, 0)

	cases := []struct {
		name string
		cut  TimeInterval
		want []TimeInterval
	}{
		{"no overlap leaves base", iv(t, 13, 0, 14, 0), []TimeInterval{base}},
		{"touching leaves base", iv(t, 12, 0, 13, 0), []TimeInterval{base}},
		{"cut covers base", iv(t, 8, 0, 13, 0), nil},
		{"cut equals base", base, nil},
		{"cut inside splits in two", iv(t, 10, 0, 11, 0), []TimeInterval{iv(t, 9, 0, 10, 0), iv(t, 11, 0, 12, 0)}},
		{"cut overlaps start edge", iv(t, 8, 0, 10, 0), []TimeInterval{iv(t, 10, 0, 12, 0)}},
		{"cut overlaps end edge", iv(t, 11, 0, 13, 0), []TimeInterval{iv(t, 9, 0, 11, 0)}},
		{"cut shares start edge", iv(t, 9, 0, 10, 0), []TimeInterval{iv(t, 10, 0, 12, 0)}},
		{"cut shares end edge", iv(t, 11, 0, 12, 0), []TimeInterval{iv(t, 9, 0, 11, 0)}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Subtract(base, tc.cut)
			if !sameIntervals(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("remainders plus clipped cut reconstruct base", func(t *testing.T) {
		t.Parallel()
		for _, tc := range cases {
			pieces := Subtract(base, tc.cut)
			if base.Overlaps(tc.cut) {
				clipped := tc.cut
				if clipped.Start.Before(base.Start) {
					clipped.Start = base.Start
				}
				if clipped.End.After(base.End) {
					clipped.End = base.End
				}
				pieces = append(pieces, clipped)
			}
			rebuilt := MergeAll(pieces)
			if !sameIntervals(rebuilt, []TimeInterval{base}) {
				t.Fatalf("%s: reconstruction %v != %v", tc.name, rebuilt, base)
			}
		}
	})
}

func TestDayOf(t *testing.T) {
	t.Parallel()

	if got := DayOf(at(t, 23, 59)); !got.Equal(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("DayOf = %v", got)
	}
	if !SameDay(at(t, 0, 0), at(t, 23, 59)) {
		t.Fatal("expected same day")
	}
	if SameDay(at(t, 23, 59), at(t, 23, 59).Add(time.Minute)) {
		t.Fatal("expected different days across midnight")
	}
}

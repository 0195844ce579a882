package scheduling

import "time"

// ExpandWeekly turns a seed window into one window per week on the
// seed's weekday, up to and including repeatUntil's calendar day.
// Time-of-day and duration are preserved on every occurrence. A nil
// repeatUntil, or one before the seed's day, yields just the seed.
//
// Each expanded interval is submitted to the ledger independently;
// one occurrence failing does not roll back the ones before it.
func ExpandWeekly(seed TimeInterval, repeatUntil *time.Time) []TimeInterval {
	out := []TimeInterval{seed}
	if repeatUntil == nil {
		return out
	}

	until := DayOf(*repeatUntil)
	dur := seed.Duration()
	for start := seed.Start.AddDate(0, 0, 7); !DayOf(start).After(until); start = start.AddDate(0, 0, 7) {
		out = append(out, TimeInterval{Start: start, End: start.Add(dur)})
	}
	return out
}

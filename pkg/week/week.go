// Package week computes Monday-anchored week boundaries and the storage
// partition key derived from them.
package week

import (
	"fmt"
	"time"
)

// MondayOf returns local midnight of the Monday on or before ref, shifted by
// offset weeks. Sunday belongs to the week that started six days earlier.
func MondayOf(ref time.Time, offset int) time.Time {
	wd := int(ref.Weekday())
	delta := 1 - wd
	if wd == 0 {
		delta = -6
	}
	y, m, d := ref.Date()
	return time.Date(y, m, d+delta+offset*7, 0, 0, 0, 0, ref.Location())
}

// Key derives the partition key for the week starting on monday. The month is
// zero-based and the day is the Monday's day of month; the result is not an
// ISO week number.
func Key(monday time.Time) string {
	return fmt.Sprintf("week-%d-%d-%d", monday.Year(), int(monday.Month())-1, monday.Day())
}

// Dates returns the seven days starting at monday.
func Dates(monday time.Time) [7]time.Time {
	var out [7]time.Time
	y, m, d := monday.Date()
	for i := range out {
		out[i] = time.Date(y, m, d+i, 0, 0, 0, 0, monday.Location())
	}
	return out
}

// DateLabel formats a day as "M/D".
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// RangeLabel formats the week as "M/D - M/D".
func RangeLabel(monday time.Time) string {
	days := Dates(monday)
	return DateLabel(days[0]) + " - " + DateLabel(days[6])
}

// SameDay reports whether a and b fall on the same calendar day in a's zone.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

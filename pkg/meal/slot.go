// Package meal holds the planner's domain types: days, meal types, slot keys,
// snapshots, shopping items, and the static dish catalog.
package meal

import (
	"errors"
	"fmt"
	"strings"
)

// Day identifies one column of the weekly plan.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists the week in display order, Monday first.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var (
	shortLabels = map[Day]string{
		Monday:    "月",
		Tuesday:   "火",
		Wednesday: "水",
		Thursday:  "木",
		Friday:    "金",
		Saturday:  "土",
		Sunday:    "日",
	}
	dayAliases = map[string]Day{
		"mon": Monday, "tue": Tuesday, "wed": Wednesday, "thu": Thursday,
		"fri": Friday, "sat": Saturday, "sun": Sunday,
	}
)

// ShortLabel is the single character weekday label (月).
func (d Day) ShortLabel() string {
	if l, ok := shortLabels[d]; ok {
		return l
	}
	return string(d)
}

// LongLabel is the full weekday label (月曜日).
func (d Day) LongLabel() string {
	if l, ok := shortLabels[d]; ok {
		return l + "曜日"
	}
	return string(d)
}

// Index returns the position of d within Days, or -1.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// Valid reports whether d is one of the seven weekdays.
func (d Day) Valid() bool {
	return d.Index() >= 0
}

// ParseDay accepts English names, three letter abbreviations, Japanese labels
// and 1-based indexes (1 = Monday).
func ParseDay(s string) (Day, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if d := Day(v); d.Valid() {
		return d, nil
	}
	if d, ok := dayAliases[v]; ok {
		return d, nil
	}
	for _, d := range Days {
		if v == d.ShortLabel() || v == d.LongLabel() {
			return d, nil
		}
	}
	if len(v) == 1 && v[0] >= '1' && v[0] <= '7' {
		return Days[v[0]-'1'], nil
	}
	return "", fmt.Errorf("meal: unknown day %q", s)
}

// MealType is the second half of a slot key.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// Valid reports whether m is a recognised meal type.
func (m MealType) Valid() bool {
	switch m {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// SlotKey addresses one planning cell, formatted "{day}-{mealType}".
type SlotKey string

// ErrInvalidSlot is returned for unknown days or meal types.
var ErrInvalidSlot = errors.New("meal: invalid slot")

// Key builds the slot key for day and meal type.
func Key(day Day, mealType MealType) SlotKey {
	return SlotKey(string(day) + "-" + string(mealType))
}

// NewKey validates day and meal type before building the key.
func NewKey(day Day, mealType MealType) (SlotKey, error) {
	if !day.Valid() || !mealType.Valid() {
		return "", fmt.Errorf("%w: %s-%s", ErrInvalidSlot, day, mealType)
	}
	return Key(day, mealType), nil
}

// ParseKey splits a slot key back into its parts.
func ParseKey(s string) (Day, MealType, error) {
	day, mt, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	d, m := Day(day), MealType(mt)
	if !d.Valid() || !m.Valid() {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	return d, m, nil
}

// Day returns the day half of the key.
func (k SlotKey) Day() Day {
	d, _, _ := strings.Cut(string(k), "-")
	return Day(d)
}

// MealType returns the meal type half of the key.
func (k SlotKey) MealType() MealType {
	_, m, _ := strings.Cut(string(k), "-")
	return MealType(m)
}

// Package viewmodel projects planner state into plain structs that the CLI
// printers, the terminal UI and the MCP server render. It holds no state of
// its own.
package viewmodel

import (
	"strings"
	"time"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/week"
)

// summaryPairs is how many "曜: 料理" pairs a history summary shows.
const summaryPairs = 3

// Source is the read side of the planner.
type Source interface {
	Meals() meal.Meals
	Monday() time.Time
	WeekOffset() int
	WeekKey() string
	IsFavorite(name string) bool
}

// WeekView is one displayed week.
type WeekView struct {
	Key    string    `json:"weekKey"`
	Offset int       `json:"offset"`
	Range  string    `json:"range"`
	Filled int       `json:"filled"`
	Days   []DayView `json:"days"`
}

// DayView is one dinner cell of the week.
type DayView struct {
	Day       meal.Day      `json:"day"`
	Short     string        `json:"short"`
	Long      string        `json:"long"`
	Date      time.Time     `json:"date"`
	DateLabel string        `json:"dateLabel"`
	Today     bool          `json:"today"`
	Slot      meal.SlotKey  `json:"slot"`
	Dish      string        `json:"dish,omitempty"`
	Category  meal.Category `json:"category,omitempty"`
	Favorite  bool          `json:"favorite,omitempty"`
}

// Empty reports whether the cell has no dish.
func (d DayView) Empty() bool {
	return d.Dish == ""
}

// Week builds the view of the displayed week as of now.
func Week(src Source, now time.Time) WeekView {
	monday := src.Monday()
	meals := src.Meals()
	dates := week.Dates(monday)

	v := WeekView{
		Key:    src.WeekKey(),
		Offset: src.WeekOffset(),
		Range:  week.RangeLabel(monday),
		Days:   make([]DayView, 0, len(meal.Days)),
	}
	for i, d := range meal.Days {
		key := meal.Key(d, meal.Dinner)
		dv := DayView{
			Day:       d,
			Short:     d.ShortLabel(),
			Long:      d.LongLabel(),
			Date:      dates[i],
			DateLabel: week.DateLabel(dates[i]),
			Today:     week.SameDay(dates[i], now),
			Slot:      key,
		}
		if dish, ok := meals[key]; ok {
			dv.Dish = dish
			dv.Category = meal.CategoryOf(dish)
			dv.Favorite = src.IsFavorite(dish)
			v.Filled++
		}
		v.Days = append(v.Days, dv)
	}
	return v
}

// HistoryEntry is a one-line description of a saved snapshot.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	DisplayDate string    `json:"displayDate"`
	CreatedAt   time.Time `json:"createdAt"`
	Count       int       `json:"count"`
	Summary     string    `json:"summary"`
}

// History summarises snapshots in the order given.
func History(snaps []meal.Snapshot) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, HistoryEntry{
			ID:          s.ID,
			DisplayDate: s.DisplayDate,
			CreatedAt:   s.CreatedAt.Time,
			Count:       len(s.Meals),
			Summary:     Summary(s.Meals),
		})
	}
	return out
}

// Summary renders the first few planned days as "月: カレー、火: 鍋、水: 寿司...".
func Summary(meals meal.Meals) string {
	keys := meals.SortedKeys()
	parts := make([]string, 0, summaryPairs)
	for _, k := range keys {
		if len(parts) == summaryPairs {
			break
		}
		parts = append(parts, k.Day().ShortLabel()+": "+meals[k])
	}
	s := strings.Join(parts, "、")
	if len(keys) > summaryPairs {
		s += "..."
	}
	return s
}

// ShoppingSummary counts shopping list items.
type ShoppingSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Auto      int `json:"auto"`
}

// Remaining is the number of items still to buy.
func (s ShoppingSummary) Remaining() int {
	return s.Total - s.Completed
}

// Shopping counts items.
func Shopping(items []meal.ShoppingItem) ShoppingSummary {
	s := ShoppingSummary{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			s.Completed++
		}
		if it.AutoGenerated {
			s.Auto++
		}
	}
	return s
}

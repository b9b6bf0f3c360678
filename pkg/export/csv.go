// Package export writes the week plan and shopping list as a CSV document.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/kondate/pkg/meal"
)

// ErrNothingToExport is returned when the week has no planned dish.
var ErrNothingToExport = errors.New("export: nothing to export")

const (
	headerDay      = "曜日"
	headerDinner   = "夕食"
	shoppingTitle  = "買い物リスト"
	labelDone      = "完了"
	labelRemaining = "未完了"
)

// Filename is the suggested file name for an export made at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("献立_%s.csv", now.Format("20060102"))
}

// WriteCSV writes one row per weekday followed, when items is non-empty, by
// a blank row and the shopping list.
func WriteCSV(w io.Writer, meals meal.Meals, items []meal.ShoppingItem) error {
	if meals.Empty() {
		return ErrNothingToExport
	}
	cw := csv.NewWriter(w)
	rows := [][]string{{headerDay, headerDinner}}
	for _, d := range meal.Days {
		rows = append(rows, []string{d.LongLabel(), meals[meal.Key(d, meal.Dinner)]})
	}
	if len(items) > 0 {
		rows = append(rows, []string{}, []string{shoppingTitle})
		for _, it := range items {
			status := labelRemaining
			if it.Completed {
				status = labelDone
			}
			rows = append(rows, []string{it.Text, status})
		}
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	return nil
}

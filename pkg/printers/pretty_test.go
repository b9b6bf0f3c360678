package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/viewmodel"
)

func init() {
	color.NoColor = true
}

func TestWeekRendersEveryDay(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.Week(viewmodel.WeekView{
		Range:  "3/4 - 3/10",
		Filled: 1,
		Days: []viewmodel.DayView{
			{Short: "月", DateLabel: "3/4", Dish: "カレー", Category: meal.Japanese, Favorite: true},
			{Short: "火", DateLabel: "3/5"},
		},
	})
	out := buf.String()
	for _, want := range []string{"3/4 - 3/10 - 1/7", "カレー ★", "和食", "未定"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShoppingMarksCompletedItems(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf, ShowID: true}
	pp.Shopping([]meal.ShoppingItem{
		{ID: 42, Text: "牛肉", AutoGenerated: true},
		{ID: 43, Text: "卵", Completed: true},
	})
	out := buf.String()
	for _, want := range []string{"1件残り", "42  [ ] 牛肉 (自動)", "43  [x] 卵"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.History(nil)
	if !strings.Contains(buf.String(), "なし") {
		t.Fatalf("expected empty marker:\n%s", buf.String())
	}
}

func TestHistoryTruncatesSummary(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	pp.History([]viewmodel.HistoryEntry{{
		ID:          1,
		DisplayDate: "2024/3/6",
		CreatedAt:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Summary:     strings.Repeat("カレー", 30),
	}})
	if !strings.Contains(buf.String(), "…") {
		t.Fatalf("expected truncated summary:\n%s", buf.String())
	}
}

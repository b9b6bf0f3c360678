package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/kondate/pkg/meal"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	meals := meal.Meals{"monday-dinner": "カレー", "friday-dinner": "鍋, 雑炊"}
	items := []meal.ShoppingItem{
		{ID: 1, Text: "牛肉", Completed: true},
		{ID: 2, Text: "白菜"},
	}
	if err := WriteCSV(&buf, meals, items); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "曜日,夕食\n" +
		"月曜日,カレー\n" +
		"火曜日,\n" +
		"水曜日,\n" +
		"木曜日,\n" +
		"金曜日,\"鍋, 雑炊\"\n" +
		"土曜日,\n" +
		"日曜日,\n" +
		"\n" +
		"買い物リスト\n" +
		"牛肉,完了\n" +
		"白菜,未完了\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSVWithoutShoppingList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, meal.Meals{"sunday-dinner": "寿司"}, nil); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte("買い物リスト")) {
		t.Fatalf("unexpected shopping section:\n%s", buf.String())
	}
}

func TestWriteCSVRejectsEmptyWeek(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, meal.Meals{}, nil); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestFilename(t *testing.T) {
	got := Filename(time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC))
	if got != "献立_20240306.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/store"
)

func newPlanner(t *testing.T, dishes map[meal.Day]string) *planner.Planner {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local) }
	p := planner.New(store.New(store.NewMemory()), planner.WithClock(clock))
	for d, name := range dishes {
		if err := p.SetSlot(d, meal.Dinner, name); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func TestExportEmptyWeek(t *testing.T) {
	e := &Export{Planner: newPlanner(t, nil), Stdout: true, Out: &bytes.Buffer{}}
	if err := e.Do(context.Background()); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("err = %v, want ErrNothingToExport", err)
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	e := &Export{Planner: newPlanner(t, map[meal.Day]string{meal.Monday: "カレー"}), Dir: dir, Out: &out}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	path := filepath.Join(dir, "献立_20240306.csv")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "月曜日,カレー") {
		t.Fatalf("unexpected csv:\n%s", data)
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("output %q does not name the file", out.String())
	}
}

func TestExportToClipboard(t *testing.T) {
	var copied string
	e := &Export{
		Planner:        newPlanner(t, map[meal.Day]string{meal.Friday: "寿司"}),
		Clipboard:      true,
		Out:            &bytes.Buffer{},
		WriteClipboard: func(s string) error { copied = s; return nil },
	}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(copied, "金曜日,寿司") {
		t.Fatalf("clipboard = %q", copied)
	}
}

func TestExportClipboardFailure(t *testing.T) {
	e := &Export{
		Planner:        newPlanner(t, map[meal.Day]string{meal.Friday: "寿司"}),
		Clipboard:      true,
		Out:            &bytes.Buffer{},
		WriteClipboard: func(string) error { return errors.New("no clipboard") },
	}
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("expected clipboard error")
	}
}

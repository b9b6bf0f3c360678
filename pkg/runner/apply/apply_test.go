package apply

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/store"
)

func newTable(t *testing.T) *dispatch.Table {
	t.Helper()
	color.NoColor = true
	clock := func() time.Time { return time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local) }
	p := planner.New(store.New(store.NewMemory()), planner.WithClock(clock))
	if err := p.SetSlot(meal.Monday, meal.Dinner, "カレー"); err != nil {
		t.Fatal(err)
	}
	return dispatch.New(p)
}

func TestApplyPrintsMessageAndWeek(t *testing.T) {
	tbl := newTable(t)
	var out bytes.Buffer
	a := &Apply{
		Table:    tbl,
		Command:  dispatch.CmdSet,
		Args:     dispatch.Args{"day": "火", "dish": "餃子"},
		ShowWeek: true,
		Out:      &out,
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"餃子", "カレー", "3/4 - 3/10"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestApplyConfirmation(t *testing.T) {
	tests := map[string]struct {
		yes       bool
		confirm   func(string) (bool, error)
		wantErr   error
		wantEmpty bool
	}{
		"no prompt available": {},
		"declined": {
			confirm: func(string) (bool, error) { return false, nil },
			wantErr: ErrDeclined,
		},
		"accepted": {
			confirm:   func(string) (bool, error) { return true, nil },
			wantEmpty: true,
		},
		"yes flag": {
			yes:       true,
			confirm:   func(string) (bool, error) { return false, errors.New("prompted despite --yes") },
			wantEmpty: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tbl := newTable(t)
			var out bytes.Buffer
			var asked string
			confirm := tc.confirm
			if confirm != nil {
				inner := confirm
				confirm = func(q string) (bool, error) {
					asked = q
					return inner(q)
				}
			}
			a := &Apply{Table: tbl, Command: dispatch.CmdClear, Yes: tc.yes, Confirm: confirm, Out: &out}
			err := a.Do(context.Background())
			switch {
			case tc.wantErr != nil:
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
			case tc.confirm == nil && !tc.yes:
				if err == nil {
					t.Fatalf("expected an error without a prompt")
				}
			case err != nil:
				t.Fatalf("Do: %v", err)
			}
			if tc.confirm != nil && !tc.yes && asked == "" {
				t.Fatalf("expected a confirmation question")
			}
			if got := tbl.Planner().Meals().Empty(); got != tc.wantEmpty {
				t.Fatalf("empty = %v, want %v", got, tc.wantEmpty)
			}
		})
	}
}

func TestApplyJSON(t *testing.T) {
	tbl := newTable(t)
	var out bytes.Buffer
	a := &Apply{Table: tbl, Command: dispatch.CmdSave, JSON: true, ShowWeek: true, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got struct {
		Command string `json:"command"`
		Result  struct {
			Message string `json:"message"`
		} `json:"result"`
		Week *struct {
			Filled int `json:"filled"`
		} `json:"week"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if got.Command != dispatch.CmdSave || got.Result.Message == "" {
		t.Fatalf("unexpected result %+v", got)
	}
	if got.Week == nil || got.Week.Filled != 1 {
		t.Fatalf("week = %+v, want one filled day", got.Week)
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	a := &Apply{Table: newTable(t), Command: "nope", Out: &bytes.Buffer{}}
	if err := a.Do(context.Background()); !errors.Is(err, dispatch.ErrUnknownCommand) {
		t.Fatalf("err = %v, want ErrUnknownCommand", err)
	}
}

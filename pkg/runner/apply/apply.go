// Package apply runs one dispatch command from the command line, asking for
// confirmation when the command requires it.
package apply

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/printers"
	"tableflip.dev/kondate/pkg/viewmodel"
)

// ErrDeclined is returned when the user answers no to a confirmation.
var ErrDeclined = errors.New("キャンセルしました")

// Apply runs Command against Table.
type Apply struct {
	Table   *dispatch.Table
	Command string
	Args    dispatch.Args

	// Yes skips the confirmation prompt.
	Yes bool
	// Confirm asks the user a yes/no question. Without it a command that
	// needs confirmation fails unless Yes is set.
	Confirm func(question string) (bool, error)

	// ShowWeek prints the week after a change.
	ShowWeek bool
	JSON     bool
	Out      io.Writer
}

type jsonResult struct {
	Command string              `json:"command"`
	Result  dispatch.Result     `json:"result"`
	Week    *viewmodel.WeekView `json:"week,omitempty"`
}

// Do dispatches the command, repeating it with confirm=true once the user
// agrees.
func (a *Apply) Do(_ context.Context) error {
	if a.Table == nil {
		return errors.New("can not apply, no command table")
	}
	out := a.Out
	if out == nil {
		out = color.Output
	}
	args := dispatch.Args{}
	for k, v := range a.Args {
		args[k] = v
	}
	if a.Yes {
		args["confirm"] = "true"
	}

	res, err := a.Table.Dispatch(a.Command, args)
	if err != nil {
		return err
	}
	if res.NeedsConfirm {
		if a.Confirm == nil {
			return errors.New(res.Message + " (--yes で確定)")
		}
		ok, err := a.Confirm(res.Message)
		if err != nil {
			return err
		}
		if !ok {
			return ErrDeclined
		}
		args["confirm"] = "true"
		if res, err = a.Table.Dispatch(a.Command, args); err != nil {
			return err
		}
	}

	p := a.Table.Planner()
	if a.JSON {
		r := jsonResult{Command: a.Command, Result: res}
		if a.ShowWeek {
			w := viewmodel.Week(p, p.Now())
			r.Week = &w
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	pp := printers.PrettyPrint{Out: out}
	pp.Notice(res.Level == dispatch.Warn, res.Message)
	if a.ShowWeek && res.Changed {
		pp.NewLine()
		pp.Week(viewmodel.Week(p, p.Now()))
	}
	return nil
}

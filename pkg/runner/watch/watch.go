// Package watch follows the store and reprints the week whenever another
// process changes it.
package watch

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/printers"
	"tableflip.dev/kondate/pkg/store"
	"tableflip.dev/kondate/pkg/viewmodel"
)

// Watch prints the week, then again after every change until ctx is done.
type Watch struct {
	Store   *store.Store
	Planner *planner.Planner
	Out     io.Writer
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Store == nil || w.Planner == nil {
		return errors.New("can not watch, no store")
	}
	out := w.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	events, err := w.Store.Watch(ctx)
	if err != nil {
		return err
	}

	p := w.Planner
	pp.Week(viewmodel.Week(p, p.Now()))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			p.Reload()
			pp.NewLine()
			pp.Week(viewmodel.Week(p, p.Now()))
		}
	}
}

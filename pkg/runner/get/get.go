// Package get prints planner state: the week, history, shopping list or
// favorites.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/printers"
	"tableflip.dev/kondate/pkg/viewmodel"
)

// What selects the section Get prints.
type What string

const (
	Week      What = "week"
	History   What = "history"
	Shopping  What = "shopping"
	Favorites What = "favorites"
)

// Get prints one section of planner state.
type Get struct {
	What    What
	Planner *planner.Planner
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

// Do prints the configured section.
func (g *Get) Do(_ context.Context) error {
	if g.Planner == nil {
		return errors.New("can not get, no planner")
	}
	out := g.Out
	if out == nil {
		out = color.Output
	}
	p := g.Planner
	pp := printers.PrettyPrint{ShowID: g.ShowID, Out: out}

	switch g.What {
	case Week, "":
		v := viewmodel.Week(p, p.Now())
		if g.JSON {
			return encode(out, v)
		}
		pp.Week(v)
	case History:
		v := viewmodel.History(p.History())
		if g.JSON {
			return encode(out, v)
		}
		pp.History(v)
	case Shopping:
		items := p.ShoppingList()
		if g.JSON {
			return encode(out, items)
		}
		pp.Shopping(items)
	case Favorites:
		names := p.Favorites()
		if g.JSON {
			return encode(out, names)
		}
		pp.Dishes("お気に入り", names)
	default:
		return fmt.Errorf("unknown section %q", g.What)
	}
	return nil
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/kondate/pkg/store"
)

// Info prints where state is kept and which keys it holds.
type Info struct {
	Config *store.FileConfig
	Store  *store.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("KONDATE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "KONDATE_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "KONDATE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:   ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.backend:", n.Config.Driver())

	if n.Store == nil {
		return fmt.Errorf("failed to open the store")
	}

	_, _ = fmt.Fprintln(out, "Keys:")
	found := 0
	for _, k := range n.Store.Keys(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no keys")
	}
	return nil
}

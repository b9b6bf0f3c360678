// Package export writes the displayed week and shopping list as CSV to a
// file, stdout or the clipboard.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	csvexport "tableflip.dev/kondate/pkg/export"
	"tableflip.dev/kondate/pkg/planner"
)

// ErrNothingToExport is returned when the displayed week is empty.
var ErrNothingToExport = errors.New("エクスポートする献立がありません")

// Export writes the CSV document.
type Export struct {
	Planner *planner.Planner

	// Dir receives a file named after the export date. Ignored when Stdout
	// or Clipboard is set.
	Dir       string
	Stdout    bool
	Clipboard bool
	Out       io.Writer

	// WriteClipboard replaces the system clipboard; defaults to
	// clipboard.WriteAll.
	WriteClipboard func(string) error
}

// Do renders and delivers the document.
func (e *Export) Do(_ context.Context) error {
	if e.Planner == nil {
		return errors.New("can not export, no planner")
	}
	out := e.Out
	if out == nil {
		out = os.Stdout
	}

	var buf bytes.Buffer
	if err := csvexport.WriteCSV(&buf, e.Planner.Meals(), e.Planner.ShoppingList()); err != nil {
		if errors.Is(err, csvexport.ErrNothingToExport) {
			return ErrNothingToExport
		}
		return err
	}

	switch {
	case e.Clipboard:
		write := e.WriteClipboard
		if write == nil {
			write = clipboard.WriteAll
		}
		if err := write(buf.String()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		_, _ = fmt.Fprintln(out, "クリップボードにコピーしました")
	case e.Stdout:
		_, err := out.Write(buf.Bytes())
		return err
	default:
		dir := e.Dir
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, csvexport.Filename(e.Planner.Now()))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "%s に書き出しました\n", path)
	}
	return nil
}

package options

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// ConfirmOptions lets destructive commands skip their confirmation prompt.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// Prompter returns a yes/no prompt reading from cmd's input.
func Prompter(cmd *cobra.Command) func(question string) (bool, error) {
	return func(question string) (bool, error) {
		prompt := promptui.Prompt{
			Label:     question,
			IsConfirm: true,
			Stdin:     io.NopCloser(cmd.InOrStdin()),
			Stdout:    nopWriteCloser{cmd.OutOrStdout()},
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

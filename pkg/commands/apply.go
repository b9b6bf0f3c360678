package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/runner/apply"
)

// applyFlags are the flags shared by commands that run one dispatch command.
type applyFlags struct {
	week    options.WeekOptions
	confirm options.ConfirmOptions
	output  options.OutputOptions
}

func (f *applyFlags) add(cmd *cobra.Command, confirm bool) {
	options.AddWeekArgs(cmd, &f.week)
	options.AddOutputArg(cmd, &f.output)
	if confirm {
		options.AddConfirmArgs(cmd, &f.confirm)
	}
}

// run opens a session and dispatches name with args.
func (f *applyFlags) run(cmd *cobra.Command, name string, args dispatch.Args, showWeek bool) error {
	s, err := openSession(cmd, &f.week)
	if err != nil {
		return f.output.HandleError(err)
	}
	defer s.Close()

	a := apply.Apply{
		Table:    s.table,
		Command:  name,
		Args:     args,
		Yes:      f.confirm.Yes,
		Confirm:  options.Prompter(cmd),
		ShowWeek: showWeek,
		JSON:     f.output.JSON,
		Out:      cmd.OutOrStdout(),
	}
	return f.output.HandleError(a.Do(cmd.Context()))
}

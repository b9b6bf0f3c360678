package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
)

func addDark(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:       "dark [on|off]",
		Short:     "set or toggle dark mode for the ui",
		Example:   "\nkondate dark\nkondate dark off\n",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := dispatch.Args{}
			if len(args) == 1 {
				a["value"] = args[0]
			}
			return f.run(cmd, dispatch.CmdDarkMode, a, false)
		},
	}

	options.AddOutputArg(cmd, &f.output)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "print the week again whenever it changes",
		Long: `Print the week, then print it again whenever another kondate process
changes it. Needs the diskv driver.`,
		Example: "\nkondate watch\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, wo)
			if err != nil {
				return err
			}
			defer s.Close()
			w := watch.Watch{Store: s.store, Planner: s.planner, Out: cmd.OutOrStdout()}
			return w.Do(cmd.Context())
		},
	}

	options.AddWeekArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}

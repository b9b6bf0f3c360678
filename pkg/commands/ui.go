package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
kondate ui
kondate ui --week 1
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, wo)
			if err != nil {
				return err
			}
			defer s.Close()
			i := ui.UI{
				Table:        s.table,
				Store:        s.store,
				Logger:       s.log,
				SuggestDelay: s.cfg.SuggestDelay,
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddWeekArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}

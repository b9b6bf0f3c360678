package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}
	e := &export.Export{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "write the week and shopping list as CSV",
		Long: `Write the week and the shopping list as CSV. By default the file
献立_YYYYMMDD.csv is created in --dir.`,
		Example: `
kondate export
kondate export --stdout > plan.csv
kondate export --clipboard
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, wo)
			if err != nil {
				return err
			}
			defer s.Close()
			e.Planner = s.planner
			e.Out = cmd.OutOrStdout()
			return e.Do(cmd.Context())
		},
	}

	options.AddWeekArgs(cmd, wo)
	cmd.Flags().StringVarP(&e.Dir, "dir", "d", ".", "Directory for the CSV file.")
	cmd.Flags().BoolVar(&e.Stdout, "stdout", false, "Write the CSV to stdout.")
	cmd.Flags().BoolVarP(&e.Clipboard, "clipboard", "c", false, "Copy the CSV to the clipboard.")
	topLevel.AddCommand(cmd)
}

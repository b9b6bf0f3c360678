package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/runner/get"
)

func addSave(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "save the week to the plan history",
		Long:    "Save the week to the plan history. Only the ten most recent plans are kept.",
		Example: "\nkondate save\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, dispatch.CmdSave, nil, false)
		},
	}

	f.add(cmd, false)
	topLevel.AddCommand(cmd)
}

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Short:   "list saved plans, newest first",
		Example: "\nkondate history --show-id\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			g := get.Get{What: get.History, Planner: s.planner, ShowID: io.ShowID, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLoad(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "load [id]",
		Short: "replace the week with a saved plan",
		Example: `
kondate history --show-id
kondate load 1709720000000 --week 1
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, dispatch.CmdLoad, dispatch.Args{"id": args[0]}, true)
		},
	}

	f.add(cmd, true)
	topLevel.AddCommand(cmd)
}

func addForget(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:     "forget [id]",
		Aliases: []string{"delete-plan"},
		Short:   "delete a saved plan",
		Example: "\nkondate forget 1709720000000 --yes\n",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, dispatch.CmdDeletePlan, dispatch.Args{"id": args[0]}, false)
		},
	}

	f.add(cmd, true)
	topLevel.AddCommand(cmd)
}

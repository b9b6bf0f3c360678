package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/runner/get"
)

func addFav(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorites"},
		Short:   "list favorite dishes",
		Example: `
kondate fav
kondate fav toggle 親子丼
kondate fav plan 親子丼
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			g := get.Get{What: get.Favorites, Planner: s.planner, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	toggle := &applyFlags{}
	toggleCmd := &cobra.Command{
		Use:   "toggle [dish]",
		Short: "add or remove a favorite",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggle.run(cmd, dispatch.CmdFavorite, dispatch.Args{"name": strings.Join(args, " ")}, false)
		},
	}
	toggle.add(toggleCmd, false)
	cmd.AddCommand(toggleCmd)

	plan := &applyFlags{}
	planCmd := &cobra.Command{
		Use:   "plan [dish]",
		Short: "put a dish on the first free day of the week",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plan.run(cmd, dispatch.CmdAddFavorite, dispatch.Args{"name": strings.Join(args, " ")}, true)
		},
	}
	plan.add(planCmd, false)
	cmd.AddCommand(planCmd)

	topLevel.AddCommand(cmd)
}

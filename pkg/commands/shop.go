package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/runner/get"
)

func addShop(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	list := func(cmd *cobra.Command, _ []string) error {
		s, err := openSession(cmd, nil)
		if err != nil {
			return oo.HandleError(err)
		}
		defer s.Close()
		g := get.Get{What: get.Shopping, Planner: s.planner, ShowID: io.ShowID, JSON: oo.JSON, Out: cmd.OutOrStdout()}
		return oo.HandleError(g.Do(cmd.Context()))
	}

	cmd := &cobra.Command{
		Use:     "shop",
		Aliases: []string{"shopping"},
		Short:   "manage the shopping list",
		Example: `
kondate shop
kondate shop add 牛乳
kondate shop derive
kondate shop toggle 1709720000000
`,
		Args: cobra.NoArgs,
		RunE: list,
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	ls := &cobra.Command{
		Use:   "list",
		Short: "show the shopping list",
		Args:  cobra.NoArgs,
		RunE:  list,
	}
	options.AddShowIDArgs(ls, io)
	options.AddOutputArg(ls, oo)
	cmd.AddCommand(ls)

	addShopCommand(cmd, "add [text]", "add an item", dispatch.CmdShopAdd, cobra.MinimumNArgs(1),
		func(args []string) dispatch.Args { return dispatch.Args{"text": strings.Join(args, " ")} })
	addShopCommand(cmd, "toggle [id]", "mark an item done or not done", dispatch.CmdShopToggle, cobra.ExactArgs(1),
		func(args []string) dispatch.Args { return dispatch.Args{"id": args[0]} })
	addShopCommand(cmd, "rm [id]", "delete an item", dispatch.CmdShopDelete, cobra.ExactArgs(1),
		func(args []string) dispatch.Args { return dispatch.Args{"id": args[0]} })
	addShopCommand(cmd, "derive", "add the ingredients of the week's dinners", dispatch.CmdShopDerive, cobra.NoArgs, nil)
	addShopCommand(cmd, "clean", "remove completed items", dispatch.CmdShopClean, cobra.NoArgs, nil)

	topLevel.AddCommand(cmd)
}

func addShopCommand(parent *cobra.Command, use, short, name string, nargs cobra.PositionalArgs, build func([]string) dispatch.Args) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  nargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var a dispatch.Args
			if build != nil {
				a = build(args)
			}
			return f.run(cmd, name, a, false)
		},
	}

	f.add(cmd, false)
	parent.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "kondate",
		Short: base.Wrap80("Plan a week of dinners, keep a shopping list and saved plans on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWeek(topLevel)
	addSet(topLevel)
	addUnset(topLevel)
	addClear(topLevel)
	addMove(topLevel)
	addSave(topLevel)
	addHistory(topLevel)
	addLoad(topLevel)
	addForget(topLevel)
	addShop(topLevel)
	addFav(topLevel)
	addSearch(topLevel)
	addCategory(topLevel)
	addExport(topLevel)
	addDark(topLevel)
	addUI(topLevel)
	addWatch(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/runner/get"
)

var dayArgs = func() []string {
	out := make([]string, 0, len(meal.Days))
	for _, d := range meal.Days {
		out = append(out, string(d))
	}
	return out
}()

func addWeek(topLevel *cobra.Command) {
	wo := &options.WeekOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "show the dinners planned for a week",
		Example: `
kondate week
kondate week --week 1
kondate week --on 3/20 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, wo)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			g := get.Get{What: get.Week, Planner: s.planner, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddWeekArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addSet(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "set [day] [dish]",
		Short: "set the dinner for a day",
		Long: `Set the dinner for a day. The day is an English weekday, a Japanese
label (月, 月曜日) or 1-7 starting on Monday. Without a dish a picker of
favorites and known dishes is shown.`,
		Example: `
kondate set monday カレー
kondate set 金 寿司 --week 1
kondate set tuesday
`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: dayArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dish := strings.Join(args[1:], " ")
			if dish == "" {
				day, err := meal.ParseDay(args[0])
				if err != nil {
					return f.output.HandleError(err)
				}
				if dish, err = pickDish(cmd, day); err != nil {
					return f.output.HandleError(err)
				}
			}
			return f.run(cmd, dispatch.CmdSet, dispatch.Args{
				"day":  args[0],
				"dish": dish,
			}, true)
		},
	}

	f.add(cmd, false)
	topLevel.AddCommand(cmd)
}

func addUnset(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:       "unset [day]",
		Short:     "remove the dinner for a day",
		Example:   "\nkondate unset 水\n",
		Args:      cobra.ExactArgs(1),
		ValidArgs: dayArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, dispatch.CmdSet, dispatch.Args{"day": args[0]}, true)
		},
	}

	f.add(cmd, false)
	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "remove every dinner of the week",
		Example: "\nkondate clear --yes\n",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, dispatch.CmdClear, nil, true)
		},
	}

	f.add(cmd, true)
	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command) {
	f := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "move [from] [to]",
		Short: "move a dinner to another day, swapping if that day is taken",
		Example: `
kondate move monday friday
kondate move 月 金
`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: dayArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd, dispatch.CmdMove, dispatch.Args{"from": args[0], "to": args[1]}, true)
		},
	}

	f.add(cmd, false)
	topLevel.AddCommand(cmd)
}

func pickDish(cmd *cobra.Command, day meal.Day) (string, error) {
	s, err := openSession(cmd, nil)
	if err != nil {
		return "", err
	}
	favorites := s.planner.Favorites()
	s.Close()
	return options.PickDish(cmd, day.LongLabel(), favorites)
}

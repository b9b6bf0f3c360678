package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/printers"
)

func addSearch(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	limit := meal.DefaultSuggestLimit

	cmd := &cobra.Command{
		Use:     "search [query]",
		Short:   "suggest dishes matching a query",
		Example: "\nkondate search カレ\n",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, nil)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			query := strings.Join(args, " ")
			names := meal.Suggest(query, limit, s.planner.Favorites()...)
			if oo.JSON {
				if names == nil {
					names = []string{}
				}
				return oo.Print(cmd.OutOrStdout(), names)
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Dishes(query, names)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", limit, "Maximum number of suggestions.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addCategory(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "category [dish]",
		Short: "show the category and ingredients of a dish",
		Example: `
kondate category 麻婆豆腐
kondate category
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return printCatalog(cmd, oo)
			}
			name := strings.Join(args, " ")
			if oo.JSON {
				ingredients := meal.Ingredients(name)
				if ingredients == nil {
					ingredients = []string{}
				}
				return oo.Print(cmd.OutOrStdout(), map[string]any{
					"dish":        name,
					"category":    meal.CategoryOf(name),
					"ingredients": ingredients,
				})
			}
			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Category(name)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

// printCatalog lists the built-in dishes of every category.
func printCatalog(cmd *cobra.Command, oo *options.OutputOptions) error {
	if oo.JSON {
		catalog := make(map[meal.Category][]string, len(meal.Categories))
		for _, c := range meal.Categories {
			catalog[c] = meal.Dishes(c)
		}
		return oo.Print(cmd.OutOrStdout(), catalog)
	}
	pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
	for _, c := range meal.Categories {
		pp.Dishes(string(c), meal.Dishes(c))
	}
	return nil
}

package options

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/meal"
)

// dishChoice is one row of the dish picker. An empty Name is the free text
// entry.
type dishChoice struct {
	Name        string
	Category    meal.Category
	Favorite    bool
	Ingredients string
}

// dishChoices lists favorites first, then the catalog, then a free text row.
func dishChoices(favorites []string) []dishChoice {
	seen := make(map[string]bool)
	var out []dishChoice
	add := func(name string, fav bool) {
		if seen[name] {
			return
		}
		seen[name] = true
		out = append(out, dishChoice{
			Name:        name,
			Category:    meal.CategoryOf(name),
			Favorite:    fav,
			Ingredients: strings.Join(meal.Ingredients(name), "、"),
		})
	}
	for _, f := range favorites {
		add(f, true)
	}
	for _, d := range meal.AllDishes() {
		add(d, false)
	}
	return append(out, dishChoice{})
}

// PickDish lets the user choose a dish for label from favorites and the
// catalog, or type one in.
func PickDish(cmd *cobra.Command, label string, favorites []string) (string, error) {
	choices := dishChoices(favorites)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}の献立?",
		Active:   "➜  {{ if .Name }}{{ .Name | bold }} {{ .Category | green }}{{ if .Favorite }} {{ \"★\" | yellow }}{{ end }}{{ else }}{{ \"入力する...\" | bold }}{{ end }}",
		Inactive: "   {{ if .Name }}{{ .Name }} {{ .Category | cyan }}{{ if .Favorite }} {{ \"★\" | yellow }}{{ end }}{{ else }}{{ \"入力する...\" | faint }}{{ end }}",
		Selected: "{{ if .Name }}{{ .Name | bold }}{{ end }}",
		Details: `
{{ if .Ingredients }}--------- 材料 ----------
{{ .Ingredients }}{{ end }}
`,
	}

	searcher := func(input string, index int) bool {
		c := choices[index]
		if c.Name == "" {
			return true
		}
		name := strings.ReplaceAll(strings.ToLower(c.Name), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     choices,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopWriteCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if choices[i].Name != "" {
		return choices[i].Name, nil
	}

	text := promptui.Prompt{
		Label: "料理名",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  io.NopCloser(cmd.InOrStdin()),
		Stdout: nopWriteCloser{cmd.OutOrStdout()},
	}
	return text.Run()
}

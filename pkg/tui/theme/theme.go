package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/kondate/pkg/meal"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Header HeaderTheme
	Week   WeekTheme
	Footer FooterTheme
	Modal  ModalTheme

	categories map[meal.Category]lipgloss.Style
}

// HeaderTheme styles the title and week range line.
type HeaderTheme struct {
	Title lipgloss.Style
	Range lipgloss.Style
	Dirty lipgloss.Style
}

// WeekTheme styles the day rows.
type WeekTheme struct {
	Day      lipgloss.Style
	Today    lipgloss.Style
	Date     lipgloss.Style
	Dish     lipgloss.Style
	Empty    lipgloss.Style
	Favorite lipgloss.Style
	Cursor   lipgloss.Style
	Moving   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and input lines.
type FooterTheme struct {
	Help       lipgloss.Style
	Status     lipgloss.Style
	Warn       lipgloss.Style
	Prompt     lipgloss.Style
	Suggestion lipgloss.Style
	Selected   lipgloss.Style
}

// ModalTheme styles centered overlays such as confirmations.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Category returns the badge style of a dish category.
func (t Theme) Category(c meal.Category) lipgloss.Style {
	if s, ok := t.categories[c]; ok {
		return s
	}
	return t.categories[meal.Other]
}

// New returns the light or dark theme.
func New(dark bool) Theme {
	var fg, faint, accent, cursorBg color.Color
	if dark {
		fg, faint, accent, cursorBg = lipgloss.Color("252"), lipgloss.Color("241"), lipgloss.Color("212"), lipgloss.Color("237")
	} else {
		fg, faint, accent, cursorBg = lipgloss.Color("235"), lipgloss.Color("246"), lipgloss.Color("163"), lipgloss.Color("254")
	}

	categories := make(map[meal.Category]lipgloss.Style, len(meal.Categories))
	for _, c := range meal.Categories {
		categories[c] = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(c.Color())).
			Padding(0, 1)
	}

	return Theme{
		Dark: dark,
		Header: HeaderTheme{
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Range: lipgloss.NewStyle().Foreground(fg),
			Dirty: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Week: WeekTheme{
			Day:      lipgloss.NewStyle().Foreground(fg).Width(4),
			Today:    lipgloss.NewStyle().Foreground(accent).Bold(true).Width(4),
			Date:     lipgloss.NewStyle().Foreground(faint).Width(6),
			Dish:     lipgloss.NewStyle().Foreground(fg),
			Empty:    lipgloss.NewStyle().Foreground(faint).Italic(true),
			Favorite: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Cursor:   lipgloss.NewStyle().Background(cursorBg),
			Moving:   lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("231")),
		},
		Footer: FooterTheme{
			Help:       lipgloss.NewStyle().Foreground(faint),
			Status:     lipgloss.NewStyle().Foreground(fg),
			Warn:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Prompt:     lipgloss.NewStyle().Foreground(accent).Bold(true),
			Suggestion: lipgloss.NewStyle().Foreground(faint),
			Selected:   lipgloss.NewStyle().Foreground(accent).Reverse(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle().Foreground(fg),
		},
		categories: categories,
	}
}

package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/viewmodel"
)

// summaryWidth bounds history summaries so rows stay on one terminal line.
const summaryWidth = 48

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var categoryColors = map[meal.Category]*color.Color{
	meal.Japanese: color.New(color.FgYellow),
	meal.Western:  color.New(color.FgGreen),
	meal.Chinese:  color.New(color.FgRed),
	meal.Other:    color.New(color.FgMagenta),
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, unit string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d%s\n", count, unit)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " なし\n\n")
}

// Week prints one row per day: date, weekday, dish and category.
func (pp *PrettyPrint) Week(v viewmodel.WeekView) {
	pp.TitleWithCount(v.Range, v.Filled, "/7")

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	star := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range v.Days {
		label := d.Short
		if d.Today {
			label = bold.Sprint(label)
		}
		if d.Empty() {
			tbl.AddRow(d.DateLabel, label, faint.Sprint("未定"), "")
			continue
		}
		dish := d.Dish
		if d.Favorite {
			dish += star.Sprint(" ★")
		}
		tbl.AddRow(d.DateLabel, label, dish, categoryColor(d.Category).Sprint(d.Category))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// History prints saved plans, newest first.
func (pp *PrettyPrint) History(entries []viewmodel.HistoryEntry) {
	pp.TitleWithCount("履歴", len(entries), "件")
	if len(entries) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		row := []interface{}{e.DisplayDate, truncate.StringWithTail(e.Summary, summaryWidth, "…")}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(e.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Shopping prints the list with a check box per item.
func (pp *PrettyPrint) Shopping(items []meal.ShoppingItem) {
	sum := viewmodel.Shopping(items)
	pp.TitleWithCount("買い物リスト", sum.Remaining(), "件残り")
	if len(items) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	auto := color.New(color.Faint)
	for _, it := range items {
		var b strings.Builder
		if pp.ShowID {
			b.WriteString(y.Sprint(strconv.FormatInt(it.ID, 10)))
			b.WriteString("  ")
		}
		if it.Completed {
			b.WriteString("[x] ")
			b.WriteString(done.Sprint(it.Text))
		} else {
			b.WriteString("[ ] ")
			b.WriteString(it.Text)
		}
		if it.AutoGenerated {
			b.WriteString(auto.Sprint(" (自動)"))
		}
		_, _ = fmt.Fprintln(pp.out(), b.String())
	}
	pp.NewLine()
}

// Dishes prints a titled list of dish names with their category.
func (pp *PrettyPrint) Dishes(title string, names []string) {
	pp.TitleWithCount(title, len(names), "件")
	if len(names) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, n := range names {
		c := meal.CategoryOf(n)
		tbl.AddRow(n, categoryColor(c).Sprint(c))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Category prints the category of a dish and its known ingredients.
func (pp *PrettyPrint) Category(name string) {
	c := meal.CategoryOf(name)
	_, _ = fmt.Fprintf(pp.out(), "%s: %s\n", name, categoryColor(c).Sprint(c))
	if ing := meal.Ingredients(name); len(ing) > 0 {
		faint := color.New(color.Faint)
		_, _ = faint.Fprintf(pp.out(), "  材料: %s\n", strings.Join(ing, "、"))
	}
}

// Notice prints a dispatch-style message, in yellow when it is a warning.
func (pp *PrettyPrint) Notice(warn bool, msg string) {
	if msg == "" {
		return
	}
	if warn {
		_, _ = color.New(color.FgYellow).Fprintln(pp.out(), msg)
		return
	}
	_, _ = fmt.Fprintln(pp.out(), msg)
}

func categoryColor(c meal.Category) *color.Color {
	if v, ok := categoryColors[c]; ok {
		return v
	}
	return categoryColors[meal.Other]
}

package options

import (
	"testing"
	"time"
)

func TestWeekOptionsGetOffset(t *testing.T) {
	now := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local)
	tests := map[string]struct {
		opts WeekOptions
		want int
	}{
		"default":       {want: 0},
		"relative":      {opts: WeekOptions{Offset: -2}, want: -2},
		"same week":     {opts: WeekOptions{OnString: "2024-3-10"}, want: 0},
		"next monday":   {opts: WeekOptions{OnString: "2024-3-11"}, want: 1},
		"short form":    {opts: WeekOptions{OnString: "3/20"}, want: 2},
		"previous year": {opts: WeekOptions{OnString: "2023-12-31"}, want: -10},
		"date wins":     {opts: WeekOptions{Offset: 5, OnString: "2024-2-28"}, want: -1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.opts.GetOffset(now)
			if err != nil {
				t.Fatalf("GetOffset: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestWeekOptionsBadDate(t *testing.T) {
	o := WeekOptions{OnString: "next tuesday"}
	if _, err := o.GetOffset(time.Now()); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestDishChoicesFavoritesFirst(t *testing.T) {
	choices := dishChoices([]string{"祖母のおでん", "カレー"})
	if choices[0].Name != "祖母のおでん" || !choices[0].Favorite {
		t.Fatalf("first choice = %+v", choices[0])
	}
	if choices[1].Name != "カレー" || !choices[1].Favorite || choices[1].Ingredients == "" {
		t.Fatalf("second choice = %+v", choices[1])
	}
	curry := 0
	for _, c := range choices {
		if c.Name == "カレー" {
			curry++
		}
	}
	if curry != 1 {
		t.Fatalf("カレー listed %d times", curry)
	}
	if last := choices[len(choices)-1]; last.Name != "" {
		t.Fatalf("last choice should be free text, got %+v", last)
	}
}

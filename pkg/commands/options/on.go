package options

import (
	"math"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/kondate/pkg/week"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// WeekOptions selects the displayed week, either relative to this week or by
// any date inside it.
type WeekOptions struct {
	Offset   int
	OnString string
}

func AddWeekArgs(cmd *cobra.Command, o *WeekOptions) {
	cmd.PersistentFlags().IntVarP(&o.Offset, "week", "w", 0,
		"Week relative to this one, example: --week=1 for next week.")
	cmd.PersistentFlags().StringVar(&o.OnString, "on", "",
		`Show the week containing a date, example: --on="2024-3-6" or --on="3/6".`)
}

// GetOffset resolves the flags to a week offset from now.
func (o *WeekOptions) GetOffset(now time.Time) (int, error) {
	if o.OnString == "" {
		return o.Offset, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return 0, err
		}
		t = t.AddDate(now.Year(), 0, 0)
	}
	// Rounded, a DST shift inside the span cannot lose a week.
	weeks := week.MondayOf(t, 0).Sub(week.MondayOf(now, 0)).Hours() / (24 * 7)
	return int(math.Round(weeks)), nil
}

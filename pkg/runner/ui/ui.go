package ui

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/store"
	teaui "tableflip.dev/kondate/pkg/tui/app"
)

// UI launches the interactive week planner.
type UI struct {
	Table        *dispatch.Table
	Store        *store.Store
	Logger       *zap.Logger
	SuggestDelay time.Duration
}

func (u *UI) Do(_ context.Context) error {
	if u.Table == nil {
		return errors.New("can not start ui, no command table")
	}
	return teaui.Run(u.Table, teaui.Options{
		Store:        u.Store,
		Logger:       u.Logger,
		SuggestDelay: u.SuggestDelay,
	})
}

package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/kondate/pkg/commands/options"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/store"
)

// session is the state shared by every command: config, logger, store and
// the planner bound to the requested week.
type session struct {
	cfg     *store.FileConfig
	log     *zap.Logger
	store   *store.Store
	planner *planner.Planner
	table   *dispatch.Table
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
		}
		config.Level = lvl
	}
	return config.Build()
}

func openSession(cmd *cobra.Command, wo *options.WeekOptions) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	warn := color.New(color.FgYellow)
	s := store.New(kv,
		store.WithLogger(log),
		store.WithWriteFaultHandler(func(key string, err error) {
			_, _ = warn.Fprintf(cmd.ErrOrStderr(), "保存に失敗しました (%s): %v\n", key, err)
		}),
	)
	p := planner.New(s, planner.WithLogger(log))

	if wo != nil {
		offset, err := wo.GetOffset(p.Now())
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		p.ChangeWeek(offset)
	}

	return &session{
		cfg:     cfg,
		log:     log,
		store:   s,
		planner: p,
		table:   dispatch.New(p),
	}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "close store: %v\n", err)
	}
	_ = s.log.Sync()
}

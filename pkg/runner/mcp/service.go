// Package mcp provides the Model Context Protocol server integration for kondate.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/viewmodel"
)

// Service adapts the dispatch table and planner views for the MCP server.
type Service struct {
	Table *dispatch.Table
}

// ErrSnapshotNotFound is returned when a history entry cannot be located.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// CommandResult is the response of every mutation tool: the dispatch
// outcome plus the week as it looks afterwards.
type CommandResult struct {
	Command string             `json:"command"`
	Result  dispatch.Result    `json:"result"`
	Week    viewmodel.WeekView `json:"week"`
	Dirty   bool               `json:"dirty,omitempty"`
}

// ShoppingDTO is the shopping list with its counts.
type ShoppingDTO struct {
	Items   []meal.ShoppingItem       `json:"items"`
	Summary viewmodel.ShoppingSummary `json:"summary"`
}

// SnapshotDTO is one history entry with its full plan.
type SnapshotDTO struct {
	viewmodel.HistoryEntry
	Meals meal.Meals `json:"meals"`
}

// NewService builds a service over t.
func NewService(t *dispatch.Table) *Service {
	return &Service{Table: t}
}

func (s *Service) planner() (*planner.Planner, error) {
	if s.Table == nil || s.Table.Planner() == nil {
		return nil, errors.New("planner is not configured")
	}
	return s.Table.Planner(), nil
}

// Run dispatches a named command.
func (s *Service) Run(ctx context.Context, name string, args dispatch.Args) (*CommandResult, error) {
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	res, err := s.Table.Dispatch(name, args)
	if err != nil {
		return nil, err
	}
	return &CommandResult{
		Command: name,
		Result:  res,
		Week:    viewmodel.Week(p, p.Now()),
		Dirty:   res.Dirty,
	}, nil
}

// Week returns the displayed week.
func (s *Service) Week(ctx context.Context) (viewmodel.WeekView, error) {
	p, err := s.planner()
	if err != nil {
		return viewmodel.WeekView{}, err
	}
	return viewmodel.Week(p, p.Now()), nil
}

// History returns saved plan summaries, newest first.
func (s *Service) History(ctx context.Context) ([]viewmodel.HistoryEntry, error) {
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	return viewmodel.History(p.History()), nil
}

// SnapshotByID returns one saved plan.
func (s *Service) SnapshotByID(ctx context.Context, id int64) (*SnapshotDTO, error) {
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	snap, ok := p.Snapshot(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotNotFound, id)
	}
	return &SnapshotDTO{
		HistoryEntry: viewmodel.History([]meal.Snapshot{snap})[0],
		Meals:        snap.Meals,
	}, nil
}

// Shopping returns the shopping list.
func (s *Service) Shopping(ctx context.Context) (*ShoppingDTO, error) {
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	items := p.ShoppingList()
	return &ShoppingDTO{Items: items, Summary: viewmodel.Shopping(items)}, nil
}

// Favorites returns favorite dishes in insertion order.
func (s *Service) Favorites(ctx context.Context) ([]string, error) {
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	return p.Favorites(), nil
}

// Search suggests catalog dishes and favorites matching query.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]string, error) {
	p, err := s.planner()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is required")
	}
	if limit <= 0 {
		limit = meal.DefaultSuggestLimit
	}
	return meal.Suggest(query, limit, p.Favorites()...), nil
}

// ToolName maps a dispatch command name to its MCP tool name.
func ToolName(command string) string {
	return strings.ReplaceAll(command, "-", "_")
}

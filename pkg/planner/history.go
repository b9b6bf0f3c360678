package planner

import (
	"fmt"

	"tableflip.dev/kondate/pkg/meal"
)

// SaveSnapshot prepends a copy of the current week to history, evicting the
// oldest entry past HistoryLimit.
func (p *Planner) SaveSnapshot() (meal.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.meals.Empty() {
		return meal.Snapshot{}, ErrNothingToSave
	}
	now := p.now()
	snap := meal.Snapshot{
		ID:          p.nextID(),
		DisplayDate: fmt.Sprintf("%d/%d/%d", now.Year(), int(now.Month()), now.Day()),
		Meals:       p.meals.Clone(),
		CreatedAt:   meal.At(now),
	}
	history := make([]meal.Snapshot, 0, len(p.history)+1)
	history = append(history, snap)
	history = append(history, p.history...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	p.history = history
	p.persistHistory()
	return snap.Clone(), nil
}

// LoadSnapshot replaces the current week with a copy of snapshot id. It
// reports false when no such snapshot exists. Overwriting a non-empty week
// needs confirmation.
func (p *Planner) LoadSnapshot(id int64, confirmed bool) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.snapshotIndex(id)
	if i < 0 {
		return false, nil
	}
	if !p.meals.Empty() && !confirmed {
		return false, ErrNotConfirmed
	}
	p.meals = p.history[i].Meals.Clone()
	p.persistMeals()
	return true, nil
}

// DeleteSnapshot removes snapshot id once confirmed. It reports false when
// no such snapshot exists.
func (p *Planner) DeleteSnapshot(id int64, confirmed bool) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i := p.snapshotIndex(id)
	if i < 0 {
		return false, nil
	}
	if !confirmed {
		return false, ErrNotConfirmed
	}
	p.history = append(p.history[:i:i], p.history[i+1:]...)
	p.persistHistory()
	return true, nil
}

// History returns copies of the saved snapshots, newest first.
func (p *Planner) History() []meal.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]meal.Snapshot, len(p.history))
	for i, h := range p.history {
		out[i] = h.Clone()
	}
	return out
}

// Snapshot returns a copy of snapshot id.
func (p *Planner) Snapshot(id int64) (meal.Snapshot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.snapshotIndex(id); i >= 0 {
		return p.history[i].Clone(), true
	}
	return meal.Snapshot{}, false
}

func (p *Planner) snapshotIndex(id int64) int {
	for i, h := range p.history {
		if h.ID == id {
			return i
		}
	}
	return -1
}

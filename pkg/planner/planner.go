// Package planner is the in-memory planner state and the mutation operations
// that keep it in step with the store. Every mutation validates, updates
// memory and then writes through; a failed write leaves memory as is and
// marks the planner dirty until a later write succeeds.
package planner

import (
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/store"
	"tableflip.dev/kondate/pkg/week"
)

// HistoryLimit is the number of snapshots kept, newest first.
const HistoryLimit = 10

var (
	ErrNotConfirmed     = errors.New("planner: confirmation required")
	ErrNothingToSave    = errors.New("planner: nothing to save")
	ErrAllSlotsOccupied = errors.New("planner: all slots occupied")
	ErrNothingToAdd     = errors.New("planner: nothing to add")
	ErrEmptyName        = errors.New("planner: dish name is empty")
)

// Planner owns the session state. It is safe for concurrent use; the MCP
// server may call it from several request goroutines.
type Planner struct {
	mu    sync.Mutex
	store *store.Store
	log   *zap.Logger
	now   func() time.Time

	offset    int
	meals     meal.Meals
	history   []meal.Snapshot
	shopping  []meal.ShoppingItem
	favorites []string
	darkMode  bool

	lastID int64
	dirty  bool
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the planner logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// New loads the persisted state for the current week.
func New(s *store.Store, opts ...Option) *Planner {
	p := &Planner{
		store: s,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.load()
	return p
}

// Reload re-reads everything from the store, keeping the week offset. Used
// when another process changed the store underneath us.
func (p *Planner) Reload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
}

func (p *Planner) load() {
	p.history = store.Get(p.store, store.KeyHistory, []meal.Snapshot{})
	if len(p.history) > HistoryLimit {
		p.history = p.history[:HistoryLimit]
	}
	p.shopping = store.Get(p.store, store.KeyShopping, []meal.ShoppingItem{})
	p.favorites = dedupe(store.Get(p.store, store.KeyFavorites, []string{}))
	p.darkMode = store.Get(p.store, store.KeyDarkMode, false)

	for _, h := range p.history {
		p.seenID(h.ID)
	}
	for _, it := range p.shopping {
		p.seenID(it.ID)
	}
	p.loadWeek()
}

// loadWeek replaces meals with the partition for the current offset. The
// legacy single-week key is only consulted for the current week and only
// while that week has never been written.
func (p *Planner) loadWeek() {
	key := store.MealsKey(p.weekKey())
	if p.offset == 0 && !p.store.Has(key) {
		p.meals = store.Get(p.store, store.KeyLegacyMeals, meal.Meals{}).Normalize()
		return
	}
	p.meals = store.Get(p.store, key, meal.Meals{}).Normalize()
}

func (p *Planner) monday() time.Time {
	return week.MondayOf(p.now(), p.offset)
}

func (p *Planner) weekKey() string {
	return week.Key(p.monday())
}

// write persists value and tracks the dirty flag.
func (p *Planner) write(key string, value any) {
	if p.store.Set(key, value) {
		p.dirty = false
		return
	}
	p.dirty = true
}

func (p *Planner) persistMeals() {
	p.write(store.MealsKey(p.weekKey()), p.meals)
}

func (p *Planner) persistHistory() {
	p.write(store.KeyHistory, p.history)
}

func (p *Planner) persistShopping() {
	p.write(store.KeyShopping, p.shopping)
}

func (p *Planner) persistFavorites() {
	p.write(store.KeyFavorites, p.favorites)
}

// nextID returns a millisecond timestamp, bumped past any id already handed
// out so ids stay unique when several are minted in the same millisecond.
func (p *Planner) nextID() int64 {
	id := p.now().UnixMilli()
	if id <= p.lastID {
		id = p.lastID + 1
	}
	p.lastID = id
	return id
}

func (p *Planner) seenID(id int64) {
	if id > p.lastID {
		p.lastID = id
	}
}

// Dirty reports whether the last write failed.
func (p *Planner) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dirty
}

// Now returns the planner clock's current time.
func (p *Planner) Now() time.Time {
	return p.now()
}

// SetSlot stores name in the slot, or empties it when name is blank.
func (p *Planner) SetSlot(day meal.Day, mealType meal.MealType, name string) error {
	key, err := meal.NewKey(day, mealType)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if name = strings.TrimSpace(name); name == "" {
		delete(p.meals, key)
	} else {
		p.meals[key] = name
	}
	p.persistMeals()
	return nil
}

// Slot returns the dish planned in a slot.
func (p *Planner) Slot(day meal.Day, mealType meal.MealType) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	name, ok := p.meals[meal.Key(day, mealType)]
	return name, ok
}

// Meals returns a copy of the current week's plan.
func (p *Planner) Meals() meal.Meals {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.meals.Clone()
}

// ClearAll empties the current week once confirmed.
func (p *Planner) ClearAll(confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.meals = meal.Meals{}
	p.persistMeals()
	return nil
}

// Move exchanges the dishes at src and dst, treating an empty slot as a
// dish of its own, so moving back restores both. It reports whether
// anything changed.
func (p *Planner) Move(src, dst meal.SlotKey) bool {
	if src == dst {
		return false
	}
	if _, _, err := meal.ParseKey(string(src)); err != nil {
		return false
	}
	if _, _, err := meal.ParseKey(string(dst)); err != nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	moving, fromOK := p.meals[src]
	prior, toOK := p.meals[dst]
	if !fromOK && !toOK {
		return false
	}
	if toOK {
		p.meals[src] = prior
	} else {
		delete(p.meals, src)
	}
	if fromOK {
		p.meals[dst] = moving
	} else {
		delete(p.meals, dst)
	}
	p.persistMeals()
	return true
}

// AddToFirstEmpty places name in the first empty dinner slot, Monday first.
func (p *Planner) AddToFirstEmpty(name string) (meal.Day, error) {
	if name = strings.TrimSpace(name); name == "" {
		return "", ErrEmptyName
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range meal.Days {
		key := meal.Key(d, meal.Dinner)
		if _, ok := p.meals[key]; ok {
			continue
		}
		p.meals[key] = name
		p.persistMeals()
		return d, nil
	}
	return "", ErrAllSlotsOccupied
}

// ChangeWeek moves the week cursor by delta weeks and loads that partition.
func (p *Planner) ChangeWeek(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offset += delta
	p.loadWeek()
}

// GoToCurrentWeek resets the week cursor.
func (p *Planner) GoToCurrentWeek() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offset = 0
	p.loadWeek()
}

// WeekOffset is the signed distance in weeks from the current week.
func (p *Planner) WeekOffset() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.offset
}

// Monday is the first day of the displayed week.
func (p *Planner) Monday() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.monday()
}

// WeekKey is the partition identifier of the displayed week.
func (p *Planner) WeekKey() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.weekKey()
}

// SetDarkMode stores the theme preference.
func (p *Planner) SetDarkMode(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.darkMode = on
	p.write(store.KeyDarkMode, on)
}

// ToggleDarkMode flips the theme preference and returns the new value.
func (p *Planner) ToggleDarkMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.darkMode = !p.darkMode
	p.write(store.KeyDarkMode, p.darkMode)
	return p.darkMode
}

// DarkMode reports the theme preference.
func (p *Planner) DarkMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.darkMode
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if _, ok := seen[n]; ok || n == "" {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

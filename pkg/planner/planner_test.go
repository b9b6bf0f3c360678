package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/store"
)

// flakyKV fails writes while fail is set.
type flakyKV struct {
	store.KV
	fail bool
}

func (f *flakyKV) Write(key string, val []byte) error {
	if f.fail {
		return errors.New("quota exceeded")
	}
	return f.KV.Write(key, val)
}

var wednesday = time.Date(2024, time.March, 6, 19, 30, 0, 0, time.Local)

func fixedClock() time.Time { return wednesday }

func newTestPlanner(t *testing.T, kv store.KV) *Planner {
	t.Helper()
	if kv == nil {
		kv = store.NewMemory()
	}
	return New(store.New(kv), WithClock(fixedClock))
}

func TestSetSlotKeepsLastNonEmptyValue(t *testing.T) {
	p := newTestPlanner(t, nil)
	steps := []struct {
		day  meal.Day
		name string
	}{
		{meal.Monday, "カレー"},
		{meal.Tuesday, "  餃子 "},
		{meal.Monday, "ハンバーグ"},
		{meal.Wednesday, "鍋"},
		{meal.Wednesday, "   "},
	}
	for _, s := range steps {
		if err := p.SetSlot(s.day, meal.Dinner, s.name); err != nil {
			t.Fatalf("SetSlot(%s, %q): %v", s.day, s.name, err)
		}
	}
	want := meal.Meals{"monday-dinner": "ハンバーグ", "tuesday-dinner": "餃子"}
	if diff := cmp.Diff(want, p.Meals()); diff != "" {
		t.Fatalf("meals mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSlotRejectsUnknownSlot(t *testing.T) {
	p := newTestPlanner(t, nil)
	if err := p.SetSlot("funday", meal.Dinner, "x"); !errors.Is(err, meal.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if err := p.SetSlot(meal.Monday, "brunch", "x"); !errors.Is(err, meal.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	a, b := meal.Key(meal.Monday, meal.Dinner), meal.Key(meal.Friday, meal.Dinner)
	cases := map[string]meal.Meals{
		"both empty":   {},
		"source only":  {a: "カレー"},
		"target only":  {b: "鍋"},
		"both present": {a: "カレー", b: "鍋"},
	}
	for name, start := range cases {
		t.Run(name, func(t *testing.T) {
			p := newTestPlanner(t, nil)
			for k, v := range start {
				if err := p.SetSlot(k.Day(), k.MealType(), v); err != nil {
					t.Fatal(err)
				}
			}
			p.Move(a, b)
			p.Move(b, a)
			if diff := cmp.Diff(start, p.Meals()); diff != "" {
				t.Fatalf("round trip changed meals (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMoveSwapsAndRelocates(t *testing.T) {
	p := newTestPlanner(t, nil)
	a, b, c := meal.Key(meal.Monday, meal.Dinner), meal.Key(meal.Tuesday, meal.Dinner), meal.Key(meal.Sunday, meal.Dinner)
	_ = p.SetSlot(meal.Monday, meal.Dinner, "カレー")
	_ = p.SetSlot(meal.Tuesday, meal.Dinner, "鍋")

	if !p.Move(a, b) {
		t.Fatal("expected swap to change state")
	}
	if diff := cmp.Diff(meal.Meals{a: "鍋", b: "カレー"}, p.Meals()); diff != "" {
		t.Fatalf("swap mismatch (-want +got):\n%s", diff)
	}
	if !p.Move(b, c) {
		t.Fatal("expected relocation to change state")
	}
	if diff := cmp.Diff(meal.Meals{a: "鍋", c: "カレー"}, p.Meals()); diff != "" {
		t.Fatalf("relocation mismatch (-want +got):\n%s", diff)
	}
	if p.Move(a, a) {
		t.Fatal("moving onto itself should be a no-op")
	}
	if p.Move(b, meal.Key(meal.Wednesday, meal.Dinner)) {
		t.Fatal("moving between empty slots should be a no-op")
	}
	if !p.Move(b, a) {
		t.Fatal("moving an empty slot onto a dish should change state")
	}
	if diff := cmp.Diff(meal.Meals{b: "鍋", c: "カレー"}, p.Meals()); diff != "" {
		t.Fatalf("empty source mismatch (-want +got):\n%s", diff)
	}
}

func TestClearAllRequiresConfirmation(t *testing.T) {
	p := newTestPlanner(t, nil)
	_ = p.SetSlot(meal.Monday, meal.Dinner, "カレー")
	if err := p.ClearAll(false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if p.Meals().Empty() {
		t.Fatal("declined clear must not change state")
	}
	if err := p.ClearAll(true); err != nil {
		t.Fatal(err)
	}
	if !p.Meals().Empty() {
		t.Fatal("expected empty meals")
	}
}

func TestSaveSnapshotRejectsEmptyPlan(t *testing.T) {
	p := newTestPlanner(t, nil)
	if _, err := p.SaveSnapshot(); !errors.Is(err, ErrNothingToSave) {
		t.Fatalf("expected ErrNothingToSave, got %v", err)
	}
	if n := len(p.History()); n != 0 {
		t.Fatalf("expected empty history, got %d", n)
	}
}

func TestSaveSnapshotCapsHistory(t *testing.T) {
	p := newTestPlanner(t, nil)
	var ids []int64
	for i := 0; i < 11; i++ {
		_ = p.SetSlot(meal.Monday, meal.Dinner, string(rune('A'+i)))
		snap, err := p.SaveSnapshot()
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, snap.ID)
	}
	history := p.History()
	if len(history) != HistoryLimit {
		t.Fatalf("expected %d snapshots, got %d", HistoryLimit, len(history))
	}
	for i, h := range history {
		if want := ids[10-i]; h.ID != want {
			t.Fatalf("history[%d] = %d, want %d", i, h.ID, want)
		}
	}
	if _, ok := p.Snapshot(ids[0]); ok {
		t.Fatal("earliest snapshot should be evicted")
	}
	if history[0].DisplayDate != "2024/3/6" {
		t.Fatalf("unexpected display date %q", history[0].DisplayDate)
	}
}

func TestLoadSnapshotCopiesMeals(t *testing.T) {
	p := newTestPlanner(t, nil)
	_ = p.SetSlot(meal.Monday, meal.Dinner, "カレー")
	snap, err := p.SaveSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	_ = p.SetSlot(meal.Monday, meal.Dinner, "鍋")

	if ok, err := p.LoadSnapshot(snap.ID, false); ok || !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected confirmation error, got ok=%v err=%v", ok, err)
	}
	if ok, err := p.LoadSnapshot(12345, true); ok || err != nil {
		t.Fatalf("unknown id should be a silent no-op, got ok=%v err=%v", ok, err)
	}
	if ok, err := p.LoadSnapshot(snap.ID, true); !ok || err != nil {
		t.Fatalf("load failed: ok=%v err=%v", ok, err)
	}
	if got, _ := p.Slot(meal.Monday, meal.Dinner); got != "カレー" {
		t.Fatalf("expected loaded dish, got %q", got)
	}

	_ = p.SetSlot(meal.Monday, meal.Dinner, "寿司")
	stored, _ := p.Snapshot(snap.ID)
	if stored.Meals["monday-dinner"] != "カレー" {
		t.Fatalf("snapshot aliased live meals: %v", stored.Meals)
	}
}

func TestLoadSnapshotIntoEmptyWeekNeedsNoConfirmation(t *testing.T) {
	p := newTestPlanner(t, nil)
	_ = p.SetSlot(meal.Monday, meal.Dinner, "カレー")
	snap, _ := p.SaveSnapshot()
	_ = p.ClearAll(true)
	if ok, err := p.LoadSnapshot(snap.ID, false); !ok || err != nil {
		t.Fatalf("expected load into empty week, got ok=%v err=%v", ok, err)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	p := newTestPlanner(t, nil)
	_ = p.SetSlot(meal.Monday, meal.Dinner, "カレー")
	snap, _ := p.SaveSnapshot()

	if ok, err := p.DeleteSnapshot(snap.ID, false); ok || !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected confirmation error, got ok=%v err=%v", ok, err)
	}
	if ok, err := p.DeleteSnapshot(snap.ID, true); !ok || err != nil {
		t.Fatalf("delete failed: ok=%v err=%v", ok, err)
	}
	if ok, err := p.DeleteSnapshot(snap.ID, true); ok || err != nil {
		t.Fatalf("second delete should be a no-op, got ok=%v err=%v", ok, err)
	}
}

func TestToggleFavoriteIsInvolution(t *testing.T) {
	p := newTestPlanner(t, nil)
	p.ToggleFavorite("餃子")
	before := p.Favorites()
	if !p.ToggleFavorite("カレー") || !p.IsFavorite("カレー") {
		t.Fatal("expected カレー added")
	}
	if p.ToggleFavorite("カレー") {
		t.Fatal("expected カレー removed")
	}
	if diff := cmp.Diff(before, p.Favorites()); diff != "" {
		t.Fatalf("favorites changed (-want +got):\n%s", diff)
	}
}

func TestAddToFirstEmpty(t *testing.T) {
	p := newTestPlanner(t, nil)
	for _, d := range meal.Days {
		if d == meal.Thursday {
			continue
		}
		_ = p.SetSlot(d, meal.Dinner, "x")
	}
	day, err := p.AddToFirstEmpty("鍋")
	if err != nil || day != meal.Thursday {
		t.Fatalf("expected thursday, got %q err=%v", day, err)
	}
	before := p.Meals()
	if _, err := p.AddToFirstEmpty("寿司"); !errors.Is(err, ErrAllSlotsOccupied) {
		t.Fatalf("expected ErrAllSlotsOccupied, got %v", err)
	}
	if diff := cmp.Diff(before, p.Meals()); diff != "" {
		t.Fatalf("full week changed (-want +got):\n%s", diff)
	}
}

func TestShoppingItems(t *testing.T) {
	p := newTestPlanner(t, nil)
	if _, ok := p.AddShoppingItem("   "); ok {
		t.Fatal("blank item should be ignored")
	}
	a, _ := p.AddShoppingItem("牛乳")
	b, _ := p.AddShoppingItem("卵")
	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both %d", a.ID)
	}
	if !p.ToggleShoppingItem(a.ID) {
		t.Fatal("toggle failed")
	}
	list := p.ShoppingList()
	if !list[0].Completed || list[0].CompletedAt == nil {
		t.Fatalf("expected completed item with timestamp: %+v", list[0])
	}
	if p.ToggleShoppingItem(999) {
		t.Fatal("unknown id should be a no-op")
	}
	if n := p.ClearCompletedShoppingItems(); n != 1 {
		t.Fatalf("expected one completed item removed, got %d", n)
	}
	if !p.DeleteShoppingItem(b.ID) || p.DeleteShoppingItem(b.ID) {
		t.Fatal("delete should succeed once")
	}
	if n := len(p.ShoppingList()); n != 0 {
		t.Fatalf("expected empty list, got %d", n)
	}
}

func TestCurryEndToEnd(t *testing.T) {
	p := newTestPlanner(t, nil)
	if err := p.SetSlot(meal.Monday, meal.Dinner, "カレー"); err != nil {
		t.Fatal(err)
	}
	if got := p.Meals()["monday-dinner"]; got != "カレー" {
		t.Fatalf("unexpected slot %q", got)
	}
	if c := meal.CategoryOf("カレー"); c != meal.Japanese {
		t.Fatalf("expected 和食, got %s", c)
	}
	n, err := p.DeriveShoppingItems()
	if err != nil || n != 6 {
		t.Fatalf("expected 6 items, got %d err=%v", n, err)
	}
	var texts []string
	for _, it := range p.ShoppingList() {
		if it.Completed || !it.AutoGenerated {
			t.Fatalf("unexpected item flags: %+v", it)
		}
		texts = append(texts, it.Text)
	}
	want := []string{"牛肉", "玉ねぎ", "じゃがいも", "人参", "カレールー", "ご飯"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Fatalf("derived items mismatch (-want +got):\n%s", diff)
	}
	if n, err := p.DeriveShoppingItems(); n != 0 || !errors.Is(err, ErrNothingToAdd) {
		t.Fatalf("expected dedup, got %d err=%v", n, err)
	}
}

func TestWeekNavigationUsesIndependentPartitions(t *testing.T) {
	p := newTestPlanner(t, nil)
	_ = p.SetSlot(meal.Monday, meal.Dinner, "カレー")
	thisWeek := p.WeekKey()

	p.ChangeWeek(1)
	if p.WeekOffset() != 1 || p.WeekKey() == thisWeek {
		t.Fatalf("unexpected week %d %q", p.WeekOffset(), p.WeekKey())
	}
	if !p.Meals().Empty() {
		t.Fatalf("next week should start empty, got %v", p.Meals())
	}
	_ = p.SetSlot(meal.Monday, meal.Dinner, "鍋")

	p.ChangeWeek(-1)
	if got := p.Meals()["monday-dinner"]; got != "カレー" {
		t.Fatalf("expected this week's dish, got %q", got)
	}
	p.ChangeWeek(1)
	p.GoToCurrentWeek()
	if p.WeekOffset() != 0 || p.WeekKey() != thisWeek {
		t.Fatalf("expected current week, got %d %q", p.WeekOffset(), p.WeekKey())
	}
	if want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local); !p.Monday().Equal(want) {
		t.Fatalf("unexpected monday %v", p.Monday())
	}
}

func TestLegacyPlanIsReadOnlyAsFallback(t *testing.T) {
	kv := store.NewMemory()
	s := store.New(kv)
	s.Set(store.KeyLegacyMeals, meal.Meals{"friday-dinner": "寿司"})

	p := New(s, WithClock(fixedClock))
	if got := p.Meals()["friday-dinner"]; got != "寿司" {
		t.Fatalf("expected legacy fallback, got %v", p.Meals())
	}
	_ = p.SetSlot(meal.Friday, meal.Dinner, "")

	p = New(s, WithClock(fixedClock))
	if !p.Meals().Empty() {
		t.Fatalf("partition should win over legacy key, got %v", p.Meals())
	}
	legacy := store.Get(s, store.KeyLegacyMeals, meal.Meals{})
	if legacy["friday-dinner"] != "寿司" {
		t.Fatal("legacy key must not be rewritten")
	}
}

func TestStatePersistsAcrossInstances(t *testing.T) {
	kv := store.NewMemory()
	p := newTestPlanner(t, kv)
	_ = p.SetSlot(meal.Tuesday, meal.Dinner, "麻婆豆腐")
	_, _ = p.SaveSnapshot()
	p.AddShoppingItem("豆腐")
	p.ToggleFavorite("麻婆豆腐")
	p.SetDarkMode(true)

	q := newTestPlanner(t, kv)
	if diff := cmp.Diff(p.Meals(), q.Meals()); diff != "" {
		t.Fatalf("meals mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.History(), q.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
	if len(q.ShoppingList()) != 1 || !q.IsFavorite("麻婆豆腐") || !q.DarkMode() {
		t.Fatal("shopping, favorites or dark mode not restored")
	}
	item, _ := q.AddShoppingItem("ねぎ")
	if item.ID <= p.ShoppingList()[0].ID {
		t.Fatalf("new id %d should follow restored ids", item.ID)
	}
}

func TestReloadSeesWritesFromAnotherProcess(t *testing.T) {
	base := t.TempDir()
	open := func() *Planner {
		kv, err := store.NewDiskv(base)
		if err != nil {
			t.Fatalf("open diskv: %v", err)
		}
		t.Cleanup(func() { _ = kv.Close() })
		return newTestPlanner(t, kv)
	}
	a, b := open(), open()

	for _, dish := range []string{"カレー", "餃子"} {
		if err := a.SetSlot(meal.Monday, meal.Dinner, dish); err != nil {
			t.Fatal(err)
		}
		b.Reload()
		if got, _ := b.Slot(meal.Monday, meal.Dinner); got != dish {
			t.Fatalf("stale reload: got %q, want %q", got, dish)
		}
	}
}

func TestWriteFaultKeepsStateAndMarksDirty(t *testing.T) {
	kv := &flakyKV{KV: store.NewMemory()}
	p := newTestPlanner(t, kv)
	kv.fail = true
	if err := p.SetSlot(meal.Monday, meal.Dinner, "カレー"); err != nil {
		t.Fatal(err)
	}
	if got, _ := p.Slot(meal.Monday, meal.Dinner); got != "カレー" {
		t.Fatal("in-memory state must survive a failed write")
	}
	if !p.Dirty() {
		t.Fatal("expected dirty after failed write")
	}
	kv.fail = false
	p.ToggleFavorite("カレー")
	if p.Dirty() {
		t.Fatal("expected clean after successful write")
	}
}

func TestReadFaultFallsBackToDefaults(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Write(store.KeyHistory, []byte("not json"))
	_ = kv.Write(store.KeyShopping, []byte(`{"oops":true}`))
	p := newTestPlanner(t, kv)
	if len(p.History()) != 0 || len(p.ShoppingList()) != 0 {
		t.Fatal("corrupt values should load as empty")
	}
	if p.ToggleDarkMode() != true {
		t.Fatal("dark mode should default to off")
	}
}

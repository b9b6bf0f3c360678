package planner

import (
	"strings"

	"tableflip.dev/kondate/pkg/meal"
)

// AddShoppingItem appends a manual item. Blank text is ignored and reported
// as false.
func (p *Planner) AddShoppingItem(text string) (meal.ShoppingItem, bool) {
	if text = strings.TrimSpace(text); text == "" {
		return meal.ShoppingItem{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	it := p.newItem(text, false)
	p.shopping = append(p.shopping, it)
	p.persistShopping()
	return it, true
}

func (p *Planner) newItem(text string, auto bool) meal.ShoppingItem {
	return meal.ShoppingItem{
		ID:            p.nextID(),
		Text:          text,
		CreatedAt:     meal.At(p.now()),
		AutoGenerated: auto,
	}
}

// ToggleShoppingItem flips the completed flag of item id.
func (p *Planner) ToggleShoppingItem(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.shopping {
		it := &p.shopping[i]
		if it.ID != id {
			continue
		}
		it.Completed = !it.Completed
		if it.Completed {
			ts := meal.At(p.now())
			it.CompletedAt = &ts
		} else {
			it.CompletedAt = nil
		}
		p.persistShopping()
		return true
	}
	return false
}

// DeleteShoppingItem removes item id.
func (p *Planner) DeleteShoppingItem(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, it := range p.shopping {
		if it.ID == id {
			p.shopping = append(p.shopping[:i:i], p.shopping[i+1:]...)
			p.persistShopping()
			return true
		}
	}
	return false
}

// ClearCompletedShoppingItems drops every completed item and returns how
// many were removed.
func (p *Planner) ClearCompletedShoppingItems() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	kept := make([]meal.ShoppingItem, 0, len(p.shopping))
	for _, it := range p.shopping {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	removed := len(p.shopping) - len(kept)
	if removed == 0 {
		return 0
	}
	p.shopping = kept
	p.persistShopping()
	return removed
}

// ShoppingList returns a copy of the list in insertion order.
func (p *Planner) ShoppingList() []meal.ShoppingItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]meal.ShoppingItem, len(p.shopping))
	for i, it := range p.shopping {
		if it.CompletedAt != nil {
			ts := *it.CompletedAt
			it.CompletedAt = &ts
		}
		out[i] = it
	}
	return out
}

// DeriveShoppingItems adds the ingredients of every planned dish that are
// not already on the list, compared case-insensitively. It returns
// ErrNothingToAdd when no item was added.
func (p *Planner) DeriveShoppingItems() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	seen := make(map[string]struct{}, len(p.shopping))
	for _, it := range p.shopping {
		seen[strings.ToLower(strings.TrimSpace(it.Text))] = struct{}{}
	}
	added := 0
	for _, dish := range p.meals.Dishes() {
		for _, ing := range meal.Ingredients(dish) {
			k := strings.ToLower(ing)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			p.shopping = append(p.shopping, p.newItem(ing, true))
			added++
		}
	}
	if added == 0 {
		return 0, ErrNothingToAdd
	}
	p.persistShopping()
	return added, nil
}

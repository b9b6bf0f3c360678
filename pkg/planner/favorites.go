package planner

import "strings"

// ToggleFavorite adds name when absent and removes it when present. It
// returns true when name is a favorite afterwards.
func (p *Planner) ToggleFavorite(name string) bool {
	if name = strings.TrimSpace(name); name == "" {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, f := range p.favorites {
		if f == name {
			p.favorites = append(p.favorites[:i:i], p.favorites[i+1:]...)
			p.persistFavorites()
			return false
		}
	}
	p.favorites = append(p.favorites, name)
	p.persistFavorites()
	return true
}

// IsFavorite reports whether name is a favorite.
func (p *Planner) IsFavorite(name string) bool {
	name = strings.TrimSpace(name)
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, f := range p.favorites {
		if f == name {
			return true
		}
	}
	return false
}

// Favorites returns favorites in insertion order.
func (p *Planner) Favorites() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.favorites))
	copy(out, p.favorites)
	return out
}

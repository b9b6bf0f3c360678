package meal

import (
	"encoding/json"
	"sort"
	"strings"
)

// Meals maps a slot key to a dish name. An absent key is an empty slot.
type Meals map[SlotKey]string

// Clone returns an independent copy; a nil receiver yields an empty map.
func (m Meals) Clone() Meals {
	out := make(Meals, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Empty reports whether no slot is filled.
func (m Meals) Empty() bool {
	return len(m) == 0
}

// Dishes returns the distinct planned dish names in weekday order, then any
// remaining keys in lexical order.
func (m Meals) Dishes() []string {
	seen := make(map[string]struct{}, len(m))
	out := make([]string, 0, len(m))
	add := func(name string) {
		if _, ok := seen[name]; ok || name == "" {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, k := range m.SortedKeys() {
		add(m[k])
	}
	return out
}

// SortedKeys orders keys by weekday, then meal type, unknown keys last.
func (m Meals) SortedKeys() []SlotKey {
	keys := make([]SlotKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := keys[i].Day().Index(), keys[j].Day().Index()
		if di < 0 {
			di = len(Days)
		}
		if dj < 0 {
			dj = len(Days)
		}
		if di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Normalize drops blank names and trims the rest. Values decoded from older
// stores are not guaranteed to be clean.
func (m Meals) Normalize() Meals {
	out := make(Meals, len(m))
	for k, v := range m {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out
}

// Snapshot is a saved copy of a week's meals.
type Snapshot struct {
	ID          int64     `json:"id"`
	DisplayDate string    `json:"displayDate"`
	Meals       Meals     `json:"meals"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// UnmarshalJSON also accepts the older "date" field for DisplayDate.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	type plain Snapshot
	var aux struct {
		plain
		Date string `json:"date"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = Snapshot(aux.plain)
	if s.DisplayDate == "" {
		s.DisplayDate = aux.Date
	}
	s.Meals = s.Meals.Normalize()
	return nil
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	s.Meals = s.Meals.Clone()
	return s
}

// ShoppingItem is one line of the shopping list.
type ShoppingItem struct {
	ID            int64      `json:"id"`
	Text          string     `json:"text"`
	Completed     bool       `json:"completed"`
	CreatedAt     Timestamp  `json:"createdAt"`
	CompletedAt   *Timestamp `json:"completedAt"`
	AutoGenerated bool       `json:"autoGenerated"`
}

package meal

import "strings"

// DefaultSuggestLimit caps the suggestion list shown while typing.
const DefaultSuggestLimit = 5

// Suggest returns dishes whose name contains query, case-insensitively.
// Extra names (favorites) are searched after the catalog; duplicates are
// dropped. A blank query or non-positive limit yields nothing.
func Suggest(query string, limit int, extra ...string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	candidates := append(AllDishes(), extra...)
	for _, dish := range candidates {
		if len(out) == limit {
			break
		}
		if _, ok := seen[dish]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(dish), q) {
			seen[dish] = struct{}{}
			out = append(out, dish)
		}
	}
	return out
}

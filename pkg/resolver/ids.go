package resolver

import (
	"strconv"
	"strings"
)

// NormalizeIDs coerces a raw id list into clean integer ids: ints and decimal
// strings are accepted, whitespace is stripped, empty / duplicate /
// non-numeric entries are dropped, and first-seen order is preserved.
func NormalizeIDs(raw []any) []int {
	ids := make([]int, 0, len(raw))
	seen := make(map[int]bool, len(raw))

	for _, item := range raw {
		var (
			id int
			ok bool
		)
		switch v := item.(type) {
		case int:
			id, ok = v, true
		case int64:
			id, ok = int(v), true
		case float64:
			// JSON numbers decode as float64; only whole values are ids.
			if v == float64(int(v)) {
				id, ok = int(v), true
			}
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.Atoi(s); err == nil {
				id, ok = n, true
			}
		}
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// AsToggleMap interprets a value as a {preset_id: bool} toggle map. It
// succeeds only when every key is a numeric string and every value a bool;
// anything else means the value is already-expanded configuration.
func AsToggleMap(value map[string]any) (map[int]bool, bool) {
	if len(value) == 0 {
		return nil, false
	}
	toggles := make(map[int]bool, len(value))
	for k, v := range value {
		enabled, ok := v.(bool)
		if !ok {
			return nil, false
		}
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, false
		}
		toggles[id] = enabled
	}
	return toggles, true
}

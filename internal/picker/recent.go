package picker

import "encoding/json"

// History keeps the most recently chosen codepoints, newest first, bounded
// to a fixed capacity.
type History struct {
	list     []rune
	capacity int
}

// NewHistory copies seed into a history bounded to capacity. Seeds longer
// than the capacity are truncated from the tail.
func NewHistory(seed []rune, capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	list := append([]rune(nil), seed...)
	if len(list) > capacity {
		list = list[:capacity]
	}
	return &History{list: list, capacity: capacity}
}

// List returns a copy of the history, newest first.
func (h *History) List() []rune {
	return append([]rune(nil), h.list...)
}

// Len reports how many entries the history holds.
func (h *History) Len() int { return len(h.list) }

// Promote moves cp to the front, inserting it if absent and dropping the
// oldest entry when the history is full.
func (h *History) Promote(cp rune) {
	for i, existing := range h.list {
		if existing == cp {
			h.list = append(h.list[:i], h.list[i+1:]...)
			break
		}
	}
	h.list = append([]rune{cp}, h.list...)
	if len(h.list) > h.capacity {
		h.list = h.list[:h.capacity]
	}
}

// EncodeHistory renders a history list as the JSON array persisted in the
// settings store.
func EncodeHistory(list []rune) string {
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeHistory parses a persisted history value, falling back to fallback
// when the value is empty or malformed.
func DecodeHistory(value string, fallback []rune) []rune {
	if value == "" {
		return append([]rune(nil), fallback...)
	}
	var list []rune
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return append([]rune(nil), fallback...)
	}
	return list
}

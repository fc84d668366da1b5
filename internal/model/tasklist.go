package model

import (
	"encoding/json"
)

// TaskList хранится как есть: структура задач серверу не важна
type TaskList json.RawMessage

// EmptyTaskList is what a fresh backend is initialized with.
var EmptyTaskList = TaskList("[]")

// Count returns the number of top-level elements: array length or object key count.
func (l TaskList) Count() int {
	var v any
	if err := json.Unmarshal(l, &v); err != nil {
		return 0
	}
	switch t := v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	}
	return 0
}

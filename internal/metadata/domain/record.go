package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
)

// Record is one row or entity as the renderer holds it. Behaviors only read it.
type Record map[string]any

func (r Record) Clone() Record {
	if r == nil {
		return Record{}
	}
	return maps.Clone(r)
}

func (r Record) Has(key string) bool {
	value, ok := r[key]
	if !ok || value == nil {
		return false
	}
	if s, isString := value.(string); isString {
		return s != ""
	}
	return true
}

func (r Record) String(key string) string {
	value, ok := r[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Int reads numeric values the way they arrive from JSON, query strings or Go callers.
func (r Record) Int(key string) (int, bool) {
	value, ok := r[key]
	if !ok || value == nil {
		return 0, false
	}

	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

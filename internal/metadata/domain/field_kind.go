package domain

//go:generate go tool stringer -type=FieldKind -linecomment -output=field_kind_string.go

import (
	"encoding/json"
	"fmt"
)

// FieldKind is the input widget a descriptor renders as.
type FieldKind int

const (
	FieldKindUnknown      FieldKind = iota // unknown
	FieldKindText                          // input
	FieldKindPassword                      // password
	FieldKindSelect                        // select
	FieldKindAutoComplete                  // autocomplete
	FieldKindRadio                         // radio
	FieldKindSubTable                      // subtable

	// FieldKindTotal is the number of kinds defined
	FieldKindTotal = int(iota)
)

func ParseFieldKind(value string) (FieldKind, error) {
	for i := 1; i < FieldKindTotal; i++ {
		if FieldKind(i).String() == value {
			return FieldKind(i), nil
		}
	}
	return FieldKindUnknown, fmt.Errorf("%w: %q", ErrUnknownFieldKind, value)
}

func (k FieldKind) IsValid() bool {
	return k > FieldKindUnknown && int(k) < FieldKindTotal
}

// HasOptions reports whether the kind picks its value from an option list.
func (k FieldKind) HasOptions() bool {
	switch k {
	case FieldKindSelect, FieldKindAutoComplete, FieldKindRadio:
		return true
	case FieldKindUnknown, FieldKindText, FieldKindPassword, FieldKindSubTable:
		return false
	default:
		return false
	}
}

// AcceptsValue checks the initial value type against the kind.
func (k FieldKind) AcceptsValue(value any) bool {
	if value == nil {
		return true
	}

	switch k {
	case FieldKindText, FieldKindPassword, FieldKindAutoComplete:
		_, ok := value.(string)
		return ok
	case FieldKindSelect, FieldKindRadio:
		switch value.(type) {
		case string, bool, int, int32, int64, float64:
			return true
		default:
			return false
		}
	case FieldKindSubTable:
		switch value.(type) {
		case []Record, []map[string]any:
			return true
		default:
			return false
		}
	case FieldKindUnknown:
		return false
	default:
		return false
	}
}

func (k FieldKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *FieldKind) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("decoding field kind: %w", err)
	}

	kind, err := ParseFieldKind(value)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

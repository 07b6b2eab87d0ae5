package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
)

type RuleKind int

const (
	RuleKindRequired RuleKind = iota + 1
	RuleKindPattern
)

// ValidationRule is one constraint the renderer applies to a field. Only two shapes exist:
// {required: true} and {pattern, message}.
type ValidationRule struct {
	Kind       RuleKind
	Pattern    *regexp.Regexp
	MessageKey string
}

func Required() ValidationRule {
	return ValidationRule{Kind: RuleKindRequired}
}

// Pattern compiles expr at descriptor construction; a malformed expression is an authoring
// error and panics.
func Pattern(expr string, messageKey string) ValidationRule {
	return ValidationRule{
		Kind:       RuleKindPattern,
		Pattern:    regexp.MustCompile(expr),
		MessageKey: messageKey,
	}
}

// Check applies the rule to a submitted value. Pattern rules skip empty values; emptiness is
// the required rule's concern.
func (r ValidationRule) Check(value any) error {
	switch r.Kind {
	case RuleKindRequired:
		if isEmptyValue(value) {
			return ErrRequiredValue
		}
		return nil
	case RuleKindPattern:
		if isEmptyValue(value) || r.Pattern == nil {
			return nil
		}
		if !r.Pattern.MatchString(fmt.Sprint(value)) {
			return fmt.Errorf("%w: %s", ErrPatternMismatch, r.Pattern.String())
		}
		return nil
	default:
		return nil
	}
}

func (r ValidationRule) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RuleKindRequired:
		return json.Marshal(map[string]any{"required": true})
	case RuleKindPattern:
		out := map[string]any{"pattern": ""}
		if r.Pattern != nil {
			out["pattern"] = r.Pattern.String()
		}
		if r.MessageKey != "" {
			out["message"] = r.MessageKey
		}
		return json.Marshal(out)
	default:
		return json.Marshal(map[string]any{})
	}
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case []Record:
		return len(v) == 0
	default:
		return false
	}
}

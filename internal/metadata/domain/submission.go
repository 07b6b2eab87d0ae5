package domain

import "errors"

const (
	MessageKeyRequired = "validation.Required"
	MessageKeyPattern  = "validation.Pattern"
)

type FieldError struct {
	Field      string `json:"field"`
	Row        *int   `json:"row,omitempty"`
	MessageKey string `json:"message"`
}

// CollectSubmission drops the values of hidden fields, including hidden cells of sub-table rows.
func CollectSubmission(items []FormItem, values Record) Record {
	result := values.Clone()
	for _, item := range items {
		if !item.Visible {
			delete(result, item.Name)
			continue
		}
		if item.Kind == FieldKindSubTable {
			if rows, ok := RowsOf(values[item.Name]); ok {
				collected := make([]Record, 0, len(rows))
				for _, row := range rows {
					collected = append(collected, CollectRow(item.Columns, row))
				}
				result[item.Name] = collected
			}
		}
	}
	return result
}

func CollectRow(columns []ColumnSpec, row Record) Record {
	result := row.Clone()
	for _, c := range columns {
		if !c.IsVisible(row) {
			delete(result, c.DataIndex)
		}
	}
	return result
}

// ValidateSubmission applies the rules of every visible field in descriptor order.
func ValidateSubmission(items []FormItem, values Record) []FieldError {
	result := make([]FieldError, 0)
	for _, item := range items {
		if !item.Visible {
			continue
		}
		if err := checkRules(item.Rules, values[item.Name]); err != nil {
			result = append(result, FieldError{Field: item.Name, MessageKey: messageKeyOf(err)})
		}
		if item.Kind == FieldKindSubTable {
			rows, _ := RowsOf(values[item.Name])
			for i, row := range rows {
				result = append(result, ValidateRow(item.Columns, row, i)...)
			}
		}
	}
	return result
}

func ValidateRow(columns []ColumnSpec, row Record, index int) []FieldError {
	result := make([]FieldError, 0)
	for _, c := range columns {
		if !c.IsVisible(row) {
			continue
		}
		if err := checkRules(c.Rules, row[c.DataIndex]); err != nil {
			rowIndex := index
			result = append(result, FieldError{Field: c.DataIndex, Row: &rowIndex, MessageKey: messageKeyOf(err)})
		}
	}
	return result
}

// RowsOf accepts sub-table values either as Go records or as decoded JSON.
func RowsOf(value any) ([]Record, bool) {
	switch v := value.(type) {
	case []Record:
		return v, true
	case []map[string]any:
		rows := make([]Record, 0, len(v))
		for _, r := range v {
			rows = append(rows, Record(r))
		}
		return rows, true
	case []any:
		rows := make([]Record, 0, len(v))
		for _, r := range v {
			m, ok := r.(map[string]any)
			if !ok {
				return nil, false
			}
			rows = append(rows, Record(m))
		}
		return rows, true
	default:
		return nil, false
	}
}

type ruleError struct {
	rule ValidationRule
	err  error
}

func (e ruleError) Error() string {
	return e.err.Error()
}

func (e ruleError) Unwrap() error {
	return e.err
}

func checkRules(rules []ValidationRule, value any) error {
	for _, rule := range rules {
		if err := rule.Check(value); err != nil {
			return ruleError{rule: rule, err: err}
		}
	}
	return nil
}

func messageKeyOf(err error) string {
	var re ruleError
	if errors.As(err, &re) && re.rule.MessageKey != "" {
		return re.rule.MessageKey
	}
	if errors.Is(err, ErrPatternMismatch) {
		return MessageKeyPattern
	}
	return MessageKeyRequired
}

package internal

import (
	"sink-schema-server/internal/metadata/domain"
	"sink-schema-server/internal/metadata/usecases"
)

// Request models
type ResolveRowRequest struct {
	Row      map[string]any `json:"row"`
	Index    int            `json:"index"`
	IsNew    bool           `json:"is_new"`
	Status   *int           `json:"status,omitempty"`
	Editing  bool           `json:"editing"`
	DataType string         `json:"data_type,omitempty"`
}

type ValidateConfigRequest struct {
	Values  map[string]any `json:"values"`
	Editing bool           `json:"editing"`
}

// Response models
type SinkResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

type SinkListResponse struct {
	Sinks []SinkResponse `json:"sinks"`
}

type OptionResponse struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

type PropsResponse struct {
	Placeholder string           `json:"placeholder,omitempty"`
	Options     []OptionResponse `json:"options,omitempty"`
	Disabled    bool             `json:"disabled"`
	Width       int              `json:"width,omitempty"`
	MaxWidth    int              `json:"max_width,omitempty"`
}

type RuleResponse struct {
	Required bool   `json:"required,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
	Message  string `json:"message,omitempty"`
}

type ColumnResponse struct {
	Title        string         `json:"title"`
	DataIndex    string         `json:"data_index"`
	Kind         string         `json:"kind"`
	Rules        []RuleResponse `json:"rules"`
	InitialValue any            `json:"initial_value,omitempty"`
	Props        PropsResponse  `json:"props"`
	Dynamic      bool           `json:"dynamic"`
}

type ColumnListResponse struct {
	Columns []ColumnResponse `json:"columns"`
}

type FormItemResponse struct {
	Name         string           `json:"name"`
	Label        string           `json:"label"`
	Tooltip      string           `json:"tooltip,omitempty"`
	Kind         string           `json:"kind"`
	Rules        []RuleResponse   `json:"rules"`
	InitialValue any              `json:"initial_value,omitempty"`
	Props        PropsResponse    `json:"props"`
	Visible      bool             `json:"visible"`
	Columns      []ColumnResponse `json:"columns,omitempty"`
}

type FormResponse struct {
	SinkType string             `json:"sink_type"`
	Mode     string             `json:"mode"`
	Items    []FormItemResponse `json:"items,omitempty"`
	Columns  []ColumnResponse   `json:"columns,omitempty"`
}

type CellResponse struct {
	DataIndex string        `json:"data_index"`
	Props     PropsResponse `json:"props"`
	Visible   bool          `json:"visible"`
}

type RowResponse struct {
	Cells     []CellResponse `json:"cells"`
	Deletable bool           `json:"deletable"`
}

type FieldErrorResponse struct {
	Field   string `json:"field"`
	Row     *int   `json:"row,omitempty"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Valid  bool                 `json:"valid"`
	Values map[string]any       `json:"values"`
	Errors []FieldErrorResponse `json:"errors"`
}

// Conversion functions
func ToSinkListResponse(sinks []usecases.SinkSummary) SinkListResponse {
	responses := make([]SinkResponse, len(sinks))
	for i, sink := range sinks {
		responses[i] = SinkResponse{Type: sink.Type.String(), Label: sink.Label}
	}
	return SinkListResponse{Sinks: responses}
}

func ToPropsResponse(props domain.Props) PropsResponse {
	response := PropsResponse{
		Placeholder: props.Placeholder,
		Disabled:    props.Disabled,
		Width:       props.Width,
		MaxWidth:    props.MaxWidth,
	}
	if len(props.Options) > 0 {
		response.Options = make([]OptionResponse, len(props.Options))
		for i, o := range props.Options {
			response.Options[i] = OptionResponse{Label: o.Label, Value: o.Value}
		}
	}
	return response
}

func ToRuleResponses(rules []usecases.RuleView) []RuleResponse {
	responses := make([]RuleResponse, len(rules))
	for i, r := range rules {
		responses[i] = RuleResponse{Required: r.Required, Pattern: r.Pattern, Message: r.Message}
	}
	return responses
}

func ToColumnResponse(column usecases.ColumnView) ColumnResponse {
	return ColumnResponse{
		Title:        column.Title,
		DataIndex:    column.DataIndex,
		Kind:         column.Kind.String(),
		Rules:        ToRuleResponses(column.Rules),
		InitialValue: column.InitialValue,
		Props:        ToPropsResponse(column.Props),
		Dynamic:      column.Dynamic,
	}
}

func ToColumnResponses(columns []usecases.ColumnView) []ColumnResponse {
	if columns == nil {
		return nil
	}
	responses := make([]ColumnResponse, len(columns))
	for i, c := range columns {
		responses[i] = ToColumnResponse(c)
	}
	return responses
}

func ToColumnListResponse(columns []usecases.ColumnView) ColumnListResponse {
	responses := ToColumnResponses(columns)
	if responses == nil {
		responses = []ColumnResponse{}
	}
	return ColumnListResponse{Columns: responses}
}

func ToFormItemResponse(item usecases.FormItemView) FormItemResponse {
	return FormItemResponse{
		Name:         item.Name,
		Label:        item.Label,
		Tooltip:      item.Tooltip,
		Kind:         item.Kind.String(),
		Rules:        ToRuleResponses(item.Rules),
		InitialValue: item.InitialValue,
		Props:        ToPropsResponse(item.Props),
		Visible:      item.Visible,
		Columns:      ToColumnResponses(item.Columns),
	}
}

func ToFormResponse(view usecases.FormView) FormResponse {
	response := FormResponse{
		SinkType: view.SinkType.String(),
		Mode:     string(view.Mode),
		Columns:  ToColumnResponses(view.Columns),
	}
	if view.Items != nil {
		response.Items = make([]FormItemResponse, len(view.Items))
		for i, item := range view.Items {
			response.Items[i] = ToFormItemResponse(item)
		}
	}
	return response
}

func ToRowResponse(view usecases.RowView) RowResponse {
	cells := make([]CellResponse, len(view.Cells))
	for i, c := range view.Cells {
		cells[i] = CellResponse{DataIndex: c.DataIndex, Props: ToPropsResponse(c.Props), Visible: c.Visible}
	}
	return RowResponse{Cells: cells, Deletable: view.Deletable}
}

func ToValidationResponse(result usecases.ValidationResult) ValidationResponse {
	errs := make([]FieldErrorResponse, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = FieldErrorResponse{Field: e.Field, Row: e.Row, Message: e.Message}
	}
	values := map[string]any(result.Values)
	if values == nil {
		values = map[string]any{}
	}
	return ValidationResponse{Valid: result.Valid, Values: values, Errors: errs}
}

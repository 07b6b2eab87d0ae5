package usecases

import (
	"sink-schema-server/internal/metadata/domain"

	"golang.org/x/text/language"
)

// The views below are the localized projections handed to the renderer.

type SinkSummary struct {
	Type  domain.SinkType
	Label string
}

type RuleView struct {
	Required bool
	Pattern  string
	Message  string
}

type ColumnView struct {
	Title        string
	DataIndex    string
	Kind         domain.FieldKind
	Rules        []RuleView
	InitialValue any
	Props        domain.Props
	Dynamic      bool
}

type FormItemView struct {
	Name         string
	Label        string
	Tooltip      string
	Kind         domain.FieldKind
	Rules        []RuleView
	Props        domain.Props
	InitialValue any
	Visible      bool
	Columns      []ColumnView
}

type FormView struct {
	SinkType domain.SinkType
	Mode     domain.Mode
	Items    []FormItemView
	Columns  []ColumnView
}

type CellView struct {
	DataIndex string
	Props     domain.Props
	Visible   bool
}

type RowView struct {
	Cells     []CellView
	Deletable bool
}

type FieldErrorView struct {
	Field   string
	Row     *int
	Message string
}

type ValidationResult struct {
	Valid  bool
	Values domain.Record
	Errors []FieldErrorView
}

// FormQuery carries the ambient entity context of a projection request.
type FormQuery struct {
	SinkType  domain.SinkType
	Mode      domain.Mode
	Language  language.Tag
	Values    domain.Record
	IsEditing bool
	DataType  string
}

func (q FormQuery) entity() domain.EntityContext {
	return domain.NewEntityContext(q.Values, q.IsEditing, q.DataType)
}

type RowQuery struct {
	FormQuery
	Row   domain.Record
	Index int
	IsNew bool
}

type localizer struct {
	translator Translator
	tag        language.Tag
}

func (l localizer) text(key string) string {
	return l.translator.Translate(l.tag, key)
}

func (l localizer) props(props domain.Props) domain.Props {
	if props.Options == nil {
		return props
	}
	result := props
	result.Options = make([]domain.Option, 0, len(props.Options))
	for _, o := range props.Options {
		result.Options = append(result.Options, domain.Option{Label: l.text(o.Label), Value: o.Value})
	}
	return result
}

func (l localizer) rules(rules []domain.ValidationRule) []RuleView {
	result := make([]RuleView, 0, len(rules))
	for _, r := range rules {
		switch r.Kind {
		case domain.RuleKindRequired:
			result = append(result, RuleView{Required: true})
		case domain.RuleKindPattern:
			view := RuleView{Message: l.text(r.MessageKey)}
			if r.Pattern != nil {
				view.Pattern = r.Pattern.String()
			}
			result = append(result, view)
		}
	}
	return result
}

func (l localizer) column(c domain.ColumnSpec) ColumnView {
	return ColumnView{
		Title:        c.Title.Prefix + l.text(c.Title.Key),
		DataIndex:    c.DataIndex,
		Kind:         c.Kind,
		Rules:        l.rules(c.Rules),
		InitialValue: c.InitialValue,
		Props:        l.props(c.Props),
		Dynamic:      c.IsDynamic(),
	}
}

func (l localizer) columns(columns []domain.ColumnSpec) []ColumnView {
	result := make([]ColumnView, 0, len(columns))
	for _, c := range columns {
		result = append(result, l.column(c))
	}
	return result
}

func (l localizer) formItem(item domain.FormItem) FormItemView {
	view := FormItemView{
		Name:         item.Name,
		Label:        l.text(item.LabelKey),
		Tooltip:      l.text(item.TooltipKey),
		Kind:         item.Kind,
		Rules:        l.rules(item.Rules),
		Props:        l.props(item.Props),
		InitialValue: item.InitialValue,
		Visible:      item.Visible,
	}
	if item.Columns != nil {
		view.Columns = l.columns(item.Columns)
	}
	return view
}

func (l localizer) fieldErrors(errs []domain.FieldError) []FieldErrorView {
	result := make([]FieldErrorView, 0, len(errs))
	for _, e := range errs {
		result = append(result, FieldErrorView{Field: e.Field, Row: e.Row, Message: l.text(e.MessageKey)})
	}
	return result
}

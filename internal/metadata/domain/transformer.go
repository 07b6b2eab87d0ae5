package domain

import "slices"

// TransformInput carries a descriptor list and the ambient context of one projection.
type TransformInput struct {
	Descriptors []FieldDescriptor
	Shared      []FieldDescriptor
	Mode        Mode
	Entity      EntityContext
	TypeTag     string
	Merge       MergeStrategy
}

type Projection struct {
	Mode    Mode
	Items   []FormItem
	Columns []ColumnSpec
}

// FormItem is the form-mode projection of a descriptor.
type FormItem struct {
	Name         string
	LabelKey     string
	TooltipKey   string
	Kind         FieldKind
	Rules        []ValidationRule
	Props        Props
	InitialValue any
	Visible      bool
	Columns      []ColumnSpec
	DeletePolicy *DeletePolicy
}

type Title struct {
	Prefix string
	Key    string
}

// ColumnSpec is the column-mode projection of a descriptor. Dynamic props and visibility
// are resolved per row through ResolveProps and IsVisible.
type ColumnSpec struct {
	Title        Title
	DataIndex    string
	Kind         FieldKind
	Rules        []ValidationRule
	InitialValue any
	Props        Props
	behavior     FieldBehavior
	entity       EntityContext
}

func (c ColumnSpec) clone() ColumnSpec {
	result := c
	result.Rules = slices.Clone(c.Rules)
	result.Props = c.Props.Clone()
	return result
}

func (c ColumnSpec) IsDynamic() bool {
	return c.behavior != nil
}

func (c ColumnSpec) ResolveProps(row Record, index int, isNew bool) Props {
	return evaluateProps(c.DataIndex, c.Props, c.behavior, c.entity, row, index, isNew)
}

func (c ColumnSpec) IsVisible(row Record) bool {
	return evaluateVisible(c.DataIndex, c.behavior, row)
}

// Transform projects descriptors for a form or a table. It is pure: the same input always
// yields the same projection.
func Transform(input TransformInput) Projection {
	merged := MergeDescriptors(input.Shared, input.Descriptors, input.Merge)

	switch input.Mode {
	case ModeColumn:
		columns := make([]ColumnSpec, 0, len(merged))
		for _, d := range merged {
			columns = append(columns, toColumn(d, input))
		}
		return Projection{Mode: ModeColumn, Columns: columns}
	case ModeForm:
		fallthrough
	default:
		items := make([]FormItem, 0, len(merged))
		for _, d := range merged {
			if d.TableOnly {
				continue
			}
			items = append(items, toFormItem(d, input.Entity))
		}
		return Projection{Mode: ModeForm, Items: items}
	}
}

func toColumn(d FieldDescriptor, input TransformInput) ColumnSpec {
	title := Title{Key: d.LabelKey}
	if d.Tagged {
		title.Prefix = input.TypeTag
	}

	return ColumnSpec{
		Title:        title,
		DataIndex:    d.Name,
		Kind:         d.Kind,
		Rules:        slices.Clone(d.Rules),
		InitialValue: d.InitialValue,
		Props:        d.Props.Clone(),
		behavior:     d.Behavior,
		entity:       input.Entity,
	}
}

func toFormItem(d FieldDescriptor, entity EntityContext) FormItem {
	item := FormItem{
		Name:         d.Name,
		LabelKey:     d.LabelKey,
		TooltipKey:   d.TooltipKey,
		Kind:         d.Kind,
		Rules:        slices.Clone(d.Rules),
		Props:        evaluateProps(d.Name, d.Props, d.Behavior, entity, entity.Values, -1, entity.IsNew()),
		InitialValue: d.InitialValue,
		Visible:      evaluateVisible(d.Name, d.Behavior, entity.Values),
	}

	if d.SubTable != nil {
		item.Columns = d.SubTable.Columns(entity)
		item.DeletePolicy = &DeletePolicy{Editing: entity.IsEditing}
	}

	return item
}

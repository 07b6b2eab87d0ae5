package domain

import "slices"

// FieldDescriptor describes one configurable attribute of a sink. Descriptor sets are
// built once per sink type and never mutated afterwards.
type FieldDescriptor struct {
	Name         string    `validate:"required,printascii"`
	Kind         FieldKind `validate:"fieldkind"`
	LabelKey     string
	TooltipKey   string
	InitialValue any
	Rules        []ValidationRule
	Props        Props
	Behavior     FieldBehavior
	// TableOnly keeps the descriptor out of form projections.
	TableOnly bool
	// Tagged columns get the sink type tag in front of their title.
	Tagged   bool
	SubTable *SubTable
}

func (d FieldDescriptor) clone() FieldDescriptor {
	result := d
	result.Rules = slices.Clone(d.Rules)
	result.Props = d.Props.Clone()
	return result
}

// SubTable is the nested descriptor list of a SubTable field, e.g. the sink field list.
type SubTable struct {
	Shared  DescriptorSet
	Fields  DescriptorSet
	Merge   MergeStrategy
	TypeTag string
}

func (s SubTable) Columns(entity EntityContext) []ColumnSpec {
	projection := Transform(TransformInput{
		Descriptors: s.Fields.Descriptors(),
		Shared:      s.Shared.Descriptors(),
		Mode:        ModeColumn,
		Entity:      entity,
		TypeTag:     s.TypeTag,
		Merge:       s.Merge,
	})
	return projection.Columns
}

// DeletePolicy decides whether a sub-table row may be removed: always while creating the
// entity, only new rows while editing it.
type DeletePolicy struct {
	Editing bool
}

func (p DeletePolicy) CanDelete(_ Record, _ int, isNew bool) bool {
	return !p.Editing || isNew
}

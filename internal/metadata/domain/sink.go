package domain

import (
	"errors"
	"fmt"
)

type SinkType string

func (t SinkType) String() string {
	return string(t)
}

// Sink is the schema of one sink type: its form descriptors, the descriptors of its field
// list and the context-free table columns computed when the sink is built.
type Sink struct {
	Type          SinkType
	LabelKey      string
	TypeTag       string
	Form          DescriptorSet
	FieldListName string
	tableColumns  []ColumnSpec
}

func (s Sink) GetForm(mode Mode, entity EntityContext) Projection {
	return Transform(TransformInput{
		Descriptors: s.Form.Descriptors(),
		Mode:        mode,
		Entity:      entity,
		TypeTag:     s.TypeTag,
	})
}

// GetFieldListColumns projects the sink field list for the given source data type.
func (s Sink) GetFieldListColumns(dataType string, entity EntityContext) []ColumnSpec {
	subTable, ok := s.fieldList()
	if !ok {
		return []ColumnSpec{}
	}
	entity.DataType = dataType
	return subTable.Columns(entity)
}

// TableColumns returns the columns computed without entity context, for listings.
func (s Sink) TableColumns() []ColumnSpec {
	result := make([]ColumnSpec, 0, len(s.tableColumns))
	for _, c := range s.tableColumns {
		result = append(result, c.clone())
	}
	return result
}

func (s Sink) fieldList() (SubTable, bool) {
	for _, d := range s.Form.Descriptors() {
		if d.Name == s.FieldListName && d.SubTable != nil {
			return *d.SubTable, true
		}
	}
	return SubTable{}, false
}

func NewSinkBuilder() *sinkBuilder {
	return &sinkBuilder{}
}

type sinkBuilder struct {
	actions []sinkHandler
}

type sinkHandler func(v *Sink) error

func (b *sinkBuilder) WithType(value SinkType) *sinkBuilder {
	b.actions = append(b.actions, func(s *Sink) error {
		if value == "" {
			return errors.New("sink type is required")
		}
		s.Type = value
		return nil
	})
	return b
}

func (b *sinkBuilder) WithLabelKey(value string) *sinkBuilder {
	b.actions = append(b.actions, func(s *Sink) error {
		s.LabelKey = value
		return nil
	})
	return b
}

func (b *sinkBuilder) WithTypeTag(value string) *sinkBuilder {
	b.actions = append(b.actions, func(s *Sink) error {
		s.TypeTag = value
		return nil
	})
	return b
}

func (b *sinkBuilder) WithForm(value DescriptorSet) *sinkBuilder {
	b.actions = append(b.actions, func(s *Sink) error {
		s.Form = value
		return nil
	})
	return b
}

func (b *sinkBuilder) WithFieldList(name string) *sinkBuilder {
	b.actions = append(b.actions, func(s *Sink) error {
		s.FieldListName = name
		return nil
	})
	return b
}

func (b *sinkBuilder) Build() (Sink, error) {
	result := Sink{}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Sink{}, err
		}
	}

	if result.Type == "" {
		return Sink{}, errors.New("sink type is required")
	}
	if result.FieldListName != "" {
		if _, ok := result.fieldList(); !ok {
			return Sink{}, fmt.Errorf("%w: %q", ErrMissingSubTable, result.FieldListName)
		}
	}

	result.tableColumns = Transform(TransformInput{
		Descriptors: result.Form.Descriptors(),
		Mode:        ModeColumn,
		TypeTag:     result.TypeTag,
	}).Columns

	return result, nil
}

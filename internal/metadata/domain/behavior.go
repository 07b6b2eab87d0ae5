package domain

import "slices"

// FieldBehavior computes the runtime properties of a field. Implementations must be pure:
// they are called on every render and must not modify the row they receive.
type FieldBehavior interface {
	ResolveProps(entity EntityContext, row Record, index int, isNew bool) PropsOverride
	IsVisible(row Record) bool
}

var (
	_ FieldBehavior = LockOnCommit{}
	_ FieldBehavior = StaticOptions{}
	_ FieldBehavior = VisibleWhenIn{}
	_ FieldBehavior = FreezeWhenSet{}
	_ FieldBehavior = Behaviors{}
)

// LockOnCommit disables the field on existing rows once the entity reached a locked status.
type LockOnCommit struct {
	Policy  LockPolicy
	Options []Option
}

func (b LockOnCommit) ResolveProps(entity EntityContext, _ Record, _ int, isNew bool) PropsOverride {
	policy := b.Policy
	if policy == nil {
		policy = DefaultLockPolicy
	}
	return PropsOverride{
		Options:  b.Options,
		Disabled: disabled(policy.IsLocked(entity.Status, isNew)),
	}
}

func (b LockOnCommit) IsVisible(Record) bool {
	return true
}

type StaticOptions struct {
	Options []Option
}

func (b StaticOptions) ResolveProps(EntityContext, Record, int, bool) PropsOverride {
	return PropsOverride{Options: b.Options}
}

func (b StaticOptions) IsVisible(Record) bool {
	return true
}

// VisibleWhenIn shows the field only when the row's Field holds one of Values.
type VisibleWhenIn struct {
	Field   string
	Values  []string
	Options []Option
}

func (b VisibleWhenIn) ResolveProps(EntityContext, Record, int, bool) PropsOverride {
	return PropsOverride{Options: b.Options}
}

func (b VisibleWhenIn) IsVisible(row Record) bool {
	return slices.Contains(b.Values, row.String(b.Field))
}

// FreezeWhenSet disables a cell of an existing row once it holds a value.
type FreezeWhenSet struct {
	Field   string
	Options []Option
}

func (b FreezeWhenSet) ResolveProps(_ EntityContext, row Record, _ int, isNew bool) PropsOverride {
	return PropsOverride{
		Options:  b.Options,
		Disabled: disabled(row.Has(b.Field) && !isNew),
	}
}

func (b FreezeWhenSet) IsVisible(Record) bool {
	return true
}

// Behaviors combines several behaviors: overrides apply in order, the field is visible
// only if every member agrees.
type Behaviors []FieldBehavior

func (bs Behaviors) ResolveProps(entity EntityContext, row Record, index int, isNew bool) PropsOverride {
	var result PropsOverride
	for _, b := range bs {
		result = result.Merge(b.ResolveProps(entity, row, index, isNew))
	}
	return result
}

func (bs Behaviors) IsVisible(row Record) bool {
	for _, b := range bs {
		if !b.IsVisible(row) {
			return false
		}
	}
	return true
}

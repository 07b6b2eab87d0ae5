package domain

import "slices"

// EntityStatus is the lifecycle code of the entity owning the form. The numeric values
// belong to the entity-management system and are treated as opaque.
type EntityStatus int

const (
	EntityStatusUnknown EntityStatus = 0
	EntityStatusInUse   EntityStatus = 110
	EntityStatusLocked  EntityStatus = 130
)

const (
	RecordKeyStatus   = "status"
	RecordKeyDataType = "dataType"
)

// LockPolicy decides whether edit-affecting fields freeze.
type LockPolicy interface {
	IsLocked(status EntityStatus, isNew bool) bool
}

// StatusLockPolicy freezes existing rows once the entity reached one of Statuses.
// New rows are never frozen.
type StatusLockPolicy struct {
	Statuses []EntityStatus
}

var _ LockPolicy = StatusLockPolicy{}

func (p StatusLockPolicy) IsLocked(status EntityStatus, isNew bool) bool {
	if isNew {
		return false
	}
	return slices.Contains(p.Statuses, status)
}

func NewStatusLockPolicy(statuses ...int) StatusLockPolicy {
	result := StatusLockPolicy{Statuses: make([]EntityStatus, 0, len(statuses))}
	for _, s := range statuses {
		result.Statuses = append(result.Statuses, EntityStatus(s))
	}
	return result
}

var DefaultLockPolicy = StatusLockPolicy{Statuses: []EntityStatus{EntityStatusInUse, EntityStatusLocked}}

func IsLockedForEdit(status EntityStatus, isNew bool) bool {
	return DefaultLockPolicy.IsLocked(status, isNew)
}

// EntityContext is the ambient state a projection is computed against.
type EntityContext struct {
	Values    Record
	Status    EntityStatus
	IsEditing bool
	DataType  string
}

func NewEntityContext(values Record, isEditing bool, dataType string) EntityContext {
	ctx := EntityContext{
		Values:    values.Clone(),
		IsEditing: isEditing,
		DataType:  dataType,
	}
	if status, ok := values.Int(RecordKeyStatus); ok {
		ctx.Status = EntityStatus(status)
	}
	if ctx.DataType == "" {
		ctx.DataType = values.String(RecordKeyDataType)
	}
	return ctx
}

// IsNew is true when the entity is being created rather than edited.
func (c EntityContext) IsNew() bool {
	return !c.IsEditing
}

package domain

import "errors"

var (
	ErrUnknownFieldKind      = errors.New("unknown field kind")
	ErrUnknownMode           = errors.New("unknown mode")
	ErrInvalidDescriptor     = errors.New("invalid field descriptor")
	ErrDuplicateFieldName    = errors.New("duplicate field name")
	ErrIncompatibleInitValue = errors.New("initial value incompatible with field kind")
	ErrMissingSubTable       = errors.New("sub-table field without nested descriptors")
	ErrUnexpectedOptions     = errors.New("options on a field kind without options")
	ErrRequiredValue         = errors.New("value is required")
	ErrPatternMismatch       = errors.New("value does not match pattern")
)

var ErrSinkTypeNotFound = errors.New("sink type not found")

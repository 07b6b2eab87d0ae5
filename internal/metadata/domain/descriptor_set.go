package domain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// DescriptorSet is an ordered, validated and immutable list of descriptors.
type DescriptorSet struct {
	name        string
	descriptors []FieldDescriptor
}

func NewDescriptorSet(name string, descriptors ...FieldDescriptor) (DescriptorSet, error) {
	if err := ValidateDescriptors(descriptors); err != nil {
		return DescriptorSet{}, fmt.Errorf("building descriptor set %s: %w", name, err)
	}

	result := DescriptorSet{
		name:        name,
		descriptors: make([]FieldDescriptor, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		result.descriptors = append(result.descriptors, d.clone())
	}
	return result, nil
}

// MustDescriptorSet is NewDescriptorSet for package-level catalogs; authoring errors panic.
func MustDescriptorSet(name string, descriptors ...FieldDescriptor) DescriptorSet {
	set, err := NewDescriptorSet(name, descriptors...)
	if err != nil {
		panic(err)
	}
	return set
}

func (s DescriptorSet) Name() string {
	return s.name
}

func (s DescriptorSet) Len() int {
	return len(s.descriptors)
}

func (s DescriptorSet) Descriptors() []FieldDescriptor {
	result := make([]FieldDescriptor, 0, len(s.descriptors))
	for _, d := range s.descriptors {
		result = append(result, d.clone())
	}
	return result
}

func (s DescriptorSet) Names() []string {
	names := make([]string, 0, len(s.descriptors))
	for _, d := range s.descriptors {
		names = append(names, d.Name)
	}
	return names
}

type MergeStrategy int

const (
	// MergeAppend puts shared descriptors first and specific ones after, keeping duplicates.
	MergeAppend MergeStrategy = iota
	// MergeOverrideByName lets a specific descriptor replace the shared one with the same
	// name, in the shared position.
	MergeOverrideByName
)

func MergeDescriptors(shared, specific []FieldDescriptor, strategy MergeStrategy) []FieldDescriptor {
	result := make([]FieldDescriptor, 0, len(shared)+len(specific))

	switch strategy {
	case MergeOverrideByName:
		overrides := make(map[string]FieldDescriptor, len(specific))
		for _, d := range specific {
			overrides[d.Name] = d
		}
		used := make(map[string]bool, len(specific))
		for _, d := range shared {
			if override, ok := overrides[d.Name]; ok {
				result = append(result, override)
				used[d.Name] = true
				continue
			}
			result = append(result, d)
		}
		for _, d := range specific {
			if !used[d.Name] {
				result = append(result, d)
			}
		}
	case MergeAppend:
		fallthrough
	default:
		result = append(result, shared...)
		result = append(result, specific...)
	}

	return result
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func descriptorValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("fieldkind", func(fl validator.FieldLevel) bool {
			kind, ok := fl.Field().Interface().(FieldKind)
			return ok && kind.IsValid()
		})
	})
	return validate
}

// ValidateDescriptors reports every authoring error of a descriptor list.
func ValidateDescriptors(descriptors []FieldDescriptor) error {
	var errs []error
	seen := make(map[string]bool, len(descriptors))

	for i, d := range descriptors {
		if err := descriptorValidator().Struct(d); err != nil {
			errs = append(errs, fmt.Errorf("%w: descriptor %d (%q): %w", ErrInvalidDescriptor, i, d.Name, err))
			continue
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateFieldName, d.Name))
		}
		seen[d.Name] = true

		if !d.Kind.AcceptsValue(d.InitialValue) {
			errs = append(errs, fmt.Errorf("%w: %q is %s, got %T", ErrIncompatibleInitValue, d.Name, d.Kind, d.InitialValue))
		}
		if len(d.Props.Options) > 0 && !d.Kind.HasOptions() {
			errs = append(errs, fmt.Errorf("%w: %q is %s", ErrUnexpectedOptions, d.Name, d.Kind))
		}
		if d.Kind == FieldKindSubTable && d.SubTable == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingSubTable, d.Name))
		}
		if d.SubTable != nil {
			merged := MergeDescriptors(d.SubTable.Shared.Descriptors(), d.SubTable.Fields.Descriptors(), d.SubTable.Merge)
			if err := ValidateDescriptors(merged); err != nil {
				errs = append(errs, fmt.Errorf("sub-table %q: %w", d.Name, err))
			}
		}
	}

	return errors.Join(errs...)
}

package domain

import (
	"fmt"
	"log/slog"
)

// evaluateProps resolves a behavior over a copy of the row. A panicking behavior fails
// open: static props, not disabled.
func evaluateProps(
	field string,
	static Props,
	behavior FieldBehavior,
	entity EntityContext,
	row Record,
	index int,
	isNew bool,
) (result Props) {
	static = static.Clone()
	if behavior == nil {
		return static
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("resolving field props",
				slog.String("field", field),
				slog.String("error", fmt.Sprint(r)))
			result = static
			result.Disabled = false
		}
	}()

	return static.Apply(behavior.ResolveProps(entity, row.Clone(), index, isNew))
}

// evaluateVisible fails open: a panicking behavior leaves the field visible.
func evaluateVisible(field string, behavior FieldBehavior, row Record) (visible bool) {
	if behavior == nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Warn("resolving field visibility",
				slog.String("field", field),
				slog.String("error", fmt.Sprint(r)))
			visible = true
		}
	}()

	return behavior.IsVisible(row.Clone())
}

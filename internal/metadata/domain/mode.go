package domain

import "fmt"

// Mode selects the projection Transform returns.
type Mode string

const (
	ModeForm   Mode = "form"
	ModeColumn Mode = "col"
)

func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case "", ModeForm:
		return ModeForm, nil
	case ModeColumn:
		return ModeColumn, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, value)
	}
}

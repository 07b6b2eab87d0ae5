package domain

import "slices"

// Option is one choice of a select/radio/autocomplete field. Label is a localization key
// or, for catalogs such as SQL type names, the literal text.
type Option struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

func OptionsOf(values ...string) []Option {
	result := make([]Option, 0, len(values))
	for _, v := range values {
		result = append(result, Option{Label: v, Value: v})
	}
	return result
}

// Props is the kind-specific static configuration of a field.
type Props struct {
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Disabled    bool     `json:"disabled"`
	Width       int      `json:"width,omitempty"`
	MaxWidth    int      `json:"max_width,omitempty"`
}

// PropsOverride is the partial configuration a behavior computes at render time.
// Nil members leave the static value untouched.
type PropsOverride struct {
	Options  []Option
	Disabled *bool
}

// Clone copies the option list so callers cannot reach catalog storage.
func (p Props) Clone() Props {
	result := p
	result.Options = slices.Clone(p.Options)
	return result
}

func (p Props) Apply(override PropsOverride) Props {
	result := p.Clone()
	if override.Options != nil {
		result.Options = slices.Clone(override.Options)
	}
	if override.Disabled != nil {
		result.Disabled = *override.Disabled
	}
	return result
}

func (o PropsOverride) Merge(other PropsOverride) PropsOverride {
	result := o
	if other.Options != nil {
		result.Options = other.Options
	}
	if other.Disabled != nil {
		result.Disabled = other.Disabled
	}
	return result
}

func disabled(value bool) *bool {
	return &value
}

package sinks

import "sink-schema-server/internal/metadata/domain"

const (
	FieldSourceFieldName = "sourceFieldName"
	FieldSourceFieldType = "sourceFieldType"
)

var sourceFieldTypes = domain.OptionsOf(
	"int",
	"long",
	"float",
	"double",
	"string",
	"date",
	"timestamp",
)

// SourceDataFields are the source-side columns shared by every sink field list.
func SourceDataFields() domain.DescriptorSet {
	return domain.MustDescriptorSet("source_data_fields",
		domain.FieldDescriptor{
			Name:         FieldSourceFieldName,
			Kind:         domain.FieldKindText,
			LabelKey:     "components.AccessHelper.StorageMetaData.SourceFieldName",
			InitialValue: "",
			Rules: []domain.ValidationRule{
				domain.Required(),
				domain.Pattern(`^[a-zA-Z][a-zA-Z0-9_]*$`, "components.AccessHelper.StorageMetaData.SourceFieldNameRule"),
			},
			Behavior: domain.FreezeWhenSet{Field: FieldSourceFieldName},
		},
		domain.FieldDescriptor{
			Name:         FieldSourceFieldType,
			Kind:         domain.FieldKindSelect,
			LabelKey:     "components.AccessHelper.StorageMetaData.SourceFieldType",
			InitialValue: sourceFieldTypes[0].Value,
			Rules:        []domain.ValidationRule{domain.Required()},
			Behavior:     domain.FreezeWhenSet{Field: FieldSourceFieldType, Options: sourceFieldTypes},
		},
	)
}

func yesNoOptions() []domain.Option {
	return []domain.Option{
		{Label: "basic.Yes", Value: 1},
		{Label: "basic.No", Value: 0},
	}
}

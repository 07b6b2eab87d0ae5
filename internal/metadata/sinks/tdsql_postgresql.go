package sinks

import "sink-schema-server/internal/metadata/domain"

const (
	SinkTypeTDSQLPostgreSQL domain.SinkType = "TDSQLPOSTGRESQL"

	FieldJdbcURL              = "jdbcUrl"
	FieldSchemaName           = "schemaName"
	FieldTableName            = "tableName"
	FieldPrimaryKey           = "primaryKey"
	FieldEnableCreateResource = "enableCreateResource"
	FieldUsername             = "username"
	FieldPassword             = "password"
	FieldSinkFieldList        = "sinkFieldList"
	FieldStatus               = "status"

	FieldName        = "fieldName"
	FieldType        = "fieldType"
	FieldIsMetaField = "isMetaField"
	FieldFormat      = "fieldFormat"
	FieldComment     = "fieldComment"
)

const tdsqlKeyPrefix = "components.AccessHelper.StorageMetaData.TDSQLPostgreSQL."

var tdsqlPostgreSQLFieldTypes = domain.OptionsOf(
	"SMALLINT",
	"SMALLSERIAL",
	"INT2",
	"SERIAL2",
	"INTEGER",
	"SERIAL",
	"BIGINT",
	"BIGSERIAL",
	"REAL",
	"FLOAT4",
	"FLOAT8",
	"DOUBLE",
	"NUMERIC",
	"DECIMAL",
	"BOOLEAN",
	"DATE",
	"TIME",
	"TIMESTAMP",
	"CHAR",
	"CHARACTER",
	"VARCHAR",
	"TEXT",
	"BYTEA",
)

// FormatRequiredTypes are the field types whose values need a format hint.
var FormatRequiredTypes = []string{"BIGINT", "DATE", "TIMESTAMP"}

var fieldFormats = domain.OptionsOf("MICROSECONDS", "MILLISECONDS", "SECONDS", "SQL", "ISO_8601")

func NewTDSQLPostgreSQL(policy domain.LockPolicy) domain.Sink {
	fieldList := fieldListDescriptors("tdsql_postgresql_fields", policy, tdsqlKeyPrefix, tdsqlPostgreSQLFieldTypes)

	return mustBuild(domain.NewSinkBuilder().
		WithType(SinkTypeTDSQLPostgreSQL).
		WithLabelKey("meta.Sinks.TDSQLPostgreSQL").
		WithTypeTag(string(SinkTypeTDSQLPostgreSQL)).
		WithForm(connectionForm(policy, tdsqlKeyPrefix, "jdbc:postgresql://127.0.0.1:5432/db_name", fieldList, string(SinkTypeTDSQLPostgreSQL))).
		WithFieldList(FieldSinkFieldList))
}

// fieldListDescriptors is the sink field list shared by the PostgreSQL family; only the
// label keys and the type catalog differ between sinks.
func fieldListDescriptors(
	name string,
	policy domain.LockPolicy,
	keyPrefix string,
	types []domain.Option,
) domain.DescriptorSet {
	return domain.MustDescriptorSet(name,
		domain.FieldDescriptor{
			Name:         FieldName,
			Kind:         domain.FieldKindText,
			LabelKey:     keyPrefix + "FieldName",
			Tagged:       true,
			InitialValue: "",
			Rules: []domain.ValidationRule{
				domain.Required(),
				domain.Pattern(`^[a-z][0-9a-z_]*$`, keyPrefix+"FieldNameRule"),
			},
			Behavior: domain.LockOnCommit{Policy: policy},
		},
		domain.FieldDescriptor{
			Name:         FieldType,
			Kind:         domain.FieldKindSelect,
			LabelKey:     keyPrefix + "FieldType",
			Tagged:       true,
			InitialValue: types[0].Value,
			Rules:        []domain.ValidationRule{domain.Required()},
			Behavior:     domain.LockOnCommit{Policy: policy, Options: types},
		},
		domain.FieldDescriptor{
			Name:         FieldIsMetaField,
			Kind:         domain.FieldKindSelect,
			LabelKey:     keyPrefix + "IsMetaField",
			InitialValue: 0,
			Behavior:     domain.StaticOptions{Options: yesNoOptions()},
		},
		domain.FieldDescriptor{
			Name:         FieldFormat,
			Kind:         domain.FieldKindAutoComplete,
			LabelKey:     keyPrefix + "FieldFormat",
			InitialValue: "",
			Behavior: domain.VisibleWhenIn{
				Field:   FieldType,
				Values:  FormatRequiredTypes,
				Options: fieldFormats,
			},
		},
		domain.FieldDescriptor{
			Name:         FieldComment,
			Kind:         domain.FieldKindText,
			LabelKey:     keyPrefix + "FieldDescription",
			InitialValue: "",
		},
	)
}

// connectionForm is the JDBC connection form shared by the PostgreSQL family of sinks.
// Every edit-affecting field freezes through the same policy.
func connectionForm(
	policy domain.LockPolicy,
	keyPrefix string,
	placeholder string,
	fieldList domain.DescriptorSet,
	typeTag string,
) domain.DescriptorSet {
	lock := domain.LockOnCommit{Policy: policy}

	return domain.MustDescriptorSet(typeTag+"_form",
		domain.FieldDescriptor{
			Name:     FieldJdbcURL,
			Kind:     domain.FieldKindText,
			LabelKey: "JDBC URL",
			Rules:    []domain.ValidationRule{domain.Required()},
			Props:    domain.Props{Placeholder: placeholder, Width: 500},
			Behavior: lock,
		},
		domain.FieldDescriptor{
			Name:     FieldSchemaName,
			Kind:     domain.FieldKindText,
			LabelKey: keyPrefix + "SchemaName",
			Rules:    []domain.ValidationRule{domain.Required()},
			Behavior: lock,
		},
		domain.FieldDescriptor{
			Name:     FieldTableName,
			Kind:     domain.FieldKindText,
			LabelKey: keyPrefix + "TableName",
			Rules:    []domain.ValidationRule{domain.Required()},
			Behavior: lock,
		},
		domain.FieldDescriptor{
			Name:     FieldPrimaryKey,
			Kind:     domain.FieldKindText,
			LabelKey: keyPrefix + "PrimaryKey",
			Rules:    []domain.ValidationRule{domain.Required()},
			Behavior: lock,
		},
		domain.FieldDescriptor{
			Name:         FieldEnableCreateResource,
			Kind:         domain.FieldKindRadio,
			LabelKey:     "components.AccessHelper.StorageMetaData.EnableCreateResource",
			TooltipKey:   "components.AccessHelper.StorageMetaData.EnableCreateResourceHelp",
			InitialValue: 1,
			Rules:        []domain.ValidationRule{domain.Required()},
			Props:        domain.Props{Options: yesNoOptions()},
			Behavior:     lock,
		},
		domain.FieldDescriptor{
			Name:     FieldUsername,
			Kind:     domain.FieldKindText,
			LabelKey: "components.AccessHelper.StorageMetaData.Username",
			Rules:    []domain.ValidationRule{domain.Required()},
			Behavior: lock,
		},
		domain.FieldDescriptor{
			Name:     FieldPassword,
			Kind:     domain.FieldKindPassword,
			LabelKey: "components.AccessHelper.StorageMetaData.Password",
			Rules:    []domain.ValidationRule{domain.Required()},
			Props:    domain.Props{MaxWidth: 500},
			Behavior: lock,
		},
		domain.FieldDescriptor{
			Name: FieldSinkFieldList,
			Kind: domain.FieldKindSubTable,
			SubTable: &domain.SubTable{
				Shared:  SourceDataFields(),
				Fields:  fieldList,
				Merge:   domain.MergeOverrideByName,
				TypeTag: typeTag,
			},
		},
		domain.FieldDescriptor{
			Name:      FieldStatus,
			Kind:      domain.FieldKindText,
			LabelKey:  "basic.Status",
			TableOnly: true,
		},
	)
}

func mustBuild(builder interface{ Build() (domain.Sink, error) }) domain.Sink {
	sink, err := builder.Build()
	if err != nil {
		panic(err)
	}
	return sink
}

package sinks

import "sink-schema-server/internal/metadata/domain"

const SinkTypePostgreSQL domain.SinkType = "POSTGRES"

const postgresKeyPrefix = "components.AccessHelper.StorageMetaData.PostgreSQL."

var postgreSQLFieldTypes = domain.OptionsOf(
	"SMALLINT",
	"INT2",
	"SMALLSERIAL",
	"SERIAL",
	"SERIAL2",
	"INTEGER",
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

func NewPostgreSQL(policy domain.LockPolicy) domain.Sink {
	fieldList := fieldListDescriptors("postgresql_fields", policy, postgresKeyPrefix, postgreSQLFieldTypes)

	return mustBuild(domain.NewSinkBuilder().
		WithType(SinkTypePostgreSQL).
		WithLabelKey("meta.Sinks.PostgreSQL").
		WithTypeTag(string(SinkTypePostgreSQL)).
		WithForm(connectionForm(policy, postgresKeyPrefix, "jdbc:postgresql://127.0.0.1:5432/db_name", fieldList, string(SinkTypePostgreSQL))).
		WithFieldList(FieldSinkFieldList))
}

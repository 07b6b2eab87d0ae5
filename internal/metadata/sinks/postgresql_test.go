package sinks_test

import (
	"sink-schema-server/internal/metadata/domain"
	"sink-schema-server/internal/metadata/sinks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PostgreSQL", func() {
	var columns []domain.ColumnSpec

	BeforeEach(func() {
		sink := sinks.NewPostgreSQL(domain.DefaultLockPolicy)
		columns = sink.GetFieldListColumns("", domain.NewEntityContext(nil, true, ""))
	})

	It("should share the field list layout with TDSQL-PostgreSQL", func() {
		indexes := make([]string, 0, len(columns))
		for _, c := range columns {
			indexes = append(indexes, c.DataIndex)
		}

		Expect(indexes).To(Equal([]string{
			sinks.FieldSourceFieldName,
			sinks.FieldSourceFieldType,
			sinks.FieldName,
			sinks.FieldType,
			sinks.FieldIsMetaField,
			sinks.FieldFormat,
			sinks.FieldComment,
		}))
	})

	It("should use its own label keys and tag", func() {
		name := columnNamed(columns, sinks.FieldName)

		Expect(name.Title.Prefix).To(Equal(string(sinks.SinkTypePostgreSQL)))
		Expect(name.Title.Key).To(Equal("components.AccessHelper.StorageMetaData.PostgreSQL.FieldName"))
	})

	It("should offer its own type catalog", func() {
		options := columnNamed(columns, sinks.FieldType).ResolveProps(domain.Record{}, 0, true).Options

		Expect(options).To(HaveLen(23))
		Expect(options[1]).To(Equal(domain.Option{Label: "INT2", Value: "INT2"}))
	})
})

package sinks_test

import (
	"sink-schema-server/internal/metadata/domain"
	"sink-schema-server/internal/metadata/sinks"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func columnNamed(columns []domain.ColumnSpec, name string) domain.ColumnSpec {
	for _, c := range columns {
		if c.DataIndex == name {
			return c
		}
	}
	Fail("column " + name + " not found")
	return domain.ColumnSpec{}
}

var _ = Describe("TDSQLPostgreSQL", func() {
	var sink domain.Sink

	BeforeEach(func() {
		sink = sinks.NewTDSQLPostgreSQL(domain.DefaultLockPolicy)
	})

	It("should list the connection form in order without table-only fields", func() {
		items := sink.GetForm(domain.ModeForm, domain.NewEntityContext(nil, false, "")).Items

		names := make([]string, 0, len(items))
		for _, i := range items {
			names = append(names, i.Name)
		}
		Expect(names).To(Equal([]string{
			sinks.FieldJdbcURL,
			sinks.FieldSchemaName,
			sinks.FieldTableName,
			sinks.FieldPrimaryKey,
			sinks.FieldEnableCreateResource,
			sinks.FieldUsername,
			sinks.FieldPassword,
			sinks.FieldSinkFieldList,
		}))
	})

	It("should include the status column in table columns", func() {
		columns := sink.TableColumns()

		Expect(columns).To(HaveLen(9))
		Expect(columns[8].DataIndex).To(Equal(sinks.FieldStatus))
	})

	Context("username", func() {
		var username domain.ColumnSpec

		BeforeEach(func() {
			entity := domain.NewEntityContext(domain.Record{"status": 130}, true, "")
			username = columnNamed(sink.GetForm(domain.ModeColumn, entity).Columns, sinks.FieldUsername)
		})

		It("should be disabled for existing rows of a locked entity", func() {
			Expect(username.ResolveProps(domain.Record{"status": 130}, 0, false).Disabled).To(BeTrue())
		})

		It("should stay editable for new rows", func() {
			Expect(username.ResolveProps(domain.Record{"status": 130}, 0, true).Disabled).To(BeFalse())
		})
	})

	Context("field list", func() {
		var columns []domain.ColumnSpec

		BeforeEach(func() {
			columns = sink.GetFieldListColumns("CSV", domain.NewEntityContext(domain.Record{"status": 110}, true, ""))
		})

		It("should put the shared source fields first with unique data indexes", func() {
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

		It("should prefix the tagged titles", func() {
			Expect(columnNamed(columns, sinks.FieldName).Title.Prefix).To(Equal("TDSQLPOSTGRESQL"))
			Expect(columnNamed(columns, sinks.FieldComment).Title.Prefix).To(BeEmpty())
		})

		DescribeTable("showing the format for format-required types",
			func(fieldType string, expected bool) {
				format := columnNamed(columns, sinks.FieldFormat)

				Expect(format.IsVisible(domain.Record{sinks.FieldType: fieldType})).To(Equal(expected))
			},
			Entry("BIGINT", "BIGINT", true),
			Entry("DATE", "DATE", true),
			Entry("TIMESTAMP", "TIMESTAMP", true),
			Entry("VARCHAR", "VARCHAR", false),
		)

		It("should lock committed field names and types but not new rows", func() {
			row := domain.Record{sinks.FieldName: "id", sinks.FieldType: "BIGINT"}

			Expect(columnNamed(columns, sinks.FieldName).ResolveProps(row, 0, false).Disabled).To(BeTrue())
			Expect(columnNamed(columns, sinks.FieldType).ResolveProps(row, 0, false).Disabled).To(BeTrue())
			Expect(columnNamed(columns, sinks.FieldName).ResolveProps(row, 3, true).Disabled).To(BeFalse())
		})

		It("should offer the type catalog", func() {
			options := columnNamed(columns, sinks.FieldType).ResolveProps(domain.Record{}, 0, true).Options

			Expect(options).To(HaveLen(23))
			Expect(options).To(ContainElement(domain.Option{Label: "TIMESTAMP", Value: "TIMESTAMP"}))
		})

		It("should freeze filled source fields of existing rows", func() {
			source := columnNamed(columns, sinks.FieldSourceFieldName)

			Expect(source.ResolveProps(domain.Record{sinks.FieldSourceFieldName: "id"}, 0, false).Disabled).To(BeTrue())
			Expect(source.ResolveProps(domain.Record{}, 0, false).Disabled).To(BeFalse())
		})

		It("should reject field names that are not lowercase identifiers", func() {
			errs := domain.ValidateRow(columns, domain.Record{
				sinks.FieldSourceFieldName: "id",
				sinks.FieldSourceFieldType: "int",
				sinks.FieldName:            "Field1",
				sinks.FieldType:            "INTEGER",
			}, 0)

			Expect(errs).To(HaveLen(1))
			Expect(errs[0].Field).To(Equal(sinks.FieldName))
			Expect(errs[0].MessageKey).To(Equal("components.AccessHelper.StorageMetaData.TDSQLPostgreSQL.FieldNameRule"))
		})
	})

	Context("returned projections", func() {
		It("should not write through table columns into the catalog", func() {
			columns := sink.TableColumns()
			create := columnNamed(columns, sinks.FieldEnableCreateResource)
			create.Props.Options[0].Label = "changed"
			create.Rules[0] = domain.Pattern(`^x$`, "changed")

			again := columnNamed(sink.TableColumns(), sinks.FieldEnableCreateResource)
			Expect(again.Props.Options[0].Label).To(Equal("basic.Yes"))
			Expect(again.Rules[0].Kind).To(Equal(domain.RuleKindRequired))
		})

		It("should not write through form items into the catalog", func() {
			entity := domain.NewEntityContext(nil, false, "")
			items := sink.GetForm(domain.ModeForm, entity).Items
			items[0].Rules[0] = domain.Pattern(`^x$`, "changed")
			items[4].Props.Options[0].Label = "changed"

			again := sink.GetForm(domain.ModeForm, entity).Items
			Expect(again[0].Rules[0].Kind).To(Equal(domain.RuleKindRequired))
			Expect(again[4].Props.Options[0].Label).To(Equal("basic.Yes"))
		})

		It("should not write through resolved options into the type catalog", func() {
			fieldType := columnNamed(sink.GetFieldListColumns("", domain.NewEntityContext(nil, false, "")), sinks.FieldType)
			props := fieldType.ResolveProps(domain.Record{}, 0, true)
			props.Options[0].Label = "changed"

			Expect(fieldType.ResolveProps(domain.Record{}, 0, true).Options[0].Label).To(Equal("SMALLINT"))
		})
	})
})

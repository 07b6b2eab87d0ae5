package domain_test

import (
	"sink-schema-server/internal/metadata/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Submission", func() {
	var items []domain.FormItem

	BeforeEach(func() {
		descriptors := []domain.FieldDescriptor{
			{Name: "tableName", Kind: domain.FieldKindText, Rules: []domain.ValidationRule{domain.Required()}},
			{
				Name:     "hidden",
				Kind:     domain.FieldKindText,
				Rules:    []domain.ValidationRule{domain.Required()},
				Behavior: domain.VisibleWhenIn{Field: "mode", Values: []string{"advanced"}},
			},
			{
				Name: "sinkFieldList",
				Kind: domain.FieldKindSubTable,
				SubTable: &domain.SubTable{
					Fields: domain.MustDescriptorSet("fields",
						domain.FieldDescriptor{
							Name:  "fieldName",
							Kind:  domain.FieldKindText,
							Rules: []domain.ValidationRule{domain.Required(), domain.Pattern(`^[a-z][0-9a-z_]*$`, "")},
						},
						domain.FieldDescriptor{Name: "fieldType", Kind: domain.FieldKindSelect},
						domain.FieldDescriptor{
							Name:     "fieldFormat",
							Kind:     domain.FieldKindAutoComplete,
							Behavior: domain.VisibleWhenIn{Field: "fieldType", Values: []string{"DATE"}},
						},
					),
				},
			},
		}
		items = domain.Transform(domain.TransformInput{Descriptors: descriptors, Mode: domain.ModeForm}).Items
	})

	Context("ValidateSubmission", func() {
		It("should skip hidden fields and report sub-table rows", func() {
			values := domain.Record{
				"tableName": "",
				"sinkFieldList": []any{
					map[string]any{"fieldName": "id", "fieldType": "BIGINT"},
					map[string]any{"fieldName": "Created", "fieldType": "DATE"},
				},
			}

			errs := domain.ValidateSubmission(items, values)

			row := 1
			Expect(errs).To(Equal([]domain.FieldError{
				{Field: "tableName", MessageKey: domain.MessageKeyRequired},
				{Field: "fieldName", Row: &row, MessageKey: domain.MessageKeyPattern},
			}))
		})
	})

	Context("CollectSubmission", func() {
		It("should drop hidden fields and hidden cells", func() {
			values := domain.Record{
				"tableName": "orders",
				"hidden":    "secret",
				"sinkFieldList": []domain.Record{
					{"fieldName": "id", "fieldType": "BIGINT", "fieldFormat": "SECONDS"},
					{"fieldName": "created", "fieldType": "DATE", "fieldFormat": "SQL"},
				},
			}

			collected := domain.CollectSubmission(items, values)

			Expect(collected).NotTo(HaveKey("hidden"))
			Expect(collected["sinkFieldList"]).To(Equal([]domain.Record{
				{"fieldName": "id", "fieldType": "BIGINT"},
				{"fieldName": "created", "fieldType": "DATE", "fieldFormat": "SQL"},
			}))
			Expect(values).To(HaveKey("hidden"))
		})
	})

	Context("ValidationRule", func() {
		It("should leave empty values to the required rule", func() {
			rule := domain.Pattern(`^[a-z]+$`, "")

			Expect(rule.Check("")).To(Succeed())
			Expect(rule.Check("abc")).To(Succeed())
			Expect(rule.Check("ABC")).To(MatchError(domain.ErrPatternMismatch))
			Expect(domain.Required().Check(nil)).To(MatchError(domain.ErrRequiredValue))
		})

		It("should marshal to the renderer rule shapes", func() {
			Expect(domain.Required().MarshalJSON()).To(MatchJSON(`{"required":true}`))
			Expect(domain.Pattern(`^[a-z]+$`, "NameRule").MarshalJSON()).To(MatchJSON(`{"pattern":"^[a-z]+$","message":"NameRule"}`))
		})
	})
})

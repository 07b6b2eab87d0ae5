package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"sink-schema-server/internal/metadata/domain"
	"sink-schema-server/internal/metadata/httpapi"
	"sink-schema-server/internal/metadata/usecases"
	mockusecases "sink-schema-server/test/unit/doubles/metadata/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

var _ = Describe("SinkSchemaController", func() {
	var (
		ctrl           *gomock.Controller
		mockService    *mockusecases.MockSchemaService
		mockTranslator *mockusecases.MockTranslator
		router         *http.ServeMux
		recorder       *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSchemaService(ctrl)
		mockTranslator = mockusecases.NewMockTranslator(ctrl)
		mockTranslator.EXPECT().Match(gomock.Any()).Return(language.English).AnyTimes()

		router = http.NewServeMux()
		httpapi.NewSinkSchemaController(mockService, mockTranslator).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("listSinks", func() {
		It("should return the registered sink types", func() {
			mockService.EXPECT().
				ListSinks(gomock.Any(), language.English).
				Return([]usecases.SinkSummary{{Type: "TDSQLPOSTGRESQL", Label: "TDSQL-PostgreSQL"}}, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sinks", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"sinks":[{"type":"TDSQLPOSTGRESQL","label":"TDSQL-PostgreSQL"}]}`))
		})

		It("should return 500 when the service fails", func() {
			mockService.EXPECT().ListSinks(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sinks", nil))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Context("getForm", func() {
		When("the query carries the entity context", func() {
			It("should pass mode, status, editing and data type to the service", func() {
				mockService.EXPECT().
					GetForm(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, query usecases.FormQuery) (usecases.FormView, error) {
						Expect(query.SinkType).To(Equal(domain.SinkType("TDSQLPOSTGRESQL")))
						Expect(query.Mode).To(Equal(domain.ModeColumn))
						Expect(query.IsEditing).To(BeTrue())
						Expect(query.DataType).To(Equal("DATE"))
						Expect(query.Values).To(HaveKeyWithValue(domain.RecordKeyStatus, 130))
						return usecases.FormView{
							SinkType: "TDSQLPOSTGRESQL",
							Mode:     domain.ModeColumn,
							Columns: []usecases.ColumnView{{
								Title:     "Username",
								DataIndex: "username",
								Kind:      domain.FieldKindText,
								Rules:     []usecases.RuleView{{Required: true}},
								Props:     domain.Props{Disabled: true},
								Dynamic:   true,
							}},
						}, nil
					})

				req := httptest.NewRequest(http.MethodGet, "/v1/sinks/TDSQLPOSTGRESQL/form?mode=col&status=130&editing=true&data_type=DATE", nil)
				router.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				var body map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
				Expect(body).To(HaveKeyWithValue("mode", "col"))
				Expect(body).NotTo(HaveKey("items"))
				columns := body["columns"].([]any)
				Expect(columns).To(HaveLen(1))
				column := columns[0].(map[string]any)
				Expect(column).To(HaveKeyWithValue("data_index", "username"))
				Expect(column).To(HaveKeyWithValue("kind", "input"))
				Expect(column["props"]).To(HaveKeyWithValue("disabled", true))
			})
		})

		It("should default to form mode", func() {
			mockService.EXPECT().
				GetForm(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, query usecases.FormQuery) (usecases.FormView, error) {
					Expect(query.Mode).To(Equal(domain.ModeForm))
					Expect(query.IsEditing).To(BeFalse())
					return usecases.FormView{SinkType: query.SinkType, Mode: domain.ModeForm, Items: []usecases.FormItemView{}}, nil
				})

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sinks/POSTGRES/form", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		DescribeTable("rejecting malformed queries",
			func(url string) {
				router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("unknown mode", "/v1/sinks/POSTGRES/form?mode=grid"),
			Entry("non numeric status", "/v1/sinks/POSTGRES/form?status=locked"),
			Entry("non boolean editing", "/v1/sinks/POSTGRES/form?editing=perhaps"),
		)

		It("should return 404 for unknown sink types", func() {
			mockService.EXPECT().GetForm(gomock.Any(), gomock.Any()).Return(usecases.FormView{}, domain.ErrSinkTypeNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sinks/KAFKA/form", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
			Expect(recorder.Body.String()).To(MatchJSON(`{"message":"sink type not found"}`))
		})
	})

	Context("getFieldColumns", func() {
		It("should return an empty list rather than null", func() {
			mockService.EXPECT().GetFieldColumns(gomock.Any(), gomock.Any()).Return(nil, nil)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sinks/POSTGRES/fields", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"columns":[]}`))
		})
	})

	Context("getTableColumns", func() {
		It("should return 404 for unknown sink types", func() {
			mockService.EXPECT().
				GetTableColumns(gomock.Any(), domain.SinkType("KAFKA"), language.English).
				Return(nil, domain.ErrSinkTypeNotFound)

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/sinks/KAFKA/table-columns", nil))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("resolveRow", func() {
		It("should resolve the row against the posted context", func() {
			mockService.EXPECT().
				ResolveRow(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, query usecases.RowQuery) (usecases.RowView, error) {
					Expect(query.Index).To(Equal(2))
					Expect(query.IsNew).To(BeFalse())
					Expect(query.IsEditing).To(BeTrue())
					Expect(query.Values).To(HaveKeyWithValue(domain.RecordKeyStatus, 110))
					Expect(query.Row.String("fieldType")).To(Equal("DATE"))
					return usecases.RowView{
						Cells:     []usecases.CellView{{DataIndex: "fieldFormat", Visible: true}},
						Deletable: false,
					}, nil
				})

			body := `{"row":{"fieldType":"DATE"},"index":2,"is_new":false,"status":110,"editing":true}`
			req := httptest.NewRequest(http.MethodPost, "/v1/sinks/TDSQLPOSTGRESQL/fields/resolve", strings.NewReader(body))
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{"cells":[{"data_index":"fieldFormat","props":{"disabled":false},"visible":true}],"deletable":false}`))
		})

		It("should reject malformed bodies", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/sinks/TDSQLPOSTGRESQL/fields/resolve", strings.NewReader(`{"row":`))
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("validateConfig", func() {
		It("should report field errors", func() {
			row := 0
			mockService.EXPECT().
				ValidateConfig(gomock.Any(), gomock.Any()).
				Return(usecases.ValidationResult{
					Valid:  false,
					Values: domain.Record{"tableName": "orders"},
					Errors: []usecases.FieldErrorView{{Field: "fieldName", Row: &row, Message: "invalid name"}},
				}, nil)

			req := httptest.NewRequest(http.MethodPost, "/v1/sinks/TDSQLPOSTGRESQL/validate", strings.NewReader(`{"values":{"tableName":"orders"}}`))
			router.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{
				"valid": false,
				"values": {"tableName": "orders"},
				"errors": [{"field": "fieldName", "row": 0, "message": "invalid name"}]
			}`))
		})
	})
})

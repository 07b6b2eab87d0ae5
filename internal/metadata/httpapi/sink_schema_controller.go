package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"sink-schema-server/internal/infra/httpserver"
	"sink-schema-server/internal/metadata/domain"
	"sink-schema-server/internal/metadata/httpapi/internal"
	"sink-schema-server/internal/metadata/usecases"

	"golang.org/x/text/language"
)

const (
	sinkTypeNotFoundErrMessage = "sink type not found"
	invalidModeErrMessage      = "mode must be form or col"
	invalidStatusErrMessage    = "status must be an integer"
	invalidEditingErrMessage   = "editing must be a boolean"
	invalidBodyErrMessage      = "invalid request body"
	listSinksErrMessage        = "failed to list sinks"
	getFormErrMessage          = "failed to get form"
	getFieldsErrMessage        = "failed to get field list columns"
	getTableColumnsErrMessage  = "failed to get table columns"
	resolveRowErrMessage       = "failed to resolve row"
	validateConfigErrMessage   = "failed to validate sink config"
)

type LanguageMatcher interface {
	Match(acceptLanguage string) language.Tag
}

func NewSinkSchemaController(service usecases.SchemaService, matcher LanguageMatcher) *SinkSchemaController {
	return &SinkSchemaController{
		service: service,
		matcher: matcher,
	}
}

var _ httpserver.Controller = &SinkSchemaController{}

type SinkSchemaController struct {
	service usecases.SchemaService
	matcher LanguageMatcher
}

func (c *SinkSchemaController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/sinks", c.listSinks())
	router.Handle("GET /v1/sinks/{type}/form", c.getForm())
	router.Handle("GET /v1/sinks/{type}/fields", c.getFieldColumns())
	router.Handle("GET /v1/sinks/{type}/table-columns", c.getTableColumns())
	router.Handle("POST /v1/sinks/{type}/fields/resolve", c.resolveRow())
	router.Handle("POST /v1/sinks/{type}/validate", c.validateConfig())
}

func (c *SinkSchemaController) listSinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sinks, err := c.service.ListSinks(r.Context(), c.language(r))
		if err != nil {
			slog.Error("listing sinks", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listSinksErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSinkListResponse(sinks))
	}
}

func (c *SinkSchemaController) getForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, err := domain.ParseMode(httpserver.GetQueryParam(r, "mode"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidModeErrMessage)
			return
		}

		query, ok := c.formQuery(w, r)
		if !ok {
			return
		}
		query.Mode = mode

		view, err := c.service.GetForm(r.Context(), query)
		if errors.Is(err, domain.ErrSinkTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, sinkTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting form", slog.String("sink_type", query.SinkType.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(view))
	}
}

func (c *SinkSchemaController) getFieldColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := c.formQuery(w, r)
		if !ok {
			return
		}

		columns, err := c.service.GetFieldColumns(r.Context(), query)
		if errors.Is(err, domain.ErrSinkTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, sinkTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting field list columns", slog.String("sink_type", query.SinkType.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getFieldsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToColumnListResponse(columns))
	}
}

func (c *SinkSchemaController) getTableColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sinkType := domain.SinkType(r.PathValue("type"))

		columns, err := c.service.GetTableColumns(r.Context(), sinkType, c.language(r))
		if errors.Is(err, domain.ErrSinkTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, sinkTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting table columns", slog.String("sink_type", sinkType.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getTableColumnsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToColumnListResponse(columns))
	}
}

func (c *SinkSchemaController) resolveRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ResolveRowRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding resolve row request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		values := domain.Record{}
		if body.Status != nil {
			values[domain.RecordKeyStatus] = *body.Status
		}
		query := usecases.RowQuery{
			FormQuery: usecases.FormQuery{
				SinkType:  domain.SinkType(r.PathValue("type")),
				Mode:      domain.ModeColumn,
				Language:  c.language(r),
				Values:    values,
				IsEditing: body.Editing,
				DataType:  body.DataType,
			},
			Row:   domain.Record(body.Row),
			Index: body.Index,
			IsNew: body.IsNew,
		}

		view, err := c.service.ResolveRow(r.Context(), query)
		if errors.Is(err, domain.ErrSinkTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, sinkTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("resolving row", slog.String("sink_type", query.SinkType.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, resolveRowErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRowResponse(view))
	}
}

func (c *SinkSchemaController) validateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ValidateConfigRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding validate config request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		query := usecases.FormQuery{
			SinkType:  domain.SinkType(r.PathValue("type")),
			Mode:      domain.ModeForm,
			Language:  c.language(r),
			Values:    domain.Record(body.Values),
			IsEditing: body.Editing,
		}

		result, err := c.service.ValidateConfig(r.Context(), query)
		if errors.Is(err, domain.ErrSinkTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, sinkTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("validating sink config", slog.String("sink_type", query.SinkType.String()), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, validateConfigErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToValidationResponse(result))
	}
}

// formQuery reads the entity context shared by the projection endpoints. It replies with
// 400 and returns false on malformed parameters.
func (c *SinkSchemaController) formQuery(w http.ResponseWriter, r *http.Request) (usecases.FormQuery, bool) {
	editing, err := httpserver.GetQueryParamBool(r, "editing")
	if err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidEditingErrMessage)
		return usecases.FormQuery{}, false
	}

	status, found, err := httpserver.GetQueryParamInt(r, "status")
	if err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidStatusErrMessage)
		return usecases.FormQuery{}, false
	}

	values := domain.Record{}
	if found {
		values[domain.RecordKeyStatus] = status
	}

	return usecases.FormQuery{
		SinkType:  domain.SinkType(r.PathValue("type")),
		Language:  c.language(r),
		Values:    values,
		IsEditing: editing,
		DataType:  httpserver.GetQueryParam(r, "data_type"),
	}, true
}

func (c *SinkSchemaController) language(r *http.Request) language.Tag {
	return c.matcher.Match(r.Header.Get("Accept-Language"))
}

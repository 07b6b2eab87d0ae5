package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sink-schema-server/internal/infra/cache"
	"sink-schema-server/internal/metadata/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/text/language"
)

const _tracerName = "sink-schema-server"

type SchemaServiceConfig struct {
	CacheTTL time.Duration
}

func NewSchemaService(
	registry SinkRegistry,
	translator Translator,
	cache cache.Cache,
	config SchemaServiceConfig,
) *SimpleSchemaService {
	service := &SimpleSchemaService{
		registry:   registry,
		translator: translator,
		cache:      cache,
		ttl:        config.CacheTTL,
	}
	service.setupOtelCounters()
	return service
}

var _ SchemaService = (*SimpleSchemaService)(nil)

type SimpleSchemaService struct {
	registry          SinkRegistry
	translator        Translator
	cache             cache.Cache
	ttl               time.Duration
	projectionCounter metric.Int64Counter
}

func (s *SimpleSchemaService) setupOtelCounters() {
	meter := otel.Meter("sink_schema_server")
	counter, err := meter.Int64Counter(
		fmt.Sprintf("%s.%s", "sink_schema_server", "schema.projections"),
		metric.WithDescription("sink_schema_server projections served"),
	)
	if err != nil {
		slog.Error("creating projection counter", slog.Any("error", err))
	}
	s.projectionCounter = counter
}

func (s *SimpleSchemaService) countProjection(ctx context.Context, sinkType domain.SinkType, kind string) {
	if s.projectionCounter == nil {
		return
	}
	s.projectionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("sink_type", sinkType.String()),
		attribute.String("projection", kind),
	))
}

func (s *SimpleSchemaService) ListSinks(ctx context.Context, tag language.Tag) ([]SinkSummary, error) {
	value, err := s.cache.GetOrSet(ctx, fmt.Sprintf("sinks:%s", tag), s.ttl, func() (any, error) {
		l := localizer{translator: s.translator, tag: tag}
		sinks := s.registry.List()
		result := make([]SinkSummary, 0, len(sinks))
		for _, sink := range sinks {
			result = append(result, SinkSummary{Type: sink.Type, Label: l.text(sink.LabelKey)})
		}
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing sinks: %w", err)
	}

	return value.([]SinkSummary), nil
}

func (s *SimpleSchemaService) GetForm(ctx context.Context, query FormQuery) (FormView, error) {
	ctx, span := otel.Tracer(_tracerName).Start(ctx, "schema.get_form")
	defer span.End()

	sink, err := s.getSink(query.SinkType)
	if err != nil {
		return FormView{}, err
	}

	projection := sink.GetForm(query.Mode, query.entity())
	s.countProjection(ctx, sink.Type, string(projection.Mode))

	l := localizer{translator: s.translator, tag: query.Language}
	view := FormView{SinkType: sink.Type, Mode: projection.Mode}
	switch projection.Mode {
	case domain.ModeColumn:
		view.Columns = l.columns(projection.Columns)
	case domain.ModeForm:
		view.Items = make([]FormItemView, 0, len(projection.Items))
		for _, item := range projection.Items {
			view.Items = append(view.Items, l.formItem(item))
		}
	}

	return view, nil
}

func (s *SimpleSchemaService) GetFieldColumns(ctx context.Context, query FormQuery) ([]ColumnView, error) {
	ctx, span := otel.Tracer(_tracerName).Start(ctx, "schema.get_field_columns")
	defer span.End()

	sink, err := s.getSink(query.SinkType)
	if err != nil {
		return nil, err
	}

	columns := sink.GetFieldListColumns(query.DataType, query.entity())
	s.countProjection(ctx, sink.Type, "fields")

	l := localizer{translator: s.translator, tag: query.Language}
	return l.columns(columns), nil
}

// GetTableColumns serves the context-free columns, which only vary by sink and language.
func (s *SimpleSchemaService) GetTableColumns(ctx context.Context, sinkType domain.SinkType, tag language.Tag) ([]ColumnView, error) {
	sink, err := s.getSink(sinkType)
	if err != nil {
		return nil, err
	}
	s.countProjection(ctx, sink.Type, "table")

	key := fmt.Sprintf("table-columns:%s:%s", sink.Type, tag)
	value, err := s.cache.GetOrSet(ctx, key, s.ttl, func() (any, error) {
		slog.Debug("localizing table columns", slog.String("sink_type", sink.Type.String()), slog.String("language", tag.String()))
		l := localizer{translator: s.translator, tag: tag}
		return l.columns(sink.TableColumns()), nil
	})
	if err != nil {
		return nil, fmt.Errorf("getting table columns: %w", err)
	}

	return value.([]ColumnView), nil
}

func (s *SimpleSchemaService) ResolveRow(ctx context.Context, query RowQuery) (RowView, error) {
	_, span := otel.Tracer(_tracerName).Start(ctx, "schema.resolve_row")
	defer span.End()

	sink, err := s.getSink(query.SinkType)
	if err != nil {
		return RowView{}, err
	}

	l := localizer{translator: s.translator, tag: query.Language}
	columns := sink.GetFieldListColumns(query.DataType, query.entity())
	view := RowView{
		Cells:     make([]CellView, 0, len(columns)),
		Deletable: domain.DeletePolicy{Editing: query.IsEditing}.CanDelete(query.Row, query.Index, query.IsNew),
	}
	for _, c := range columns {
		view.Cells = append(view.Cells, CellView{
			DataIndex: c.DataIndex,
			Props:     l.props(c.ResolveProps(query.Row, query.Index, query.IsNew)),
			Visible:   c.IsVisible(query.Row),
		})
	}

	return view, nil
}

// ValidateConfig applies the form rules to a submitted sink config and returns the values
// with hidden fields removed.
func (s *SimpleSchemaService) ValidateConfig(ctx context.Context, query FormQuery) (ValidationResult, error) {
	_, span := otel.Tracer(_tracerName).Start(ctx, "schema.validate_config")
	defer span.End()

	sink, err := s.getSink(query.SinkType)
	if err != nil {
		return ValidationResult{}, err
	}

	items := sink.GetForm(domain.ModeForm, query.entity()).Items
	errs := domain.ValidateSubmission(items, query.Values)
	if len(errs) > 0 {
		slog.Debug("sink config rejected",
			slog.String("sink_type", sink.Type.String()),
			slog.Int("errors", len(errs)))
	}

	l := localizer{translator: s.translator, tag: query.Language}
	return ValidationResult{
		Valid:  len(errs) == 0,
		Values: domain.CollectSubmission(items, query.Values),
		Errors: l.fieldErrors(errs),
	}, nil
}

func (s *SimpleSchemaService) getSink(sinkType domain.SinkType) (domain.Sink, error) {
	sink, err := s.registry.Get(sinkType)
	if err != nil {
		if errors.Is(err, domain.ErrSinkTypeNotFound) {
			return domain.Sink{}, domain.ErrSinkTypeNotFound
		}
		slog.Error("getting sink", slog.String("error", err.Error()))
		return domain.Sink{}, fmt.Errorf("getting sink: %w", err)
	}
	return sink, nil
}

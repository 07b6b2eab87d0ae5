package usecases

import (
	"context"

	"sink-schema-server/internal/metadata/domain"

	"golang.org/x/text/language"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/metadata/usecases/api_mock.go -package=usecases

type SchemaService interface {
	ListSinks(ctx context.Context, tag language.Tag) ([]SinkSummary, error)
	GetForm(ctx context.Context, query FormQuery) (FormView, error)
	GetFieldColumns(ctx context.Context, query FormQuery) ([]ColumnView, error)
	GetTableColumns(ctx context.Context, sinkType domain.SinkType, tag language.Tag) ([]ColumnView, error)
	ResolveRow(ctx context.Context, query RowQuery) (RowView, error)
	ValidateConfig(ctx context.Context, query FormQuery) (ValidationResult, error)
}

//go:build wireinject
// +build wireinject

package wire

import (
	"sink-schema-server/internal/infra/cache"
	"sink-schema-server/internal/infra/i18n"
	"sink-schema-server/internal/metadata/httpapi"
	"sink-schema-server/internal/metadata/sinks"
	"sink-schema-server/internal/metadata/usecases"

	"github.com/google/wire"
)

var SchemaServiceSet = wire.NewSet(
	provideAppConfig,
	provideLockPolicy,
	provideSinkRegistry,
	wire.Bind(new(usecases.SinkRegistry), new(*sinks.Registry)),
	provideTranslator,
	wire.Bind(new(usecases.Translator), new(*i18n.CatalogTranslator)),
	provideCache,
	wire.Bind(new(cache.Cache), new(*cache.RistrettoCache)),
	provideSchemaServiceConfig,
	usecases.NewSchemaService,
)

func InitializeSinkSchemaController() (*httpapi.SinkSchemaController, error) {
	wire.Build(
		SchemaServiceSet,
		wire.Bind(new(usecases.SchemaService), new(*usecases.SimpleSchemaService)),
		wire.Bind(new(httpapi.LanguageMatcher), new(*i18n.CatalogTranslator)),
		httpapi.NewSinkSchemaController,
	)
	return nil, nil
}

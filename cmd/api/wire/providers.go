package wire

import (
	"log/slog"

	"sink-schema-server/cmd/config"
	"sink-schema-server/internal/infra/cache"
	"sink-schema-server/internal/infra/i18n"
	"sink-schema-server/internal/metadata/domain"
	"sink-schema-server/internal/metadata/sinks"
	"sink-schema-server/internal/metadata/usecases"
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideLockPolicy(cfg config.AppConfig) domain.LockPolicy {
	if len(cfg.Schema.LockedStatuses) == 0 {
		slog.Warn("no locked statuses configured, using defaults",
			slog.Any("statuses", domain.DefaultLockPolicy.Statuses))
		return domain.DefaultLockPolicy
	}
	return domain.NewStatusLockPolicy(cfg.Schema.LockedStatuses...)
}

func provideSinkRegistry(policy domain.LockPolicy) (*sinks.Registry, error) {
	return sinks.NewDefaultRegistry(policy)
}

func provideTranslator(cfg config.AppConfig) (*i18n.CatalogTranslator, error) {
	return i18n.New(cfg.I18n.DefaultLanguage)
}

func provideCache(cfg config.AppConfig) (*cache.RistrettoCache, error) {
	return cache.New(&cache.CacheConfig{
		MaxCost:     cfg.Cache.MaxCost,
		NumCounters: cfg.Cache.NumCounters,
		BufferItems: cfg.Cache.BufferItems,
	})
}

func provideSchemaServiceConfig(cfg config.AppConfig) usecases.SchemaServiceConfig {
	return usecases.SchemaServiceConfig{CacheTTL: cfg.Cache.TTL}
}

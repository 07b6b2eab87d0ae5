package sinks

import (
	"fmt"
	"log/slog"

	"sink-schema-server/internal/metadata/domain"
)

// Registry maps sink type keys to their schema, keeping registration order.
type Registry struct {
	sinks map[domain.SinkType]domain.Sink
	order []domain.SinkType
}

func NewRegistry(sinks ...domain.Sink) (*Registry, error) {
	registry := &Registry{
		sinks: make(map[domain.SinkType]domain.Sink, len(sinks)),
		order: make([]domain.SinkType, 0, len(sinks)),
	}

	for _, sink := range sinks {
		if _, found := registry.sinks[sink.Type]; found {
			return nil, fmt.Errorf("registering sink %s: already registered", sink.Type)
		}
		registry.sinks[sink.Type] = sink
		registry.order = append(registry.order, sink.Type)
	}

	return registry, nil
}

// NewDefaultRegistry registers every built-in sink with the given lock policy.
func NewDefaultRegistry(policy domain.LockPolicy) (*Registry, error) {
	registry, err := NewRegistry(
		NewTDSQLPostgreSQL(policy),
		NewPostgreSQL(policy),
	)
	if err != nil {
		return nil, err
	}

	slog.Debug("sink registry initialized", slog.Int("sinks", len(registry.order)))
	return registry, nil
}

func (r *Registry) Get(sinkType domain.SinkType) (domain.Sink, error) {
	sink, found := r.sinks[sinkType]
	if !found {
		return domain.Sink{}, fmt.Errorf("%w: %s", domain.ErrSinkTypeNotFound, sinkType)
	}
	return sink, nil
}

func (r *Registry) List() []domain.Sink {
	result := make([]domain.Sink, 0, len(r.order))
	for _, t := range r.order {
		result = append(result, r.sinks[t])
	}
	return result
}

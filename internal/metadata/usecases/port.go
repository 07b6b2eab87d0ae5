package usecases

import (
	"sink-schema-server/internal/metadata/domain"

	"golang.org/x/text/language"
)

//go:generate mockgen -source=port.go -destination=../../../test/unit/doubles/metadata/usecases/port_mock.go -package=usecases -mock_names=SinkRegistry=MockSinkRegistry,Translator=MockTranslator

type SinkRegistry interface {
	Get(sinkType domain.SinkType) (domain.Sink, error)
	List() []domain.Sink
}

type Translator interface {
	Translate(tag language.Tag, key string) string
	Match(acceptLanguage string) language.Tag
}

package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Translator resolves label keys. Unknown keys resolve to themselves.
type Translator interface {
	Translate(tag language.Tag, key string) string
	Match(acceptLanguage string) language.Tag
}

var _ Translator = &CatalogTranslator{}

type CatalogTranslator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
	keys     map[string]bool
}

// New loads the embedded locales. defaultLanguage is used when negotiation fails.
func New(defaultLanguage string) (*CatalogTranslator, error) {
	return NewFromFS(localesFS, "locales", defaultLanguage)
}

func NewFromFS(fsys fs.FS, dir string, defaultLanguage string) (*CatalogTranslator, error) {
	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("parsing default language: %w", err)
	}

	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing locales: %w", err)
	}
	sort.Strings(files)

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	tags := []language.Tag{fallback}
	keys := map[string]bool{}

	for _, file := range files {
		tag, err := language.Parse(strings.TrimSuffix(path.Base(file), ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("parsing locale name %s: %w", file, err)
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", file, err)
		}

		messages := map[string]string{}
		if err := yaml.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("decoding locale %s: %w", file, err)
		}

		for key, value := range messages {
			keys[key] = true
			// Messages are printf formats; labels carry no verbs.
			if err := builder.SetString(tag, key, strings.ReplaceAll(value, "%", "%%")); err != nil {
				return nil, fmt.Errorf("registering %s message %s: %w", tag, key, err)
			}
		}

		if tag != fallback {
			tags = append(tags, tag)
		}
	}

	return &CatalogTranslator{
		catalog:  builder,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		fallback: fallback,
		keys:     keys,
	}, nil
}

// Translate never interprets the key as a format: literal labels come back unchanged.
func (t *CatalogTranslator) Translate(tag language.Tag, key string) string {
	if !t.keys[key] {
		return key
	}
	printer := message.NewPrinter(tag, message.Catalog(t.catalog))
	return printer.Sprintf(key)
}

// Match negotiates an Accept-Language header against the loaded locales.
func (t *CatalogTranslator) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.fallback
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return t.fallback
	}

	_, index, confidence := t.matcher.Match(desired...)
	if confidence == language.No {
		return t.fallback
	}
	return t.tags[index]
}

func (t *CatalogTranslator) Languages() []language.Tag {
	return append([]language.Tag(nil), t.tags...)
}

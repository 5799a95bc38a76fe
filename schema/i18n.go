package schema

import (
	"embed"

	i18n "github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewI18nBundle returns an initialized localization bundle with the
// embedded locale files, ready to build per-language localizers for
// EvaluationError.Localize.
func NewI18nBundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Package i18n provides interface labels for the Leo client in English and
// Thai.
package i18n

import (
	"context"
	"embed"

	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/logging"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

var messageFiles = []string{"active.en.toml", "active.th.toml"}

// Translator renders labels for one locale, falling back to English and
// then to the key itself.
type Translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
	log       logging.Logger
}

// NewTranslator builds a Translator for locale (e.g. "th"). An unparsable
// locale selects English.
func NewTranslator(locale string, log logging.Logger) *Translator {
	if log == nil {
		log = logging.Nop()
	}

	tag, err := language.Parse(locale)
	if err != nil {
		log.Warn(context.Background(), "i18n: unknown locale, using English", "locale", locale, "error", err)
		tag = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Error(context.Background(), "i18n: failed to load messages", "file", file, "error", err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
		log:       log,
	}
}

// Tag returns the selected language.
func (t *Translator) Tag() language.Tag { return t.tag }

// T renders the message identified by key with optional template data.
func (t *Translator) T(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.log.Debug(context.Background(), "i18n: localize failed", "key", key, "locale", t.tag.String(), "error", err)
		return key
	}
	return msg
}

// Status returns the display label of a submission status. Unknown
// statuses are shown as is.
func (t *Translator) Status(s models.SubmissionStatus) string {
	if !s.Valid() {
		return string(s)
	}
	return t.T("status."+string(s), nil)
}

// Package i18n resolves message keys to user-facing text in the site's
// three languages. Validation code emits stable keys; translation happens
// at the response boundary.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/spacemen100/house-haven-market-sub000/models"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLanguage is Georgian, the site's home market.
const DefaultLanguage = "ka"

// Languages lists the supported locale codes.
var Languages = []string{"ka", "en", "ru"}

// Translator holds one message catalog per supported language.
type Translator struct {
	catalogs map[string]map[string]string
}

// NewTranslator loads the embedded catalogs. A broken embed is a build
// defect, so it panics rather than returning an error.
func NewTranslator() *Translator {
	t := &Translator{catalogs: make(map[string]map[string]string, len(Languages))}
	for _, lang := range Languages {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.yaml", lang))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing embedded catalog %s: %v", lang, err))
		}
		catalog := map[string]string{}
		if err := yaml.Unmarshal(raw, &catalog); err != nil {
			panic(fmt.Sprintf("i18n: broken catalog %s: %v", lang, err))
		}
		t.catalogs[lang] = catalog
	}
	return t
}

// Supported reports whether lang is one of the site's locale codes.
func Supported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Pick resolves the request language: an explicit ?lang= wins, then the
// first supported Accept-Language entry, then the default.
func Pick(queryLang, acceptHeader string) string {
	if Supported(queryLang) {
		return queryLang
	}
	for _, part := range strings.Split(acceptHeader, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if len(tag) >= 2 && Supported(tag[:2]) {
			return tag[:2]
		}
	}
	return DefaultLanguage
}

// Translate resolves a key in lang, falling back to English and finally to
// the key itself so an untranslated message is never silently dropped.
func (t *Translator) Translate(lang, key string) string {
	if msg, ok := t.catalogs[lang][key]; ok {
		return msg
	}
	if msg, ok := t.catalogs["en"][key]; ok {
		return msg
	}
	return key
}

// TranslateFields maps every message key of a validation result into lang.
func (t *Translator) TranslateFields(lang string, fields models.FieldErrors) models.FieldErrors {
	if len(fields) == 0 {
		return fields
	}
	out := make(models.FieldErrors, len(fields))
	for field, key := range fields {
		out[field] = t.Translate(lang, key)
	}
	return out
}

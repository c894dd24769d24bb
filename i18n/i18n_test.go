package i18n

import (
	"testing"

	"github.com/spacemen100/house-haven-market-sub000/models"
)

func TestTranslateAllLanguages(t *testing.T) {
	tr := NewTranslator()

	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"en", "error.price.positive", "Price must be greater than zero"},
		{"ka", "error.price.positive", "ფასი უნდა იყოს ნულზე მეტი"},
		{"ru", "error.price.positive", "Цена должна быть больше нуля"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := tr.Translate(tt.lang, tt.key); got != tt.want {
				t.Errorf("Translate(%s, %s) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslateFallsBackToEnglishThenKey(t *testing.T) {
	tr := NewTranslator()

	// Unsupported language falls back to English
	if got := tr.Translate("de", "error.title.required"); got != "Title is required" {
		t.Errorf("got %q, want the English message", got)
	}
	// Unknown key falls back to the key itself
	if got := tr.Translate("en", "error.does.not.exist"); got != "error.does.not.exist" {
		t.Errorf("got %q, want the key itself", got)
	}
}

func TestEveryKeyPresentInEveryCatalog(t *testing.T) {
	tr := NewTranslator()

	for key := range tr.catalogs["en"] {
		for _, lang := range Languages {
			if _, ok := tr.catalogs[lang][key]; !ok {
				t.Errorf("catalog %s is missing key %s", lang, key)
			}
		}
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		accept string
		want   string
	}{
		{"explicit query wins", "ru", "en-US,en;q=0.9", "ru"},
		{"invalid query falls through to header", "de", "en-US,en;q=0.9", "en"},
		{"regional tag matches base language", "", "ka-GE,ka;q=0.9", "ka"},
		{"unsupported header falls back to default", "", "fr-FR,fr;q=0.9", DefaultLanguage},
		{"nothing at all", "", "", DefaultLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(tt.query, tt.accept); got != tt.want {
				t.Errorf("Pick(%q, %q) = %q, want %q", tt.query, tt.accept, got, tt.want)
			}
		})
	}
}

func TestTranslateFields(t *testing.T) {
	tr := NewTranslator()

	fields := models.FieldErrors{
		"price": "error.price.positive",
		"title": "error.title.required",
	}
	got := tr.TranslateFields("en", fields)
	if got["price"] != "Price must be greater than zero" {
		t.Errorf("price = %q", got["price"])
	}
	if got["title"] != "Title is required" {
		t.Errorf("title = %q", got["title"])
	}

	// Original map is untouched
	if fields["price"] != "error.price.positive" {
		t.Error("TranslateFields mutated its input")
	}
}

// Package i18n, sunucu tarafında render edilen sayfaların metinlerini
// kullanıcının diline göre döner.
//
// Dil şu sırayla belirlenir:
//  1. ?lang= query parametresi
//  2. Accept-Language header'ı
//  3. Varsayılan dil (es)
//
// Kullanım:
//
//	catalog, _ := i18n.Load(i18n.Locales())
//	loc := catalog.Localizer("en")
//	loc.T("interview.notAllowedTitle") // → "Cannot Start Interview"
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

// SupportedLanguages — desteklenen dil kodları.
var SupportedLanguages = []string{"es", "en"}

// DefaultLanguage — varsayılan dil.
const DefaultLanguage = "es"

// Catalog, tüm dillerin flat key → metin haritası.
// Load sonrası sadece okunur, goroutine'ler arası paylaşılabilir.
type Catalog struct {
	translations map[string]map[string]string
}

// Load, her desteklenen dil için <lang>.json dosyasını fsys'ten okur.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{translations: make(map[string]map[string]string)}

	for _, lang := range SupportedLanguages {
		fileName := lang + ".json"

		data, err := fs.ReadFile(fsys, fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to read translation file %s: %w", fileName, err)
		}

		var nested map[string]any
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
		}

		flat := make(map[string]string)
		flattenMap("", nested, flat)
		c.translations[lang] = flat
	}

	return c, nil
}

// Len, bir dildeki anahtar sayısını döner.
func (c *Catalog) Len(lang string) int {
	return len(c.translations[lang])
}

// Localizer, belirli bir dil için çeviri yapan struct.
type Localizer struct {
	catalog *Catalog
	lang    string
}

// Localizer, desteklenmeyen dilde varsayılana düşer.
func (c *Catalog) Localizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{catalog: c, lang: lang}
}

// Lang, localizer'ın aktif dil kodu.
func (l *Localizer) Lang() string {
	return l.lang
}

// T, anahtarın metnini döner.
// Bulunamazsa varsayılan dile, orada da yoksa anahtarın kendisine düşer.
func (l *Localizer) T(key string) string {
	if msg, ok := l.catalog.translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := l.catalog.translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// TWithParams, metindeki {{param}} yer tutucularını doldurur.
func (l *Localizer) TWithParams(key string, params map[string]string) string {
	msg := l.T(key)
	for k, v := range params {
		msg = strings.ReplaceAll(msg, "{{"+k+"}}", v)
	}
	return msg
}

// DetectLanguage, Accept-Language header'ından ilk desteklenen dili seçer.
// Header formatı: "en-US,en;q=0.9,es;q=0.8"
func DetectLanguage(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		base, _, _ := strings.Cut(tag, "-")
		lang := strings.ToLower(base)

		if isSupported(lang) {
			return lang
		}
	}

	return DefaultLanguage
}

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// flattenMap: {"meet": {"title": "..."}} → {"meet.title": "..."}
func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}

package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Locales, binary'ye gömülü locales/ dizinini döner.
func Locales() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		// "locales" sabit ve derleme zamanında mevcut.
		panic(err)
	}
	return sub
}

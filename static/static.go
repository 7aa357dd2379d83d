// Package static, sunucu tarafında render edilen sayfaların template'lerini
// ve tarayıcı asset'lerini binary'ye gömer.
//
//   - templates/: html/template dosyaları (layout + sayfa başına bir dosya)
//   - assets/:    /static/ altından servis edilen CSS ve JS
package static

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Templates, templates/ dizininin kökü.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embed path derleme zamanında sabit
	}
	return sub
}

// Assets, assets/ dizininin kökü.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

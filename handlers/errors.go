package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/akinalp/mulakat/pkg"
)

// Harici API'ye ulaşılamadığında auth endpoint'lerinin döndüğü sabit mesaj.
const msgExternalUnavailable = "Network error or external API unavailable"

// detail, "%w: detay" şeklinde sarılmış error'dan detay kısmını çıkarır.
func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// writeAuthError, auth endpoint'leri için { "message": ... } hata yanıtı yazar.
//
//   - ErrBadRequest     → 400, validation mesajı
//   - UpstreamError     → harici status + mesaj aynen
//   - ErrConfiguration  → 500, eksik ayarın adı
//   - diğer her şey     → 500 "Network error or external API unavailable"
func writeAuthError(w http.ResponseWriter, err error) {
	if ue, ok := pkg.AsUpstream(err); ok {
		pkg.Message(w, ue.Status, ue.Message)
		return
	}

	switch {
	case errors.Is(err, pkg.ErrBadRequest):
		pkg.Message(w, http.StatusBadRequest, detail(err, pkg.ErrBadRequest))
	case errors.Is(err, pkg.ErrConfiguration):
		pkg.Message(w, http.StatusInternalServerError, detail(err, pkg.ErrConfiguration))
	default:
		pkg.Message(w, http.StatusInternalServerError, msgExternalUnavailable)
	}
}

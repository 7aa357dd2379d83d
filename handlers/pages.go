package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg"
	"github.com/akinalp/mulakat/pkg/i18n"
	"github.com/akinalp/mulakat/services"
)

// pageNames, templates/ altında layout.html ile birlikte parse edilen sayfalar.
var pageNames = []string{"home", "meet", "interview", "closing"}

// PageHandler, sunucu tarafında render edilen sayfaları servis eder.
type PageHandler struct {
	pages       map[string]*template.Template
	catalog     *i18n.Catalog
	meetService services.MeetService
	provider    string
	logger      logr.Logger
}

// NewPageHandler, template'leri parse eder. Hatalı template başlangıçta yakalanır.
func NewPageHandler(templates fs.FS, catalog *i18n.Catalog, meetService services.MeetService, provider string, logger logr.Logger) (*PageHandler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).ParseFS(templates, "layout.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &PageHandler{
		pages:       pages,
		catalog:     catalog,
		meetService: meetService,
		provider:    provider,
		logger:      logger.WithName("pages"),
	}, nil
}

// pageData, tüm sayfaların ortak template verisi.
type pageData struct {
	L *i18n.Localizer

	Token       string
	MeetID      string
	CandidateID string

	// meet sayfası
	State         string // denied | error | notfound | ready
	Meet          *models.Meet
	TypeLabel     string
	DurationLabel string

	// interview sayfası
	Allowed  bool
	Provider string
}

// Home godoc
// GET /
// ?token=...&meet_id=... ile gelinir; script token'ı session'a çevirir.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.render(w, r, "home", &pageData{
		Token:  q.Get("token"),
		MeetID: q.Get("meet_id"),
	})
}

// Meet godoc
// GET /meet/{id}?token=... (guarded)
//
// Meet bilgisi token ile çekilir. Token yoksa access denied, fetch hatasında
// error, boş yanıtta not found durumu render edilir.
func (h *PageHandler) Meet(w http.ResponseWriter, r *http.Request) {
	data := &pageData{
		Token:  r.URL.Query().Get("token"),
		MeetID: r.PathValue("id"),
	}

	if data.Token == "" {
		data.State = "denied"
		h.render(w, r, "meet", data)
		return
	}

	meet, err := h.meetService.GetByToken(r.Context(), data.Token)
	switch {
	case errors.Is(err, pkg.ErrNotFound):
		data.State = "notfound"
	case err != nil:
		h.logger.Error(err, "failed to load meet", "meetId", data.MeetID)
		data.State = "error"
	default:
		data.State = "ready"
		data.Meet = meet
	}

	h.render(w, r, "meet", data)
}

// Interview godoc
// GET /interview?meet_id=...&candidate_id=... (guarded)
func (h *PageHandler) Interview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := &pageData{
		MeetID:      q.Get("meet_id"),
		CandidateID: q.Get("candidate_id"),
		Provider:    h.provider,
	}

	allowed, meet := h.meetService.CanStartInterview(r.Context(), data.MeetID)
	data.Allowed = allowed
	if meet != nil && data.CandidateID == "" {
		data.CandidateID = meet.CandidateID
	}

	h.render(w, r, "interview", data)
}

// Closing godoc
// GET /interview/closing (guarded)
func (h *PageHandler) Closing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "closing", &pageData{})
}

// localizer, ?lang= veya Accept-Language'den dili seçer.
func (h *PageHandler) localizer(r *http.Request) *i18n.Localizer {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	}
	return h.catalog.Localizer(lang)
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string, data *pageData) {
	data.L = h.localizer(r)
	if data.Meet != nil {
		data.TypeLabel = meetTypeLabel(data.L, data.Meet.Type)
		data.DurationLabel = data.L.TWithParams("meet.durationValue", map[string]string{
			"minutes": strconv.Itoa(data.Meet.Duration),
		})
	}

	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error(err, "template render failed", "page", page)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func meetTypeLabel(l *i18n.Localizer, t models.MeetType) string {
	switch t {
	case models.MeetTypeTechnical, models.MeetTypeBehavioral, models.MeetTypeCulturalFit, models.MeetTypeScreening:
		return l.T("meet.types." + string(t))
	default:
		return l.T("meet.types.default")
	}
}

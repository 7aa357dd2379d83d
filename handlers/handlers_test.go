package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/mulakat/middleware"
	"github.com/akinalp/mulakat/models"
	"github.com/akinalp/mulakat/pkg/i18n"
	"github.com/akinalp/mulakat/pkg/ratelimit"
	"github.com/akinalp/mulakat/pkg/voiceai"
	"github.com/akinalp/mulakat/repository"
	"github.com/akinalp/mulakat/services"
	"github.com/akinalp/mulakat/static"
)

const testSecret = "handler-test-secret"

// externalAPI, harici backend'i taklit eden httptest sunucusu.
// Gelen her isteği "METHOD path" olarak kaydeder.
type externalAPI struct {
	*httptest.Server
	mux *http.ServeMux

	mu     sync.Mutex
	calls  []string
	bodies map[string]string
}

func newExternalAPI(t *testing.T) *externalAPI {
	t.Helper()
	api := &externalAPI{mux: http.NewServeMux(), bodies: make(map[string]string)}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.Path

		api.mu.Lock()
		api.calls = append(api.calls, key)
		api.bodies[key] = string(body)
		api.mu.Unlock()

		r.Body = io.NopCloser(strings.NewReader(string(body)))
		api.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(api.Close)
	return api
}

func (a *externalAPI) respond(pattern string, status int, body string) {
	a.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func (a *externalAPI) recorded() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.calls...)
}

func (a *externalAPI) bodyOf(key string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bodies[key]
}

// testApp, gerçek service'ler + harici API sahtesi ile kurulmuş router.
type testApp struct {
	mux      *http.ServeMux
	sessions services.SessionService
}

func newTestApp(t *testing.T, apiURL string, limiter *ratelimit.LoginRateLimiter) *testApp {
	t.Helper()
	log := logr.Discard()

	client := repository.NewAPIClient(apiURL, 5*time.Second)
	meetRepo := repository.NewHTTPMeetRepo(client)
	sessions := services.NewSessionService(testSecret, false)

	authSvc := services.NewAuthService(repository.NewHTTPAuthRepo(client), sessions, log)
	meetSvc := services.NewMeetService(meetRepo, models.NewEntryPolicy([]string{"pending", "active"}), log)
	provider := voiceai.NewElevenLabs(apiURL, "xi-test-key", nil)
	voiceSvc := services.NewVoiceService(repository.NewHTTPAgentRepo(client), provider, "default-agent", log)
	convSvc := services.NewConversationService(meetRepo, repository.NewHTTPConversationRepo(client), nil, log)

	catalog, err := i18n.Load(i18n.Locales())
	require.NoError(t, err)
	pages, err := NewPageHandler(static.Templates(), catalog, meetSvc, provider.Name(), log)
	require.NoError(t, err)

	auth := NewAuthHandler(authSvc, limiter, log)
	meet := NewMeetHandler(meetSvc)
	voice := NewVoiceHandler(voiceSvc)
	conv := NewConversationHandler(convSvc)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth", auth.Login)
	mux.HandleFunc("GET /api/auth/token", auth.TokenLoginQuery)
	mux.HandleFunc("POST /api/auth/token", auth.TokenLoginBody)
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/meets", meet.GetByToken)
	mux.HandleFunc("GET /api/meets/{id}", meet.Get)
	mux.HandleFunc("PUT /api/meets/{id}", meet.UpdateStatus)
	mux.HandleFunc("GET /api/signed-url", voice.SignedURL)
	mux.Handle("POST /api/conversations", middleware.NewAuthMiddleware(sessions).Require(http.HandlerFunc(conv.Finish)))
	mux.HandleFunc("GET /meet/{id}", pages.Meet)
	mux.HandleFunc("GET /interview", pages.Interview)
	mux.HandleFunc("GET /interview/closing", pages.Closing)

	return &testApp{mux: mux, sessions: sessions}
}

func (a *testApp) do(method, target, body string) *httptest.ResponseRecorder {
	return a.doWithCookie(method, target, body, nil)
}

func (a *testApp) doWithCookie(method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

// meetCookie, verilen meet'e bağlı geçerli bir session cookie'si üretir.
func (a *testApp) meetCookie(t *testing.T, meetID string) *http.Cookie {
	t.Helper()
	issued, err := a.sessions.Issue(models.SessionIdentity{MeetID: meetID})
	require.NoError(t, err)
	return issued.Cookie
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == services.SessionCookieName {
			return c
		}
	}
	return nil
}

// ─── Auth ───

func TestLogin_SetsSessionCookieAndMergesPayload(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("POST /api/auth", http.StatusOK, `{"token":"ext-token","user":{"id":"u1"}}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPost, "/api/auth", `{"email":"a@b.co","password":"pw","meetId":"m1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Authentication successful", body["message"])
	assert.Equal(t, "ext-token", body["token"])
	assert.Equal(t, map[string]any{"id": "u1"}, body["user"], "external keys override the envelope")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)

	claims, err := app.sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", claims.Email)
	assert.Equal(t, "m1", claims.MeetID)

	assert.JSONEq(t, `{"email":"a@b.co","password":"pw","meetId":"m1"}`, api.bodyOf("POST /api/auth"))
}

func TestLogin_EmptyCredentialsNeverReachExternalAPI(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPost, "/api/auth", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, rec)["message"])
	assert.Nil(t, sessionCookie(rec))
	assert.Empty(t, api.recorded())
}

func TestLogin_InvalidBody(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPost, "/api/auth", `not-json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, rec)["message"])
}

func TestLogin_UpstreamStatusIsPropagated(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("POST /api/auth", http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPost, "/api/auth", `{"email":"a@b.co","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_UnreachableAPI(t *testing.T) {
	api := newExternalAPI(t)
	url := api.URL
	api.Close()
	app := newTestApp(t, url, nil)

	rec := app.do(http.MethodPost, "/api/auth", `{"email":"a@b.co","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgExternalUnavailable, decodeBody(t, rec)["message"])
}

func TestLogin_MissingAPIURL(t *testing.T) {
	app := newTestApp(t, "", nil)

	rec := app.do(http.MethodPost, "/api/auth", `{"email":"a@b.co","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "API_URL is not configured", decodeBody(t, rec)["message"])
}

func TestLogin_RateLimited(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("POST /api/auth", http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Close)
	app := newTestApp(t, api.URL, limiter)

	for range 2 {
		rec := app.do(http.MethodPost, "/api/auth", `{"email":"a@b.co","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := app.do(http.MethodPost, "/api/auth", `{"email":"a@b.co","password":"wrong"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Len(t, api.recorded(), 2, "limited attempt must not reach the external API")
}

func TestTokenLogin_MissingToken(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		message string
	}{
		{"query without token", http.MethodGet, "/api/auth/token", "", "Missing token"},
		{"body without token", http.MethodPost, "/api/auth/token", `{}`, "Missing token"},
		{"malformed body", http.MethodPost, "/api/auth/token", `{`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeBody(t, rec)["message"])
		})
	}
	assert.Empty(t, api.recorded())
}

func TestTokenLogin_SessionCarriesMeetIDOnly(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("POST /api/auth/token", http.StatusOK, `{"user":{"meet_id":"m9"}}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/api/auth/token?token=link-123", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	claims, err := app.sessions.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "m9", claims.MeetID)
	assert.Empty(t, claims.Email)

	assert.JSONEq(t, `{"token":"link-123"}`, api.bodyOf("POST /api/auth/token"))
}

func TestLogout_ClearsCookie(t *testing.T) {
	app := newTestApp(t, "", nil)

	rec := app.do(http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

// ─── Meets ───

func TestGetMeet(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("GET /api/meets/m1", http.StatusOK, `{"id":"m1","status":"pending","type":"technical","candidate_id":"c1"}`)
	api.respond("GET /api/meets/gone", http.StatusOK, `null`)
	api.respond("GET /api/meets/secret", http.StatusForbidden, `{"message":"forbidden"}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/api/meets/m1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "m1", body["id"])
	assert.Equal(t, "c1", body["candidate_id"])

	rec = app.do(http.MethodGet, "/api/meets/gone", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Meet not found", decodeBody(t, rec)["error"])

	rec = app.do(http.MethodGet, "/api/meets/secret", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Failed to fetch meet", decodeBody(t, rec)["error"])
}

func TestGetMeetByToken_MissingToken(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/api/meets", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing token", decodeBody(t, rec)["error"])
	assert.Empty(t, api.recorded())
}

func TestUpdateStatus_InvalidStatusNeverReachesExternalAPI(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPut, "/api/meets/m1", `{"status":"cancelled"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status must be either 'active' or 'completed'", decodeBody(t, rec)["error"])

	rec = app.do(http.MethodPut, "/api/meets/m1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status is required", decodeBody(t, rec)["error"])

	assert.Empty(t, api.recorded())
}

func TestUpdateStatus_Success(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("PUT /api/meets/m1", http.StatusOK, `{}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPut, "/api/meets/m1", `{"status":"active"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"meetId":"m1","status":"active","message":"Meet m1 status updated to active"}`,
		rec.Body.String())
	assert.JSONEq(t, `{"status":"active"}`, api.bodyOf("PUT /api/meets/m1"))
}

func TestUpdateStatus_UpstreamFailure(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("PUT /api/meets/m1", http.StatusBadGateway, `{"message":"boom"}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPut, "/api/meets/m1", `{"status":"completed"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to update meet status", decodeBody(t, rec)["error"])
}

// ─── Signed URL ───

func TestSignedURL_AgentFetchFails(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("GET /api/meets/m1/agent", http.StatusInternalServerError, `{}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/api/signed-url?meet_id=m1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to fetch agent data", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestSignedURL_ResolvesAgentForMeet(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("GET /api/meets/m1/agent", http.StatusOK, `{"agent_id":"ag-1"}`)

	var gotAgent, gotKey string
	api.mux.HandleFunc("GET /v1/convai/conversation/get-signed-url", func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.URL.Query().Get("agent_id")
		gotKey = r.Header.Get("xi-api-key")
		io.WriteString(w, `{"signed_url":"wss://voice.example/abc"}`)
	})
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/api/signed-url?meet_id=m1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wss://voice.example/abc", decodeBody(t, rec)["signedUrl"])
	assert.Equal(t, "ag-1", gotAgent)
	assert.Equal(t, "xi-test-key", gotKey)
}

func TestSignedURL_DefaultAgentWithoutMeet(t *testing.T) {
	api := newExternalAPI(t)
	var gotAgent string
	api.mux.HandleFunc("GET /v1/convai/conversation/get-signed-url", func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.URL.Query().Get("agent_id")
		io.WriteString(w, `{"signed_url":"wss://voice.example/def"}`)
	})
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/api/signed-url", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "default-agent", gotAgent)
}

func TestSignedURL_BlankMeetID(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	for _, target := range []string{"/api/signed-url?meet_id=", "/api/signed-url?meet_id=%20%20"} {
		rec := app.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Invalid meet_id", decodeBody(t, rec)["error"], target)
	}
	assert.Empty(t, api.recorded(), "default agent must not be used")
}

// ─── Conversations ───

func TestConversationFinish_CompletesMeetThenSaves(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("PUT /api/meets/m1", http.StatusOK, `{}`)
	api.respond("POST /api/conversations", http.StatusCreated, `{"id":"conv-1"}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.doWithCookie(http.MethodPost, "/api/conversations",
		`{"meet_id":"m1","candidate_id":"c1","conversation_data":[{"source":"ai","message":"Hi"},{"source":"user","message":"Hello"}]}`,
		app.meetCookie(t, "m1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"statusUpdated":true,"saved":true}`, rec.Body.String())

	assert.Equal(t, []string{"PUT /api/meets/m1", "POST /api/conversations"}, api.recorded())
	assert.JSONEq(t, `{"status":"completed"}`, api.bodyOf("PUT /api/meets/m1"))
	assert.JSONEq(t,
		`{"meet_id":"m1","candidate_id":"c1","conversation_data":[{"source":"ai","message":"Hi"},{"source":"user","message":"Hello"}]}`,
		api.bodyOf("POST /api/conversations"))
}

func TestConversationFinish_RejectsUnknownSource(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.doWithCookie(http.MethodPost, "/api/conversations",
		`{"meet_id":"m1","conversation_data":[{"source":"bot","message":"?"}]}`,
		app.meetCookie(t, "m1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "invalid source")
	assert.Empty(t, api.recorded())
}

func TestConversationFinish_RequiresSession(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodPost, "/api/conversations", `{"meet_id":"m1","conversation_data":[]}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, api.recorded())
}

func TestConversationFinish_RejectsOtherMeet(t *testing.T) {
	api := newExternalAPI(t)
	app := newTestApp(t, api.URL, nil)

	rec := app.doWithCookie(http.MethodPost, "/api/conversations",
		`{"meet_id":"victim","conversation_data":[{"source":"user","message":"overwrite"}]}`,
		app.meetCookie(t, "m1"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeBody(t, rec)["error"])
	assert.Empty(t, api.recorded(), "no meet status change and no transcript write")
}

func TestConversationFinish_DefaultsToSessionMeet(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("PUT /api/meets/m1", http.StatusOK, `{}`)
	api.respond("POST /api/conversations", http.StatusCreated, `{"id":"conv-1"}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.doWithCookie(http.MethodPost, "/api/conversations",
		`{"conversation_data":[{"source":"ai","message":"Hi"}]}`,
		app.meetCookie(t, "m1"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"PUT /api/meets/m1", "POST /api/conversations"}, api.recorded())
}

// ─── Pages ───

func TestMeetPage_States(t *testing.T) {
	api := newExternalAPI(t)
	api.mux.HandleFunc("GET /api/meets", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("token") {
		case "good":
			io.WriteString(w, `{"id":"m1","status":"pending","type":"technical","duration":30,"candidate_id":"c1","candidate":{"name":"Ada"}}`)
		case "empty":
			io.WriteString(w, `null`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})
	app := newTestApp(t, api.URL, nil)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"no token", "/meet/m1?lang=en", []string{"Access Denied"}},
		{"empty body", "/meet/m1?lang=en&token=empty", []string{"Meeting Not Found"}},
		{"fetch error", "/meet/m1?lang=en&token=bad", []string{"Error Loading Meeting"}},
		{"ready", "/meet/m1?lang=en&token=good", []string{
			`data-meet-id="m1"`, "Technical Interview", "30 minutes", "Ada", "/static/meet.js",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			for _, s := range tt.want {
				assert.Contains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestInterviewPage_EntryPolicy(t *testing.T) {
	api := newExternalAPI(t)
	api.respond("GET /api/meets/open", http.StatusOK, `{"id":"open","status":"pending","candidate_id":"c1"}`)
	api.respond("GET /api/meets/done", http.StatusOK, `{"id":"done","status":"completed"}`)
	app := newTestApp(t, api.URL, nil)

	rec := app.do(http.MethodGet, "/interview?lang=en&meet_id=open", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-meet-id="open"`)
	assert.Contains(t, body, `data-candidate-id="c1"`, "candidate falls back to the meet record")
	assert.Contains(t, body, `data-provider="elevenlabs"`)
	assert.Contains(t, body, "/static/interview.js")

	rec = app.do(http.MethodGet, "/interview?lang=en&meet_id=done", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cannot Start Interview")
	assert.NotContains(t, rec.Body.String(), "/static/interview.js")

	rec = app.do(http.MethodGet, "/interview?lang=en", "")
	assert.Contains(t, rec.Body.String(), "Cannot Start Interview")
}

func TestPages_LanguageFromAcceptLanguage(t *testing.T) {
	app := newTestApp(t, "", nil)

	req := httptest.NewRequest(http.MethodGet, "/meet/m1", nil)
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
	rec := httptest.NewRecorder()
	app.mux.ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), "Acceso Denegado")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestClosingPage(t *testing.T) {
	app := newTestApp(t, "", nil)

	rec := app.do(http.MethodGet, "/interview/closing?lang=en", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thank you for your time")
}

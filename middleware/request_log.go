package middleware

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/akinalp/mulakat/pkg"
)

// RequestIDHeader, request id'nin taşındığı header.
const RequestIDHeader = "X-Request-ID"

// statusRecorder, yazılan status code'u yakalar.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap, http.ResponseController'ın alttaki writer'a ulaşmasını sağlar.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack, WebSocket upgrade için gerekli.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// RequestLog, her request'e id verir ve method/path/status/süre loglar.
// Gelen X-Request-ID varsa korunur.
func RequestLog(logger logr.Logger) func(http.Handler) http.Handler {
	logger = logger.WithName("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.Info("request",
				"id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

// Recover, handler panic'lerini 500'e çevirir. Süreç ayakta kalır.
func Recover(logger logr.Logger) func(http.Handler) http.Handler {
	logger = logger.WithName("recover")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					logger.Error(nil, "panic in handler", "panic", v, "path", r.URL.Path, "stack", string(debug.Stack()))
					pkg.ErrorWithMessage(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

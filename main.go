// Package main, mülakat sunucusunun giriş noktasıdır.
//
// Bu dosyanın görevi, Dependency Injection "wire-up":
//  1. Logger'ı kur (slog JSON handler → logr)
//  2. Config'i yükle
//  3. i18n katalogunu yükle
//  4. Repository'leri oluştur (harici API client ile)
//  5. Service'leri oluştur
//  6. WebSocket Hub'ı ve login rate limiter'ı oluştur
//  7. Handler'ları oluştur, route'ları bağla
//  8. Middleware zincirini kur (recover, request log, CORS, route guard)
//  9. HTTP Server'ı başlat
//  10. Graceful shutdown
//
// Global değişken YOK; her şey newApp içinde oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"

	"github.com/akinalp/mulakat/config"
	"github.com/akinalp/mulakat/pkg/i18n"
	"github.com/akinalp/mulakat/pkg/ratelimit"
	"github.com/akinalp/mulakat/ws"
)

// shutdownTimeout, açık transcript oturumlarının flush edilmesi ve
// HTTP isteklerinin bitmesi için tanınan süre.
const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config yoksa log seviyesi de yok, varsayılan logger ile çık.
		newLogger("info").Error(err, "failed to load config")
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)
	logger.Info("mulakat server starting", "env", cfg.App.Env, "provider", cfg.Voice.Provider)

	a, err := newApp(cfg, logger)
	if err != nil {
		logger.Error(err, "failed to initialize application")
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           a.handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
		// WriteTimeout yok: WebSocket bağlantıları uzun ömürlüdür.
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", "addr", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "server error")
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Önce transcript oturumlarını kapat, her biri son kez flush edilir.
	// Sonra HTTP server'ı kapat; yeni request kabul etmeyi durdurur.
	a.close(ctx)

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error(err, "forced shutdown")
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// app, kurulmuş HTTP handler'ı ve kapatılması gereken kaynakları taşır.
type app struct {
	handler      http.Handler
	hub          *ws.Hub
	loginLimiter *ratelimit.LoginRateLimiter
	logger       logr.Logger
}

func newApp(cfg *config.Config, logger logr.Logger) (*app, error) {
	catalog, err := i18n.Load(i18n.Locales())
	if err != nil {
		return nil, err
	}

	repos := initRepositories(cfg)

	svcs, err := initServices(cfg, repos, logger)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(logger)

	var loginLimiter *ratelimit.LoginRateLimiter
	if cfg.RateLimit.LoginAttempts > 0 {
		loginLimiter = ratelimit.NewLoginRateLimiter(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)
	}

	h, err := initHandlers(cfg, svcs, hub, catalog, loginLimiter, logger)
	if err != nil {
		if loginLimiter != nil {
			loginLimiter.Close()
		}
		return nil, err
	}

	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Sessions)

	return &app{
		handler:      wrapHandler(cfg, mux, svcs.Sessions, logger),
		hub:          hub,
		loginLimiter: loginLimiter,
		logger:       logger,
	}, nil
}

// close, açık WebSocket oturumlarını flush edip kapatır ve arka plan
// goroutine'lerini durdurur.
func (a *app) close(ctx context.Context) {
	if err := a.hub.Shutdown(ctx); err != nil {
		a.logger.Error(err, "transcript sessions did not finish in time", "open", a.hub.Count())
	}
	if a.loginLimiter != nil {
		a.loginLimiter.Close()
	}
}

// newLogger, stdout'a JSON yazan slog handler'ını logr'a sarar.
// Service'lerdeki V(1) logları "debug" seviyesinde görünür.
func newLogger(level string) logr.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return logr.FromSlogHandler(handler)
}

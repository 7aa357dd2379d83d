// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config bir kere (main'de) oluşturulur ve pointer olarak ihtiyaç duyan
// katmanlara verilir. Paket seviyesinde global state tutulmaz.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server    ServerConfig
	App       AppConfig
	JWT       JWTConfig
	API       APIConfig
	Voice     VoiceConfig
	Interview InterviewConfig
	Email     EmailConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// AppConfig, uygulama genel ayarları.
type AppConfig struct {
	Env               string   // "production" ise cookie Secure flag'i açılır
	EntryPath         string   // Route guard redirect hedefi (varsayılan: "/")
	ProtectedPrefixes []string // Oturum gerektiren path prefix'leri
	PublicURL         string   // Email'lerdeki link'ler için (opsiyonel)
}

// JWTConfig, session token ayarları.
type JWTConfig struct {
	Secret     string        // Token imzalama anahtarı, GİZLİ TUTULMALI
	SessionTTL time.Duration // Sabit 24 saat; env ile değiştirilmez
}

// APIConfig, harici backend API ayarları.
type APIConfig struct {
	BaseURL string        // API_URL, yoksa NEXT_PUBLIC_API_URL
	Timeout time.Duration // 0 = transport varsayılanı (timeout yok)
}

// VoiceConfig, konuşma AI sağlayıcısı ayarları.
type VoiceConfig struct {
	Provider          string // "elevenlabs" | "livekit"
	AgentID           string
	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string
	LiveKitURL        string
	LiveKitAPIKey     string
	LiveKitAPISecret  string
}

// InterviewConfig, mülakat giriş politikası.
type InterviewConfig struct {
	// AllowedStatuses, /interview sayfasına girişe izin veren meet status'ları.
	AllowedStatuses []string
}

// EmailConfig, Resend email ayarları. Hepsi boşsa bildirim kapalıdır.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	NotifyEmail  string // Mülakat bitince bildirim alacak adres (recruiter)
}

// RateLimitConfig, credential login brute-force koruması.
type RateLimitConfig struct {
	LoginAttempts int // 0 = kapalı
	LoginWindow   time.Duration
}

// CORSConfig, izin verilen origin listesi.
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig, log seviyesi ("debug" | "info" | "warn" | "error").
type LogConfig struct {
	Level string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler.
//
// Eksik feature değerleri (JWT_SECRET, API_URL, AGENT_ID, ...) Load'u
// başarısız yapmaz; ilgili endpoint 500 configuration error döner.
// Sadece parse edilemeyen sayısal değerler hata üretir.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", getEnv("SERVER_PORT", "3000")))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	loginAttempts, err := strconv.Atoi(getEnv("LOGIN_RATE_LIMIT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
	}

	loginWindow, err := time.ParseDuration(getEnv("LOGIN_RATE_WINDOW", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_WINDOW: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		App: AppConfig{
			Env:               getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
			EntryPath:         getEnv("ENTRY_PATH", "/"),
			ProtectedPrefixes: splitList(getEnv("PROTECTED_PREFIXES", "/meet,/interview")),
			PublicURL:         strings.TrimRight(getEnv("APP_URL", ""), "/"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			SessionTTL: 24 * time.Hour,
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(getEnv("API_URL", getEnv("NEXT_PUBLIC_API_URL", "")), "/"),
			Timeout: apiTimeout,
		},
		Voice: VoiceConfig{
			Provider:          strings.ToLower(getEnv("VOICE_PROVIDER", "elevenlabs")),
			AgentID:           getEnv("AGENT_ID", ""),
			ElevenLabsAPIKey:  getEnv("ELEVENLABS_API_KEY", ""),
			ElevenLabsBaseURL: strings.TrimRight(getEnv("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io"), "/"),
			LiveKitURL:        getEnv("LIVEKIT_URL", ""),
			LiveKitAPIKey:     getEnv("LIVEKIT_API_KEY", ""),
			LiveKitAPISecret:  getEnv("LIVEKIT_API_SECRET", ""),
		},
		Interview: InterviewConfig{
			AllowedStatuses: splitList(getEnv("ALLOWED_MEET_STATUSES", "pending,active")),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
			NotifyEmail:  getEnv("NOTIFY_EMAIL", ""),
		},
		RateLimit: RateLimitConfig{
			LoginAttempts: loginAttempts,
			LoginWindow:   loginWindow,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:3000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction, cookie Secure flag'i için kullanılır.
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// EmailEnabled, Resend bildiriminin açık olup olmadığını döner.
func (c *EmailConfig) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.FromEmail != "" && c.NotifyEmail != ""
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi parse eder; boş elemanları atar.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// AppBaseURL is the public URL of this API, used in email action links.
	AppBaseURL string
	// Token verification. HS256 tokens use JWTSecret, RS256 tokens are
	// checked against JWKSURL when set.
	JWTSecret string
	JWKSURL   string
	// Email approve/reject links are signed with ActionTokenSecret, which
	// defaults to JWTSecret. Links expire after ActionTokenTTL.
	ActionTokenSecret string
	ActionTokenTTL    time.Duration
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitWriteThreshold  int
	// Scheduling
	MeetingLinkPool          []string
	MeetingBaseURL           string
	SchedulingConflictPolicy string
	Timezone                 string
	LockTTL                  time.Duration
	// Notifications
	NotifyMaxAttempts int
	NotifyRetryBase   time.Duration
	AllowedWSOrigins  []string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development only)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AppBaseURL:  strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		// Email action links
		ActionTokenTTL: time.Duration(getEnvInt("ACTION_TOKEN_TTL_HOURS", 72)) * time.Hour,
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM_EMAIL", ""),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitWriteThreshold:  getEnvInt("RATE_LIMIT_WRITE_THRESHOLD", 30),
		// Scheduling
		MeetingLinkPool:          getEnvList("MEETING_LINK_POOL"),
		MeetingBaseURL:           strings.TrimRight(getEnv("MEETING_BASE_URL", "https://meet.example.com"), "/"),
		SchedulingConflictPolicy: strings.ToLower(getEnv("SCHEDULING_CONFLICT_POLICY", "allow")),
		Timezone:                 getEnv("APP_TIMEZONE", "UTC"),
		LockTTL:                  time.Duration(getEnvInt("LOCK_TTL_SECONDS", 10)) * time.Second,
		// Notifications
		NotifyMaxAttempts: getEnvInt("NOTIFY_MAX_ATTEMPTS", 3),
		NotifyRetryBase:   time.Duration(getEnvInt("NOTIFY_RETRY_BASE_MS", 200)) * time.Millisecond,
		AllowedWSOrigins:  getEnvList("WS_ALLOWED_ORIGINS"),
	}

	cfg.ActionTokenSecret = getEnv("ACTION_TOKEN_SECRET", "")
	if cfg.ActionTokenSecret == "" {
		cfg.ActionTokenSecret = cfg.JWTSecret
	}
	if cfg.ActionTokenSecret == "" {
		log.Println("WARNING: ACTION_TOKEN_SECRET not set. Reschedule emails will not carry approve/reject links.")
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" && cfg.JWKSURL == "" {
		log.Println("WARNING: neither JWT_SECRET nor JWKS_URL is set. Protected routes will reject every request.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting falls back to memory and interview locks are disabled.")
	}
	if cfg.SchedulingConflictPolicy != "allow" && cfg.SchedulingConflictPolicy != "reject" {
		log.Printf("WARNING: unknown SCHEDULING_CONFLICT_POLICY %q, using allow", cfg.SchedulingConflictPolicy)
		cfg.SchedulingConflictPolicy = "allow"
	}

	return cfg, nil
}

// Location resolves Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("WARNING: invalid APP_TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty items.
func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

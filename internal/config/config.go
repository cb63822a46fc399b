package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	BotToken  string
	OwnerID   int64
	PlanLabel string

	PlatformBaseURL string
	LocaleID        string // platform language code; "843" is English
	FetchTimeout    time.Duration

	HTTPAddr    string
	CORSOrigins []string

	DBDriver string
	DBDSN    string

	AdminUser     string
	AdminPassHash string // bcrypt
	JWTSecret     string

	ArtifactDir string
	Theme       string

	LogLevel string
}

func FromEnv() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using process environment")
	}
	return Config{
		BotToken:  os.Getenv("BOT_TOKEN"),
		OwnerID:   envInt64("OWNER_ID", 0),
		PlanLabel: envOr("PLAN_LABEL", "PRO PLAN"),

		PlatformBaseURL: envOr("PLATFORM_BASE_URL", "https://learn.aakashitutor.com"),
		LocaleID:        envOr("PLATFORM_LOCALE_ID", "843"),
		FetchTimeout:    time.Duration(envInt("FETCH_TIMEOUT_SEC", 10)) * time.Second,

		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),

		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),

		AdminUser:     envOr("ADMIN_USER", "admin"),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),
		JWTSecret:     envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),

		ArtifactDir: envOr("ARTIFACT_DIR", "./data"),
		Theme:       envOr("THEME", "modern"),

		LogLevel: envOr("LOG_LEVEL", "info"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("config: %s=%q is not an integer, using %d", k, v, def)
		return def
	}
	return n
}

func envInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		logrus.Warnf("config: %s=%q is not an integer, using %d", k, v, def)
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

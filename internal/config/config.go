package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL — публичный бэкенд блога.
const DefaultAPIBaseURL = "https://blog-app-backend-nnuo.onrender.com"

type Config struct {
	Port string

	APIBaseURL string
	APITimeout string

	SessionSecret string
	SessionMaxAge string
	CookieSecure  bool

	CORSOrigins []string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		APIBaseURL: strings.TrimRight(def(os.Getenv("API_BASE_URL"), DefaultAPIBaseURL), "/"),
		APITimeout: def(os.Getenv("API_TIMEOUT"), "15s"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionMaxAge: def(os.Getenv("SESSION_MAX_AGE"), "168h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	if v := strings.TrimSpace(os.Getenv("COOKIE_SECURE")); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}

	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q", c.APIBaseURL)
	}

	if _, err := c.Timeout(); err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}
	if _, err := c.SessionTTL(); err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}

	// Без секрета куки подписываются dev-ключом — для прода это дыра
	if strings.TrimSpace(c.SessionSecret) == "" {
		warnings = append(warnings, "SESSION_SECRET is empty, using insecure dev secret")
	}
	if c.Env == "prod" && !c.CookieSecure {
		warnings = append(warnings, "COOKIE_SECURE is off in prod")
	}
	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// Timeout — таймаут одного запроса к API блога.
func (c *Config) Timeout() (time.Duration, error) {
	return time.ParseDuration(c.APITimeout)
}

// SessionTTL — время жизни cookie с токеном.
func (c *Config) SessionTTL() (time.Duration, error) {
	return time.ParseDuration(c.SessionMaxAge)
}

// Secret возвращает ключ подписи cookie, подставляя dev-ключ при пустом SESSION_SECRET.
func (c *Config) Secret() []byte {
	if s := strings.TrimSpace(c.SessionSecret); s != "" {
		return []byte(s)
	}
	return []byte("blogfront-dev-secret-change-me")
}

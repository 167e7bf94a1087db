package runtimeconfig

import (
	"errors"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
)

var ErrServerAddrRequired = errors.New("site config: server listen address is required")
var ErrStorageDriverUnknown = errors.New("site config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("site config: storage dsn is required")
var ErrAdminPasswordRequired = errors.New("site config: admin password is required")
var ErrJWTSecretRequired = errors.New("site config: jwt secret is required")
var ErrTokenTTLInvalid = errors.New("site config: token ttl must be positive")
var ErrUploadsDirRequired = errors.New("site config: uploads directory is required")
var ErrUploadMaxBytesInvalid = errors.New("site config: upload max bytes must be positive")
var ErrLimitInvalid = errors.New("site config: capacity limits must be positive")
var ErrDefaultLanguageInvalid = errors.New("site config: default language must be en or ru")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// Config aggregates runtime settings for the site backend. Fields use simple
// types so the host process can override them before wiring services.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Uploads  UploadsConfig
	Auth     AuthConfig
	I18N     I18NConfig
	Limits   LimitsConfig
	Logging  LoggingConfig
}

// ServerConfig captures HTTP listener options.
type ServerConfig struct {
	Addr         string   `env:"SITE_ADDR"`
	BasePath     string   `env:"SITE_BASE_PATH"`
	CORSOrigins  []string `env:"SITE_CORS_ORIGINS" envSeparator:","`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `env:"SITE_DB_DRIVER"`
	DSN    string `env:"SITE_DB_DSN"`
}

// UploadsConfig controls the image upload store.
type UploadsConfig struct {
	Dir      string `env:"SITE_UPLOADS_DIR"`
	BaseURL  string `env:"SITE_UPLOADS_BASE_URL"`
	MaxBytes int64  `env:"SITE_UPLOADS_MAX_BYTES"`
}

// AuthConfig holds the admin console credentials.
type AuthConfig struct {
	AdminPassword string        `env:"SITE_ADMIN_PASSWORD"`
	JWTSecret     string        `env:"SITE_JWT_SECRET"`
	TokenTTL      time.Duration `env:"SITE_TOKEN_TTL"`
}

// I18NConfig wires bilingual content resolution.
type I18NConfig struct {
	DefaultLanguage string `env:"SITE_DEFAULT_LANGUAGE"`
}

// LimitsConfig exposes presentation capacity rules as configuration so they
// are not baked into validation code.
type LimitsConfig struct {
	MaxDisplayedSocials  int `env:"SITE_MAX_DISPLAYED_SOCIALS"`
	MaxActiveHeroButtons int `env:"SITE_MAX_ACTIVE_HERO_BUTTONS"`
	PartnersPageSize     int `env:"SITE_PARTNERS_PAGE_SIZE"`
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Level     string `env:"SITE_LOG_LEVEL"`
	Format    string `env:"SITE_LOG_FORMAT"`
	AddSource bool   `env:"SITE_LOG_SOURCE"`
}

// DefaultConfig returns the baseline configuration used by the served site.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8000",
			BasePath:     "/api",
			CORSOrigins:  []string{"*"},
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file:fomo-site.db?_fk=1",
		},
		Uploads: UploadsConfig{
			Dir:      "./uploads",
			BaseURL:  "/uploads",
			MaxBytes: 5 << 20,
		},
		Auth: AuthConfig{
			TokenTTL: 12 * time.Hour,
		},
		I18N: I18NConfig{
			DefaultLanguage: "en",
		},
		Limits: LimitsConfig{
			MaxDisplayedSocials:  4,
			MaxActiveHeroButtons: 3,
			PartnersPageSize:     8,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load overlays environment variables onto the default configuration.
func Load() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field consistency before services are wired.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return ErrServerAddrRequired
	}
	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "sqlite", "sqlite3":
	default:
		return ErrStorageDriverUnknown
	}
	if strings.TrimSpace(c.Storage.DSN) == "" {
		return ErrStorageDSNRequired
	}
	if strings.TrimSpace(c.Auth.AdminPassword) == "" {
		return ErrAdminPasswordRequired
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return ErrJWTSecretRequired
	}
	if c.Auth.TokenTTL <= 0 {
		return ErrTokenTTLInvalid
	}
	if strings.TrimSpace(c.Uploads.Dir) == "" {
		return ErrUploadsDirRequired
	}
	if c.Uploads.MaxBytes <= 0 {
		return ErrUploadMaxBytesInvalid
	}
	if c.Limits.MaxDisplayedSocials <= 0 || c.Limits.MaxActiveHeroButtons <= 0 || c.Limits.PartnersPageSize <= 0 {
		return ErrLimitInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.I18N.DefaultLanguage)) {
	case "en", "ru":
	default:
		return ErrDefaultLanguageInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}

package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the runtime configuration for the API.
type Config struct {
	Env  string `env:"ENV,default=development"`
	Port string `env:"PORT,default=8080"`

	DBURL string `env:"DB_URL,required"`

	JWTSecret        string `env:"JWT_SECRET,required"`
	AccessTTLSeconds int    `env:"JWT_ACCESS_EXPIRES_SECONDS,default=900"`

	// Refresh-token lifetimes in days. The remember variant applies when the
	// client sends remember=true on login or refresh.
	RefreshTTLDays         int `env:"REFRESH_DAYS,default=7"`
	RefreshRememberTTLDays int `env:"REFRESH_REMEMBER_DAYS,default=60"`

	CookieSecure   bool   `env:"COOKIE_SECURE,default=false"`
	CookieSameSite string `env:"COOKIE_SAMESITE,default=lax"`
	CookieDomain   string `env:"COOKIE_DOMAIN"`
	CookiePath     string `env:"COOKIE_PATH,default=/api/v1/auth"`

	LogLevel string `env:"LOG_LEVEL,default=info"`

	Cloudinary CloudinaryConfig `env:",prefix=CLOUDINARY_"`
}

// CloudinaryConfig carries the credentials used to sign evidence uploads.
type CloudinaryConfig struct {
	CloudName  string `env:"CLOUD_NAME"`
	APIKey     string `env:"API_KEY"`
	APISecret  string `env:"API_SECRET"`
	BaseFolder string `env:"FOLDER,default=entregas"`
}

// Load populates a Config from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTTLSeconds) * time.Second
}

// RefreshTTL returns the refresh-token lifetime for the given remember flag.
func (c *Config) RefreshTTL(remember bool) time.Duration {
	return time.Duration(c.RefreshDays(remember)) * 24 * time.Hour
}

// RefreshDays is re-evaluated on every call: the remember flag supplied on
// each refresh picks the duration of the next token, so a session can toggle
// between the short and extended lifetime turn by turn.
func (c *Config) RefreshDays(remember bool) int {
	if remember {
		return c.RefreshRememberTTLDays
	}
	return c.RefreshTTLDays
}

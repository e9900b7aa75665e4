package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that must differ between environments (secrets)
// - default: values common across environments, or optional integrations left empty
// Optional integrations (DB, Redis, SMTP, SerpAPI) switch off when their key is empty.
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Provider  ProviderConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Data-Source,X-Data-Degraded,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type ProviderConfig struct {
	APIKey         string        `envconfig:"SERPAPI_KEY"`
	BaseURL        string        `envconfig:"SERPAPI_BASE_URL" default:"https://serpapi.com/search"`
	Timeout        time.Duration `envconfig:"SERPAPI_TIMEOUT" default:"20s"`
	UseProvider    bool          `envconfig:"FLIGHTS_USE_PROVIDER" default:"true"`
	SearchCacheTTL time.Duration `envconfig:"SEARCH_CACHE_TTL" default:"10m"`
}

type MailConfig struct {
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     string `envconfig:"SMTP_PORT"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	FromEmail    string `envconfig:"FROM_EMAIL"`
	AdminEmail   string `envconfig:"ADMIN_EMAIL"`
}

type RateLimitConfig struct {
	AuthPerMinute int `envconfig:"AUTH_RATE_PER_MINUTE" default:"10"`
	AuthBurst     int `envconfig:"AUTH_RATE_BURST" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Enabled reports whether a postgres database is configured.
func (c DBConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// ProviderEnabled reports whether live SerpAPI calls should be attempted.
// Validate rejects settings that would leave provider calls unbounded.
func (c ProviderConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("SERPAPI_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

func (c ProviderConfig) ProviderEnabled() bool {
	return c.UseProvider && c.APIKey != ""
}

// SMTPConfigured reports whether every value needed to send mail is present.
func (c MailConfig) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

// Sender falls back to the SMTP account when FROM_EMAIL is not set.
func (c MailConfig) Sender() string {
	if c.FromEmail != "" {
		return c.FromEmail
	}
	return c.SMTPUser
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win over file values.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Provider.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-unit-tests",
			AccessTokenDuration:  "1h",
			RefreshTokenDuration: "24h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Provider: ProviderConfig{
			BaseURL:        "http://127.0.0.1:0/search",
			Timeout:        2 * time.Second,
			UseProvider:    false,
			SearchCacheTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{
			AuthPerMinute: 60,
			AuthBurst:     10,
		},
	}
}

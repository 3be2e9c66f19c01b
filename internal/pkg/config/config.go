package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"study-booking/internal/pkg/password"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Admin    AdminConfig
	Booking  BookingConfig
	Calendar CalendarConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// public base URL used to build participant and consent links
	HostBase string `envconfig:"HOST_BASE" default:"http://localhost:8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/Toronto"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// single admin account; the password is stored as a bcrypt hash (see `hash-password`)
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type BookingConfig struct {
	TimeZone     string `envconfig:"BOOKING_TIMEZONE" default:"America/Toronto"`
	DayStartHour int    `envconfig:"BOOKING_DAY_START_HOUR" default:"9"`
	DayEndHour   int    `envconfig:"BOOKING_DAY_END_HOUR" default:"22"`
	MaxWeeks     int    `envconfig:"BOOKING_MAX_WEEKS" default:"8"`
}

// Provider is one of google, caldav or memory (local dry runs and tests)
type CalendarConfig struct {
	Provider   string        `envconfig:"CALENDAR_PROVIDER" default:"google"`
	ID         string        `envconfig:"CALENDAR_ID" default:"primary"`
	FallbackID string        `envconfig:"CALENDAR_FALLBACK_ID" default:"primary"`
	Timeout    time.Duration `envconfig:"CALENDAR_TIMEOUT" default:"15s"`
	EventTitle string        `envconfig:"CALENDAR_EVENT_TITLE" default:"User Study"`

	GoogleClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
	GoogleTokenFile    string `envconfig:"GOOGLE_TOKEN_FILE" default:"token.json"`

	CalDAVURL      string `envconfig:"CALDAV_URL"`
	CalDAVUsername string `envconfig:"CALDAV_USERNAME"`
	CalDAVPassword string `envconfig:"CALDAV_PASSWORD"`
}

type MailConfig struct {
	From    string        `envconfig:"MAIL_FROM" default:"User Study <no-reply@example.com>"`
	Timeout time.Duration `envconfig:"MAIL_TIMEOUT" default:"15s"`

	ResendAPIKey string `envconfig:"RESEND_API_KEY"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASS"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

var calendarProviders = []string{"google", "caldav", "memory"}

// Validate checks what envconfig cannot express. All problems are reported at once.
func (c Config) Validate() error {
	var problems []error

	if u, err := url.Parse(c.Server.HostBase); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Errorf("HOST_BASE must be an absolute URL, got %q", c.Server.HostBase))
	}
	if !password.IsHash(c.Admin.PasswordHash) {
		problems = append(problems, errors.New("ADMIN_PASSWORD_HASH must be a bcrypt hash"))
	}
	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, err)
	}
	b := c.Booking
	if b.DayStartHour < 0 || b.DayEndHour > 24 || b.DayStartHour >= b.DayEndHour {
		problems = append(problems, fmt.Errorf("booking hours must satisfy 0 <= start < end <= 24, got %d-%d", b.DayStartHour, b.DayEndHour))
	}
	if b.MaxWeeks < 1 {
		problems = append(problems, fmt.Errorf("BOOKING_MAX_WEEKS must be positive, got %d", b.MaxWeeks))
	}
	if !slices.Contains(calendarProviders, c.Calendar.Provider) {
		problems = append(problems, fmt.Errorf("CALENDAR_PROVIDER must be one of %s, got %q", strings.Join(calendarProviders, ", "), c.Calendar.Provider))
	}
	if c.JWT.Duration <= 0 {
		problems = append(problems, errors.New("JWT_DURATION must be positive"))
	}
	if c.Calendar.Timeout <= 0 {
		problems = append(problems, errors.New("CALENDAR_TIMEOUT must be positive"))
	}

	return errors.Join(problems...)
}

// LoadDBConfig reads only the DB group, for commands that never start the server.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process DB env config: %w", err)
	}
	return cfg, nil
}

func LoadCalendarConfig() (CalendarConfig, error) {
	var cfg CalendarConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return CalendarConfig{}, fmt.Errorf("failed to process calendar env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889", // Test port
			HostBase: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Booking: BookingConfig{
			TimeZone:     "America/Toronto",
			DayStartHour: 9,
			DayEndHour:   22,
			MaxWeeks:     8,
		},
		Calendar: CalendarConfig{
			Provider:   "memory",
			ID:         "study",
			FallbackID: "primary",
			Timeout:    2 * time.Second,
			EventTitle: "User Study",
		},
		Mail: MailConfig{
			From:    "User Study <no-reply@example.com>",
			Timeout: 2 * time.Second,
		},
	}
}

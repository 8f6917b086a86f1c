package config

import (
	"fmt"
	"time"

	"lab-reservation/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// DB credentials are only required when STORE_DRIVER=postgres, see Validate.
// -----------------------------------------------------------------------------

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	DeviceArbitrationRolePriority = "role_priority"
	DeviceArbitrationStrict       = "strict"
)

var (
	ErrUnknownStoreDriver       = errs.New("unknown store driver")
	ErrUnknownDeviceArbitration = errs.New("unknown device arbitration mode")
	ErrMissingDBCredentials     = errs.New("postgres store requires DB_USER and DB_NAME")
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	Admission AdmissionConfig
	Metrics   MetricsConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port           string `envconfig:"PORT" required:"true"`
	Env            string `envconfig:"ENV" default:"development"`
	SwaggerEnabled bool   `envconfig:"SWAGGER_ENABLED" default:"true"`
}

type StoreConfig struct {
	Driver   string `envconfig:"STORE_DRIVER" default:"postgres"`
	SeedPath string `envconfig:"MEMORY_SEED_PATH"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER"`
	Password    string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type AdmissionConfig struct {
	DeviceArbitration string `envconfig:"ADMISSION_DEVICE_ARBITRATION" default:"role_priority"`
	MaxTxRetries      int    `envconfig:"ADMISSION_MAX_TX_RETRIES" default:"3"`
	// TimeZone decides which calendar day counts as "today" for past-date checks.
	TimeZone string `envconfig:"ADMISSION_TIMEZONE" default:"Asia/Tokyo"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return ErrMissingDBCredentials
		}
	default:
		return errs.Wrapf(ErrUnknownStoreDriver, "driver %q", c.Store.Driver)
	}

	switch c.Admission.DeviceArbitration {
	case DeviceArbitrationRolePriority, DeviceArbitrationStrict:
	default:
		return errs.Wrapf(ErrUnknownDeviceArbitration, "mode %q", c.Admission.DeviceArbitration)
	}
	return nil
}

// Location resolves the admission time zone, falling back to UTC.
func (c AdmissionConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
			Env:  "test",
		},
		Store: StoreConfig{
			Driver: StoreDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Admission: AdmissionConfig{
			DeviceArbitration: DeviceArbitrationRolePriority,
			MaxTxRetries:      3,
			TimeZone:          "UTC",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeZone:   "Asia/Tokyo",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}

package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DefaultSQLitePath is the database file used when nothing else is configured
const DefaultSQLitePath = "./receipts.db"

// Config represents database configuration
type Config struct {
	Driver          string        `mapstructure:"db_driver"`
	Path            string        `mapstructure:"db_path"` // sqlite only
	Host            string        `mapstructure:"db_host"`
	Port            int           `mapstructure:"db_port"`
	Username        string        `mapstructure:"db_username"`
	Password        string        `mapstructure:"db_password"`
	Database        string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"db_ssl_mode"`
	MaxOpenConns    int           `mapstructure:"db_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"db_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"db_conn_max_idle_time"`
	QueryTimeout    time.Duration `mapstructure:"db_query_timeout"`
	BusyTimeout     time.Duration `mapstructure:"db_busy_timeout"` // sqlite only
	LogLevel        string        `mapstructure:"db_log_level"`
	RetryAttempts   int           `mapstructure:"db_retry_attempts"`
	RetryDelay      time.Duration `mapstructure:"db_retry_delay"`
	MonitorInterval time.Duration `mapstructure:"db_monitor_interval"`
}

// DefaultConfig returns a Config with default values.
// The default is the embedded sqlite file; server drivers take credentials from the environment.
func DefaultConfig() *Config {
	return &Config{
		Driver:          configEnvOrDefault("RA_DB_DRIVER", DriverSQLite),
		Path:            configEnvOrDefault("RA_DB_PATH", DefaultSQLitePath),
		Host:            configEnv("RA_DB_HOST"),
		Port:            configEnvAsInt("RA_DB_PORT", 0),
		Username:        configEnv("RA_DB_USERNAME"),
		Password:        configEnv("RA_DB_PASSWORD"),
		Database:        configEnv("RA_DB_NAME"),
		SSLMode:         configEnvOrDefault("RA_DB_SSL_MODE", "disable"),
		MaxOpenConns:    configEnvAsInt("RA_DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    configEnvAsInt("RA_DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: time.Duration(configEnvAsInt("RA_DB_CONN_MAX_LIFETIME_MINUTES", 30)) * time.Minute,
		ConnMaxIdleTime: time.Duration(configEnvAsInt("RA_DB_CONN_MAX_IDLE_TIME_MINUTES", 15)) * time.Minute,
		QueryTimeout:    time.Duration(configEnvAsInt("RA_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		BusyTimeout:     time.Duration(configEnvAsInt("RA_DB_BUSY_TIMEOUT_MS", 5000)) * time.Millisecond,
		LogLevel:        configEnvOrDefault("RA_LOGGER_LEVEL", "info"),
		RetryAttempts:   configEnvAsInt("RA_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      time.Duration(configEnvAsInt("RA_DB_RETRY_DELAY_SECONDS", 1)) * time.Second,
		MonitorInterval: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	case DriverPostgres, DriverMySQL:
		if err := c.validateServer(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func (c *Config) validateServer() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	if c.Driver == DriverPostgres {
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	}
	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
		)
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			c.Username, c.Password, c.Host, c.Port, c.Database,
		)
	default:
		sep := "?"
		if strings.Contains(c.Path, "?") {
			sep = "&"
		}
		return fmt.Sprintf("%s%s_busy_timeout=%d&_foreign_keys=on", c.Path, sep, c.BusyTimeout.Milliseconds())
	}
}

// IsSQLite reports whether the embedded driver is configured
func (c *Config) IsSQLite() bool {
	return c.Driver == DriverSQLite
}

// Target describes the database for logs without exposing credentials
func (c *Config) Target() string {
	if c.IsSQLite() {
		return c.Path
	}
	return fmt.Sprintf("%s:%d/%s", c.Host, c.Port, c.Database)
}

// WithPath returns a copy of the config pointing at another sqlite file
func (c *Config) WithPath(path string) *Config {
	newConfig := *c
	newConfig.Path = path
	return &newConfig
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// ParsePort converts a port string to an int, returning 0 when it is not a valid port
func ParsePort(port string) int {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}

// configEnv gets a value from environment variables with no default
func configEnv(key string) string {
	return os.Getenv(key)
}

// configEnvOrDefault gets a value from environment variables with a default value
func configEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// configEnvAsInt gets an integer value from environment variables with a default
func configEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

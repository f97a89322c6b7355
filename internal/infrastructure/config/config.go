package config

import (
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Storage     StorageConfig  `mapstructure:"storage"`
	Cache       CacheConfig    `mapstructure:"cache"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	MaxUploadSize     int64         `mapstructure:"maxUploadSize"`     // bytes
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	BusyTimeout     time.Duration `mapstructure:"busyTimeout"`     // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// StorageConfig selects and configures the receipt image store
type StorageConfig struct {
	Type          string   `mapstructure:"type"` // local or s3
	LocalDir      string   `mapstructure:"localDir"`
	PublicBaseURL string   `mapstructure:"publicBaseURL"`
	S3            S3Config `mapstructure:"s3"`
}

// S3Config contains the bucket settings for the s3 storage type
type S3Config struct {
	Bucket       string `mapstructure:"bucket"`
	Region       string `mapstructure:"region"`
	Prefix       string `mapstructure:"prefix"`
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"accessKey"`
	SecretKey    string `mapstructure:"secretKey"`
	UsePathStyle bool   `mapstructure:"usePathStyle"`
}

// CacheConfig contains the redis settings for the receipt list cache
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"` // seconds
	Prefix   string        `mapstructure:"prefix"`
}

// Validate ensures all required configuration values are present
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if c.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if c.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if c.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	switch strings.ToLower(c.Database.Driver) {
	case "sqlite":
		if c.Database.Path == "" {
			missing = append(missing, "database.path")
		}
	case "postgres", "mysql":
		if c.Database.Host == "" {
			missing = append(missing, "database.host (or RA_DB_HOST environment variable)")
		}
		if c.Database.Port == "" {
			missing = append(missing, "database.port (or RA_DB_PORT environment variable)")
		}
		if c.Database.Username == "" {
			missing = append(missing, "database.username (or RA_DB_USERNAME environment variable)")
		}
		if c.Database.Database == "" {
			missing = append(missing, "database.database (or RA_DB_NAME environment variable)")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be one of: sqlite, postgres, or mysql", c.Database.Driver)
	}
	if c.Database.QueryTimeout == 0 {
		missing = append(missing, "database.queryTimeout")
	}

	switch c.Storage.Type {
	case "local":
		if c.Storage.LocalDir == "" {
			missing = append(missing, "storage.localDir")
		}
	case "s3":
		if c.Storage.S3.Bucket == "" {
			missing = append(missing, "storage.s3.bucket (or RA_S3_BUCKET environment variable)")
		}
		if c.Storage.S3.Region == "" {
			missing = append(missing, "storage.s3.region (or RA_S3_REGION environment variable)")
		}
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		missing = append(missing, "cache.addr (or RA_REDIS_ADDR environment variable)")
	}

	if c.Environment == "" {
		missing = append(missing, "environment")
	} else if c.Environment != Development && c.Environment != Production && c.Environment != Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}

// Warnings lists settings that are legal but questionable for production
func (c *Config) Warnings() []string {
	if c.Environment != Production {
		return nil
	}

	var warnings []string
	if c.Database.Driver == "postgres" {
		mode := strings.ToLower(c.Database.SSLMode)
		if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
	}
	if c.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if c.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	if c.Storage.Type == "local" && strings.HasPrefix(c.Storage.PublicBaseURL, "http://localhost") {
		warnings = append(warnings, "storage.publicBaseURL still points at localhost")
	}
	return warnings
}

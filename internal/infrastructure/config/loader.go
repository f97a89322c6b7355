package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable the service reads
const EnvPrefix = "RA"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables onto config keys.
// They win over both the YAML file and the defaults.
var envOverrides = []struct {
	env string
	key string
}{
	{"RA_SERVER_HOST", "server.host"},
	{"RA_SERVER_PORT", "server.port"},
	{"RA_DB_DRIVER", "database.driver"},
	{"RA_DB_PATH", "database.path"},
	{"RA_DB_HOST", "database.host"},
	{"RA_DB_PORT", "database.port"},
	{"RA_DB_USERNAME", "database.username"},
	{"RA_DB_PASSWORD", "database.password"},
	{"RA_DB_NAME", "database.database"},
	{"RA_DB_SSL_MODE", "database.sslMode"},
	{"RA_LOGGER_LEVEL", "logger.level"},
	{"RA_STORAGE_TYPE", "storage.type"},
	{"RA_STORAGE_LOCAL_DIR", "storage.localDir"},
	{"RA_STORAGE_PUBLIC_BASE_URL", "storage.publicBaseURL"},
	{"RA_S3_BUCKET", "storage.s3.bucket"},
	{"RA_S3_REGION", "storage.s3.region"},
	{"RA_S3_PREFIX", "storage.s3.prefix"},
	{"RA_S3_ENDPOINT", "storage.s3.endpoint"},
	{"RA_S3_ACCESS_KEY", "storage.s3.accessKey"},
	{"RA_S3_SECRET_KEY", "storage.s3.secretKey"},
	{"RA_REDIS_ADDR", "cache.addr"},
	{"RA_REDIS_PASSWORD", "cache.password"},
}

// numeric overrides are only applied when they parse
var envIntOverrides = []struct {
	env string
	key string
}{
	{"RA_DB_MAX_OPEN_CONNS", "database.maxOpenConns"},
	{"RA_DB_MAX_IDLE_CONNS", "database.maxIdleConns"},
	{"RA_DB_QUERY_TIMEOUT_SECONDS", "database.queryTimeout"},
	{"RA_DB_BUSY_TIMEOUT_MS", "database.busyTimeout"},
	{"RA_DB_RETRY_ATTEMPTS", "database.retryAttempts"},
	{"RA_REDIS_DB", "cache.db"},
	{"RA_CACHE_TTL_SECONDS", "cache.ttl"},
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads configs/<env>.yaml from the first matching path and applies defaults and overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s.yaml found, using defaults\n", env)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.maxUploadSize", 10<<20)
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./receipts.db")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 10)    // seconds
	v.SetDefault("database.busyTimeout", 5000)   // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.localDir", "uploads")
	v.SetDefault("storage.publicBaseURL", "http://localhost:8000")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", 60) // seconds
	v.SetDefault("cache.prefix", "receipt-analyzer")
}

// getEnvironment determines the environment to use based on RA_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("RA_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for _, o := range envOverrides {
		if value := os.Getenv(o.env); value != "" {
			v.Set(o.key, value)
		}
	}
	for _, o := range envIntOverrides {
		if value, ok := getEnvInt(o.env); ok {
			v.Set(o.key, value)
		}
	}
	if enabled := os.Getenv("RA_CACHE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("cache.enabled", b)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.BusyTimeout = config.Database.BusyTimeout * time.Millisecond
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second

	config.Cache.TTL = config.Cache.TTL * time.Second
}

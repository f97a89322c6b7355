package database

import (
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/config"
)

// FromAppConfig builds the database Config from the loaded application config.
// Values the file leaves empty fall back to DefaultConfig.
func FromAppConfig(cfg *config.Config) *Config {
	dbCfg := DefaultConfig()
	src := cfg.Database

	if src.Driver != "" {
		dbCfg.Driver = src.Driver
	}
	if src.Path != "" {
		dbCfg.Path = src.Path
	}
	if src.Host != "" {
		dbCfg.Host = src.Host
	}
	if port := ParsePort(src.Port); port != 0 {
		dbCfg.Port = port
	}
	if src.Username != "" {
		dbCfg.Username = src.Username
	}
	if src.Password != "" {
		dbCfg.Password = src.Password
	}
	if src.Database != "" {
		dbCfg.Database = src.Database
	}
	if src.SSLMode != "" {
		dbCfg.SSLMode = src.SSLMode
	}
	if src.MaxOpenConns > 0 {
		dbCfg.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbCfg.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbCfg.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbCfg.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbCfg.QueryTimeout = src.QueryTimeout
	}
	if src.BusyTimeout > 0 {
		dbCfg.BusyTimeout = src.BusyTimeout
	}
	if src.RetryAttempts > 0 {
		dbCfg.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbCfg.RetryDelay = src.RetryDelay
	}
	if cfg.Logger.Level != "" {
		dbCfg.LogLevel = cfg.Logger.Level
	}

	return dbCfg
}

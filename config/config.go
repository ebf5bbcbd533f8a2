package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperledger-labs/firefly-explorer/cache"
)

type Config struct {
	LogConfig     LogConfig     `json:"log_config"`
	APIConfig     APIConfig     `json:"api_config"`
	ServerConfig  ServerConfig  `json:"server_config"`
	CacheConfig   CacheConfig   `json:"cache_config"`
	MetricsConfig MetricsConfig `json:"metrics_config"`
}

type APIConfig struct {
	// Endpoint is the base URL of the FireFly core REST API, e.g. http://localhost:5000.
	Endpoint string `json:"endpoint"`
	// RequestTimeoutInSec bounds every outbound API request.
	RequestTimeoutInSec int64 `json:"request_timeout_in_sec"`
	// DefaultNamespace is the namespace selected when a request does not name one.
	DefaultNamespace string `json:"default_namespace"`
}

func (cfg *APIConfig) Validate() {
	if cfg.Endpoint == "" {
		panic("api endpoint should not be empty")
	}
	if cfg.DefaultNamespace == "" {
		panic("default namespace should not be empty")
	}
	if cfg.RequestTimeoutInSec < 0 {
		panic("request timeout should not be negative")
	}
}

type ServerConfig struct {
	BindAddress string `json:"bind_address"`
	Port        int    `json:"port"`
	// DashboardMessageLimit caps the recent-message list on the dashboard.
	DashboardMessageLimit int64 `json:"dashboard_message_limit"`
	// DashboardTxWindowInHours is the created>= window for the dashboard transaction list.
	DashboardTxWindowInHours int64 `json:"dashboard_tx_window_in_hours"`
}

func (cfg *ServerConfig) Validate() {
	if cfg.Port < 0 || cfg.Port > 65535 {
		panic(fmt.Sprintf("invalid server port %d", cfg.Port))
	}
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
}

type CacheConfig struct {
	CacheSize uint64 `json:"cache_size"`
}

func (c *CacheConfig) GetCacheSize() uint64 {
	if c.CacheSize != 0 {
		return c.CacheSize
	}
	return cache.DefaultCacheSize
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

func (cfg *LogConfig) Validate() {
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_off_log_files should be larger than 0 if use file logger")
		}
	}
}

func (c *Config) Validate() {
	c.LogConfig.Validate()
	c.APIConfig.Validate()
	c.ServerConfig.Validate()
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}
	config.Validate()
	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	var config Config
	if err := json.Unmarshal(bz, &config); err != nil {
		panic(err)
	}
	config.Validate()
	return &config
}

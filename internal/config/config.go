// Package config loads runtime settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"gopkg.in/yaml.v2"
)

// DatabaseConfig holds postgres connection settings
type DatabaseConfig struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	Name          string `yaml:"name"`
	UseConnString bool   `yaml:"use_connection_str"`
	ConnString    string `yaml:"connection_str"`
}

// StorageConfig selects the file store backend for uploaded company logos
type StorageConfig struct {
	Type      string `yaml:"type"` // local, gcs, s3
	BasePath  string `yaml:"base_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// Config contains every runtime setting of the API server
type Config struct {
	Port          int      `yaml:"port"`
	LogLevel      string   `yaml:"log_level"`
	SecretKey     string   `yaml:"secret_key"`
	AllowOrigins  []string `yaml:"allow_origins"`
	RateLimit     uint     `yaml:"rate_limit"`
	RedisURL      string   `yaml:"redis_url"`
	AdminUsername string   `yaml:"admin_username"`
	AdminPassword string   `yaml:"admin_password"`

	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
}

// Load reads CONFIG_PATH (if set) then lets environment variables override it.
// It fails when a required setting is still missing afterwards.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      8080,
		LogLevel:  "info",
		RateLimit: 5,
		Storage:   StorageConfig{Type: "local", BasePath: "photos"},
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)

	var missing []string
	if cfg.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.SecretKey, "SECRET_KEY")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.AdminUsername, "ADMIN_USERNAME")
	setString(&cfg.AdminPassword, "ADMIN_PASSWORD")

	if v := os.Getenv("ALLOW_ORIGIN"); v != "" {
		cfg.AllowOrigins = strings.Split(v, ",")
	}

	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"); v != "" {
		// Invalid or non-positive values keep the current limit
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit = uint(n)
		}
	}

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USERNAME")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_DATABASE")
	setString(&cfg.Database.ConnString, "DB_CONNECTION_STR")
	if v := os.Getenv("USE_CONNECTION_STR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Database.UseConnString = b
		}
	}

	setString(&cfg.Storage.Type, "STORAGE_TYPE")
	setString(&cfg.Storage.BasePath, "STORAGE_BASE_PATH")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setString(&cfg.Storage.Region, "STORAGE_REGION")
	setString(&cfg.Storage.Endpoint, "STORAGE_ENDPOINT")
	setString(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setString(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

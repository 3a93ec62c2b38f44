package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Schema          string
	AutoMigrate     bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

// AdminConfig controls list pagination of the admin API.
type AdminConfig struct {
	ListPerPage    int
	ListMaxShowAll int
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	ExportPrefix    string
	URLExpiry       time.Duration
}

// Enabled reports whether object storage has been configured.
func (m MinIOConfig) Enabled() bool {
	return m.Endpoint != "" && m.AccessKeyID != "" && m.SecretAccessKey != ""
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "app"),
			Password:        getEnvOrDefault("DB_PASSWORD", "app"),
			DBName:          getEnvOrDefault("DB_NAME", "movies_database"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			Schema:          getEnvOrDefault("DB_SCHEMA", "content"),
			AutoMigrate:     getBoolOrDefault("DB_AUTO_MIGRATE", true),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		Admin: AdminConfig{
			ListPerPage:    getIntOrDefault("ADMIN_LIST_PER_PAGE", 100),
			ListMaxShowAll: getIntOrDefault("ADMIN_LIST_MAX_SHOW_ALL", 200),
		},
		MinIO: MinIOConfig{
			Endpoint:        os.Getenv("MINIO_ENDPOINT"),
			AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("MINIO_SECRET_ACCESS_KEY"),
			BucketName:      getEnvOrDefault("MINIO_BUCKET", "movie-admin"),
			Region:          getEnvOrDefault("MINIO_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("MINIO_USE_SSL", false),
			ExportPrefix:    getEnvOrDefault("MINIO_EXPORT_PREFIX", "exports"),
			URLExpiry:       getDurationOrDefault("MINIO_URL_EXPIRY", time.Hour),
		},
	}
}

// DSN returns PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.Admin.ListPerPage < 1 {
		return fmt.Errorf("ADMIN_LIST_PER_PAGE must be positive, got %d", c.Admin.ListPerPage)
	}
	if c.Admin.ListMaxShowAll < c.Admin.ListPerPage {
		return fmt.Errorf("ADMIN_LIST_MAX_SHOW_ALL (%d) must not be lower than ADMIN_LIST_PER_PAGE (%d)",
			c.Admin.ListMaxShowAll, c.Admin.ListPerPage)
	}
	if c.MinIO.Endpoint != "" && !c.MinIO.Enabled() {
		return fmt.Errorf("MINIO_ACCESS_KEY_ID and MINIO_SECRET_ACCESS_KEY are required when MINIO_ENDPOINT is set")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

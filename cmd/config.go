package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SslMode  string
}

// DSN renders the libpq key/value connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SslMode)
}

type Config struct {
	HTTPPort string
	LogMode  string

	Domain   DBConfig
	Identity DBConfig

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret       string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// CompensationSchedule is a cron expression with seconds. Empty disables
	// the compensation job.
	CompensationSchedule string

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads the configuration through getenv, applying defaults to
// optional settings.
func LoadConfig(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort: get("HTTP_PORT", "8080"),
		LogMode:  get("LOG_MODE", "dev"),
		Domain: DBConfig{
			Host:     get("DB_HOST", "localhost"),
			Port:     get("DB_PORT", "5432"),
			User:     getenv("DB_USER"),
			Password: getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME"),
			SslMode:  get("DB_SSLMODE", "disable"),
		},
		Identity: DBConfig{
			Host:     get("IDENTITY_DB_HOST", "localhost"),
			Port:     get("IDENTITY_DB_PORT", "5432"),
			User:     getenv("IDENTITY_DB_USER"),
			Password: getenv("IDENTITY_DB_PASSWORD"),
			Name:     getenv("IDENTITY_DB_NAME"),
			SslMode:  get("IDENTITY_DB_SSLMODE", "disable"),
		},
		RedisAddr:            get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        getenv("REDIS_PASSWORD"),
		JWTSecret:            getenv("JWT_SECRET"),
		JWTIssuer:            get("JWT_ISSUER", "gamestore"),
		CompensationSchedule: getenv("COMPENSATION_SCHEDULE"),
		AdminName:            get("ADMIN_NAME", "Administrator"),
		AdminEmail:           getenv("ADMIN_EMAIL"),
		AdminPassword:        getenv("ADMIN_PASSWORD"),
	}

	var errList []error
	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		errList = append(errList, fmt.Errorf("REDIS_DB: %w", err))
	}
	if cfg.AccessTokenTTL, err = time.ParseDuration(get("ACCESS_TOKEN_TTL", "15m")); err != nil {
		errList = append(errList, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err))
	}
	if cfg.RefreshTokenTTL, err = time.ParseDuration(get("REFRESH_TOKEN_TTL", "168h")); err != nil {
		errList = append(errList, fmt.Errorf("REFRESH_TOKEN_TTL: %w", err))
	}
	if cfg.Domain.Name == "" {
		errList = append(errList, errors.New("DB_NAME is required"))
	}
	if cfg.Identity.Name == "" {
		errList = append(errList, errors.New("IDENTITY_DB_NAME is required"))
	}
	if cfg.JWTSecret == "" {
		errList = append(errList, errors.New("JWT_SECRET is required"))
	}
	if cfg.AdminEmail != "" && cfg.AdminPassword == "" {
		errList = append(errList, errors.New("ADMIN_PASSWORD is required when ADMIN_EMAIL is set"))
	}

	return cfg, errors.Join(errList...)
}

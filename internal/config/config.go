package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv              string
	AppPort             string
	DbDriver            string
	DbHost              string
	DbPort              string
	DbUser              string
	DbPassword          string
	DbName              string
	DbParams            string
	TrustedProxies      []string
	SessionTTL          time.Duration
	AdminEmails         []string
	StrictSearchFilters bool
	TranslationFolder   string
	MigrationsFolder    string
}

// fileConfig mirrors the optional YAML file. Its values only act as defaults:
// environment variables always win.
type fileConfig struct {
	App struct {
		Env               string `yaml:"env"`
		Port              string `yaml:"port"`
		TranslationFolder string `yaml:"translation_folder"`
	} `yaml:"app"`
	Database struct {
		Driver           string `yaml:"driver"`
		Host             string `yaml:"host"`
		Port             string `yaml:"port"`
		User             string `yaml:"user"`
		Password         string `yaml:"password"`
		Name             string `yaml:"name"`
		Params           string `yaml:"params"`
		MigrationsFolder string `yaml:"migrations_folder"`
	} `yaml:"database"`
	Auth struct {
		SessionTTL  string   `yaml:"session_ttl"`
		AdminEmails []string `yaml:"admin_emails"`
	} `yaml:"auth"`
	Search struct {
		StrictFilters bool `yaml:"strict_filters"`
	} `yaml:"search"`
	TrustedProxies []string `yaml:"trusted_proxies"`
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	file, err := loadFile(getEnv("CONFIG_FILE", "config.yaml"))
	if err != nil {
		zap.L().Warn("ignoring config file", zap.Error(err))
		file = fileConfig{}
	}

	return &Config{
		AppEnv:              getEnv("APP_ENV", or(file.App.Env, "production")),
		AppPort:             getEnv("APP_PORT", or(file.App.Port, "8080")),
		DbDriver:            getEnv("DB_DRIVER", or(file.Database.Driver, "mysql")),
		DbHost:              getEnv("DB_HOST", or(file.Database.Host, "db")),
		DbPort:              getEnv("DB_PORT", or(file.Database.Port, "3306")),
		DbUser:              getEnv("DB_USER", or(file.Database.User, "todo")),
		DbPassword:          getEnv("DB_PASSWORD", or(file.Database.Password, "todo")),
		DbName:              getEnv("DB_NAME", or(file.Database.Name, "todo")),
		DbParams:            getEnv("DB_PARAMS", file.Database.Params),
		TrustedProxies:      parseList(getEnv("TRUSTED_PROXIES", strings.Join(file.TrustedProxies, ","))),
		SessionTTL:          parseDuration(getEnv("SESSION_TTL", or(file.Auth.SessionTTL, "72h")), 72*time.Hour),
		AdminEmails:         parseList(getEnv("ADMIN_EMAILS", strings.Join(file.Auth.AdminEmails, ","))),
		StrictSearchFilters: parseBool(getEnv("STRICT_SEARCH_FILTERS", strconv.FormatBool(file.Search.StrictFilters))),
		TranslationFolder:   getEnv("TRANSLATION_FOLDER", or(file.App.TranslationFolder, "pkg/translator/translation")),
		MigrationsFolder:    getEnv("MIGRATIONS_FOLDER", or(file.Database.MigrationsFolder, "db/migrations")),
	}
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, err
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return fileConfig{}, err
	}
	return file, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		zap.L().Warn("invalid duration, using default", zap.String("value", value), zap.Duration("default", fallback))
		return fallback
	}
	return d
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

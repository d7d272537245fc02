package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	Environment   string
	LogFile       string
	MigrationsDir string
	MetricsAddr   string
	TelegramToken string
	RulesFile     string

	Rules Rules
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   os.Getenv("ENV"),
		LogFile:       os.Getenv("LOG_FILE"),
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		RulesFile:     os.Getenv("CLUB_RULES"),
	}

	// Дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	rules, err := LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	cfg.Rules = rules

	return cfg, nil
}

// IsProduction выбирает JSON-логгер вместо консольного
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

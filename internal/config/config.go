// Package config содержит логику чтения конфигурации сервиса пользователей и заказов.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultKafkaTopic = "users-orders-events"
	defaultLogLevel   = "info"
)

// Config содержит параметры конфигурации сервиса.
type Config struct {
	RunAddress   string   `env:"RUN_ADDRESS"`
	DatabaseURI  string   `env:"DATABASE_URI"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC"`
	LogLevel     string   `env:"LOG_LEVEL"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envKafkaBrokers := cfg.KafkaBrokers
	envKafkaTopic := cfg.KafkaTopic
	envLogLevel := cfg.LogLevel

	var flagBrokers string
	flag.StringVar(&cfg.RunAddress, "a", defaultRunAddress, "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&flagBrokers, "k", "", "comma separated kafka brokers for change events")
	flag.StringVar(&cfg.KafkaTopic, "t", defaultKafkaTopic, "kafka topic for change events")
	flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")

	flag.Parse()

	cfg.KafkaBrokers = splitBrokers(flagBrokers)

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if len(envKafkaBrokers) > 0 {
		cfg.KafkaBrokers = splitBrokers(strings.Join(envKafkaBrokers, ","))
	}
	if envKafkaTopic != "" {
		cfg.KafkaTopic = envKafkaTopic
	}
	if envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = defaultRunAddress
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = defaultKafkaTopic
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

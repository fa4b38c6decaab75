package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DBURL string

	APITitle       string
	APIDescription string
	APIVersion     string
	APIHost        string
	APIPort        int

	SecretKey []byte
	Algorithm string

	KafkaBrokers []string
	KafkaGroupID string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	LogLevel string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		DBURL: os.Getenv("DB_URL"),

		APITitle:       EnvDefault("API_TITLE", "Clothing Store API"),
		APIDescription: EnvDefault("API_DESCRIPTION", "Backend for the clothing store application"),
		APIVersion:     EnvDefault("API_VERSION", "1.0.0"),
		APIHost:        EnvDefault("API_HOST", "0.0.0.0"),
		APIPort:        EnvIntDefault("API_PORT", 8000),

		SecretKey: []byte(os.Getenv("SECRET_KEY")),
		Algorithm: EnvDefault("ALGORITHM", "HS256"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaGroupID: EnvDefault("KAFKA_GROUP_ID", "product-indexer"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("missing required env DB_URL")
	}
	if len(cfg.SecretKey) == 0 {
		return nil, fmt.Errorf("missing required env SECRET_KEY")
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultElasticsearchURL = "http://localhost:9200"

// Config holds the connection parameters resolved from the environment.
type Config struct {
	URL    string
	APIKey string
}

// loadConfig resolves ELASTICSEARCH_URL and ELASTICSEARCH_API_KEY, reading a
// .env file first when one exists. A missing URL falls back to the local
// default; a missing API key means an unauthenticated connection.
func loadConfig() Config {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{
		URL:    strings.TrimSpace(os.Getenv("ELASTICSEARCH_URL")),
		APIKey: strings.TrimSpace(os.Getenv("ELASTICSEARCH_API_KEY")),
	}
	if cfg.URL == "" {
		cfg.URL = defaultElasticsearchURL
	}
	return cfg
}

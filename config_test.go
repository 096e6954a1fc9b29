package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ELASTICSEARCH_URL", "")
	t.Setenv("ELASTICSEARCH_API_KEY", "")

	cfg := loadConfig()
	if cfg.URL != defaultElasticsearchURL {
		t.Errorf("Expected default URL %s, got %s", defaultElasticsearchURL, cfg.URL)
	}
	if cfg.APIKey != "" {
		t.Errorf("Expected empty API key, got %s", cfg.APIKey)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ELASTICSEARCH_URL", "https://example.es.cloud:9243")
	t.Setenv("ELASTICSEARCH_API_KEY", "  secret-key  ")

	cfg := loadConfig()
	if cfg.URL != "https://example.es.cloud:9243" {
		t.Errorf("Expected env URL, got %s", cfg.URL)
	}
	if cfg.APIKey != "secret-key" {
		t.Errorf("Expected trimmed API key, got %q", cfg.APIKey)
	}
}

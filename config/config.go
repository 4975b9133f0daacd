package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"lexchunk/pipeline"
)

type Config struct {
	AppPort      int    `yaml:"app_port"`
	EmbeddingURL string `yaml:"embedding_url"`
	EmbeddingDim int    `yaml:"embedding_dim"`
	QdrantHost   string `yaml:"qdrant_host"`
	QdrantPort   int    `yaml:"qdrant_port"`
	BoltPath     string `yaml:"bolt_path"`

	Pipeline *pipeline.Config `yaml:"pipeline"`
}

// Load reads the YAML config file when path is non-empty, then applies
// environment overrides (a .env file is honored if present). Pipeline values
// are validated by the processor at construction.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:      8080,
		EmbeddingDim: 384,
		QdrantPort:   6334,
		BoltPath:     "data/lexchunk.db",
		Pipeline:     pipeline.DefaultConfig(),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.EmbeddingURL == "" {
		return nil, fmt.Errorf("embedding_url is required (config file or EMBEDDING_URL)")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.AppPort = port
		}
	}
	if v := os.Getenv("EMBEDDING_URL"); v != "" {
		cfg.EmbeddingURL = v
	}
	if v := os.Getenv("QDRANT_HOST"); v != "" {
		cfg.QdrantHost = v
	}
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.QdrantPort = port
		}
	}
	if v := os.Getenv("BOLT_PATH"); v != "" {
		cfg.BoltPath = v
	}
}

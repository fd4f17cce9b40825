package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/real-estate-manager/internal/matching"
)

type Config struct {
	Server   ServerConfig     `yaml:"server"`
	Storage  StorageConfig    `yaml:"storage"`
	Matching matching.Weights `yaml:"matching"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Address: ":8080"},
		Storage: StorageConfig{
			Backend:    "json",
			DataDir:    "data",
			SQLitePath: "data/realestate.db",
		},
		Matching: matching.DefaultWeights(),
	}
}

// Load reads path over the defaults, then applies .env and environment
// overrides. A missing file or .env is not an error; an empty path skips the
// file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("loading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading config: .env: %w", err)
	}
	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"REALESTATE_ADDRESS", &cfg.Server.Address},
		{"REALESTATE_STORAGE", &cfg.Storage.Backend},
		{"REALESTATE_DATA_DIR", &cfg.Storage.DataDir},
		{"REALESTATE_SQLITE_PATH", &cfg.Storage.SQLitePath},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.dst = v
		}
	}
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Server.Address) == "" {
		return fmt.Errorf("server address is required")
	}
	switch cfg.Storage.Backend {
	case "json":
		if strings.TrimSpace(cfg.Storage.DataDir) == "" {
			return fmt.Errorf("storage data_dir is required for the json backend")
		}
	case "sqlite":
		if strings.TrimSpace(cfg.Storage.SQLitePath) == "" {
			return fmt.Errorf("storage sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unsupported storage backend: %q", cfg.Storage.Backend)
	}
	if err := cfg.Matching.Validate(); err != nil {
		return fmt.Errorf("matching: %w", err)
	}
	return nil
}

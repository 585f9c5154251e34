package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/denikks/huntbook/internal/calc"
)

// FileName is the config file name inside the config directory.
const FileName = "huntbook.yaml"

// Env variable overrides.
const (
	EnvConfig  = "HUNTBOOK_CONFIG"
	EnvDataDir = "HUNTBOOK_DATA_DIR"
)

// Config is the top-level huntbook.yaml configuration.
type Config struct {
	DataDir  string        `yaml:"data_dir"`
	Session  string        `yaml:"session"`
	Currency string        `yaml:"currency"` // ISO 4217 code, e.g. "GBP"
	Sound    SoundConfig   `yaml:"sound"`
	EMF      EMFConfig     `yaml:"emf"`
	History  HistoryConfig `yaml:"history"`
}

// SoundConfig mirrors the desktop app's audio toggle. Playback itself is a
// front-end concern; the core only carries the setting.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EMFConfig holds the running-total boundaries for EMF levels 2..5.
type EMFConfig struct {
	Level2 int64 `yaml:"level2"`
	Level3 int64 `yaml:"level3"`
	Level4 int64 `yaml:"level4"`
	Level5 int64 `yaml:"level5"`
}

// Thresholds converts the configured boundaries for the calculator.
func (e EMFConfig) Thresholds() calc.EMFThresholds {
	return calc.EMFThresholds{
		decimal.NewFromInt(e.Level2),
		decimal.NewFromInt(e.Level3),
		decimal.NewFromInt(e.Level4),
		decimal.NewFromInt(e.Level5),
	}
}

// HistoryConfig controls git snapshots of the data directory.
type HistoryConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a huntbook.yaml file from disk and applies env overrides.
// A .env file in the working directory is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults rooted at dir.
func Default(dir string) *Config {
	return &Config{
		DataDir:  filepath.Join(dir, "sessions"),
		Session:  "default",
		Currency: "GBP",
		Sound:    SoundConfig{Enabled: true},
		EMF:      EMFConfig{Level2: 500, Level3: 1000, Level4: 1500, Level5: 2000},
		History: HistoryConfig{
			AutoCommit:  false,
			AuthorName:  "huntbook",
			AuthorEmail: "huntbook@localhost",
		},
	}
}

// DefaultPath resolves the config file path: the HUNTBOOK_CONFIG override
// when set, otherwise huntbook.yaml next to the data in dir.
func DefaultPath(dir string) string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(dir, FileName)
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Related RelatedConfig `yaml:"related"`
	Catalog CatalogConfig `yaml:"catalog"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Log     LogConfig     `yaml:"log"`
}

type RelatedConfig struct {
	Count       int `yaml:"count"`
	DBTimeoutMS int `yaml:"db_timeout_ms"`
	// MinScore drops catalog candidates scoring below it; the freed slots are
	// filled with items of the other type.
	MinScore int `yaml:"min_score"`
}

type CatalogConfig struct {
	// Path overrides the default catalog.yaml location in Dir().
	Path string `yaml:"path,omitempty"`
}

type FetchConfig struct {
	Concurrency     int    `yaml:"concurrency"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	UserAgent       string `yaml:"user_agent"`
	KeywordsPerPost int    `yaml:"keywords_per_post"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Related: RelatedConfig{
			Count:       3,
			DBTimeoutMS: 3000,
		},
		Fetch: FetchConfig{
			Concurrency:     5,
			TimeoutSeconds:  30,
			UserAgent:       "wayfare/1.0",
			KeywordsPerPost: 8,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DBTimeout is how long the related-content engine waits for the posts database.
func (c *Config) DBTimeout() time.Duration {
	if c.Related.DBTimeoutMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.Related.DBTimeoutMS) * time.Millisecond
}

// CatalogPath resolves the static catalog file, honouring catalog.path.
func (c *Config) CatalogPath() string {
	if c.Catalog.Path != "" {
		return c.Catalog.Path
	}
	return filepath.Join(Dir(), "catalog.yaml")
}

func Dir() string {
	if dir := os.Getenv("WAYFARE_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wayfare")
}

func DBPath() string {
	return filepath.Join(Dir(), "wayfare.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}

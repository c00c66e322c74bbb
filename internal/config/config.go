// Package config loads the dashboard configuration from a YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DateLayout is the ISO date format used for the threshold date.
const DateLayout = "2006-01-02"

// Config is the full dashboard configuration. The GitHub token is
// deliberately not part of it; it is read from the environment at call
// time and never stored.
type Config struct {
	Settings Settings  `yaml:"settings"`
	Projects []Project `yaml:"projects"`
}

// Settings holds the global dashboard settings.
type Settings struct {
	ThresholdDate string `yaml:"threshold_date" env:"THRESHOLD_DATE"`
	PerPage       int    `yaml:"per_page" env:"PER_PAGE" env-default:"100"`
}

// Project is one tracked repository entry.
type Project struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Name  string `yaml:"name"`
	Order int    `yaml:"order"`
}

// Load reads the configuration from path, falling back to CONFIG_PATH and
// then config.yaml. A .env file is honored if present.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config.yaml"
	}

	cfg := &Config{}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Threshold parses the configured threshold date.
func (c *Config) Threshold() (time.Time, error) {
	threshold, err := time.Parse(DateLayout, c.Settings.ThresholdDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid threshold_date %q: %w", c.Settings.ThresholdDate, err)
	}
	return threshold, nil
}

func (c *Config) validate() error {
	if len(c.Projects) == 0 {
		return errors.New("no projects configured")
	}
	for _, project := range c.Projects {
		if project.Owner == "" || project.Repo == "" {
			return fmt.Errorf("project %q: owner and repo are required", project.Name)
		}
	}
	if _, err := c.Threshold(); err != nil {
		return err
	}
	return nil
}

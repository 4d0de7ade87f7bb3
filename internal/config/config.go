// Package config resolves quizrush settings from a YAML file, a .env file
// and QUIZRUSH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizrush/internal/launcher"
	"github.com/abhisek/quizrush/internal/llm"
)

// Config is the resolved application configuration.
type Config struct {
	// TopicsDir holds extra topic files. Files override built-in topics
	// with the same key.
	TopicsDir string `yaml:"topics_dir"`

	// LogFile receives structured logs. Empty discards them.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	// Menu replaces the built-in launcher entries when non-empty.
	Menu []launcher.Entry `yaml:"menu"`

	LLM llm.Config `yaml:"llm"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Menu:     launcher.DefaultEntries(),
		LLM:      llm.DefaultConfig(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/quizrush/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quizrush", "config.yaml"), nil
}

// Load resolves configuration. path may be empty, in which case
// QUIZRUSH_CONFIG and then DefaultPath are tried; a missing default file is
// not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	// Only fills variables that are not already set.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		if p := os.Getenv("QUIZRUSH_CONFIG"); p != "" {
			path, explicit = p, true
		} else if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if file.TopicsDir != "" {
		c.TopicsDir = file.TopicsDir
	}
	if file.LogFile != "" {
		c.LogFile = file.LogFile
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if len(file.Menu) > 0 {
		c.Menu = file.Menu
	}
	c.LLM = mergeLLM(c.LLM, file.LLM)
	return nil
}

func mergeLLM(base, over llm.Config) llm.Config {
	if over.Provider != "" {
		base.Provider = over.Provider
	}
	if over.APIKey != "" {
		base.APIKey = over.APIKey
	}
	if over.Model != "" {
		base.Model = over.Model
	}
	if over.BaseURL != "" {
		base.BaseURL = over.BaseURL
	}
	if over.Timeout > 0 {
		base.Timeout = over.Timeout
	}
	if over.Retry.MaxAttempts > 0 {
		base.Retry = over.Retry
	}
	return base
}

func (c *Config) applyEnv() {
	if v := os.Getenv("QUIZRUSH_TOPICS_DIR"); v != "" {
		c.TopicsDir = v
	}
	if v := os.Getenv("QUIZRUSH_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("QUIZRUSH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	c.LLM = c.LLM.ApplyEnv()
}

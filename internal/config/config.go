package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultLogLevel    = "warn"
)

// Config holds user preferences only. The Gemini API key is entered per
// session and never written here.
type Config struct {
	GeminiModel string `json:"gemini_model"`
	LogLevel    string `json:"log_level"`
}

func Default() *Config {
	return &Config{GeminiModel: DefaultGeminiModel, LogLevel: DefaultLogLevel}
}

func GeminiModelOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Gemini 2.5 Flash", "gemini-2.5-flash"),
		huh.NewOption("Gemini 2.5 Pro", "gemini-2.5-pro"),
		huh.NewOption("Gemini 2.5 Flash Lite", "gemini-2.5-flash-lite"),
	}
}

func LogLevelOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Errors only", "error"),
		huh.NewOption("Warnings", "warn"),
		huh.NewOption("Info", "info"),
		huh.NewOption("Debug", "debug"),
	}
}

// SlogLevel maps the configured level name onto slog, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

var dirOverride string

func configDir() string {
	if dirOverride != "" {
		return dirOverride
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".mentoreval")
}

func Path() string {
	return filepath.Join(configDir(), "config.json")
}

func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

func LoadFromFile() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Load returns the saved config, or defaults when none exists yet.
func Load() (*Config, error) {
	cfg, err := LoadFromFile()
	if err == nil {
		return cfg, nil
	}
	if !Exists() {
		return Default(), nil
	}
	return nil, err
}

func (c *Config) applyDefaults() {
	c.GeminiModel = strings.TrimSpace(c.GeminiModel)
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(configDir(), 0700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0600)
}

func RunSetup() (*Config, error) {
	cfg := Default()
	if existing, err := LoadFromFile(); err == nil {
		cfg = existing
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Gemini Model").
				Options(GeminiModelOptions()...).
				Value(&cfg.GeminiModel),
		).Title("AI Model"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Description("Diagnostics are written to stderr.").
				Options(LogLevelOptions()...).
				Value(&cfg.LogLevel),
		).Title("Diagnostics"),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	if err := Save(cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\nConfig saved to %s\n", Path())
	return cfg, nil
}

package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment"` // "development" or "production"
	Output      OutputConfig  `toml:"output"`
	Report      ReportConfig  `toml:"report"`
	Logging     LoggingConfig `toml:"logging"`
}

// OutputConfig controls where the rendered artifacts are written when the
// caller does not pass explicit paths on the command line.
type OutputConfig struct {
	Dir          string `toml:"dir"`           // Output directory for generated reports
	DeckFile     string `toml:"deck_file"`     // Default deck filename
	DocumentFile string `toml:"document_file"` // Default document filename
}

// ReportConfig contains rendering knobs for the two assemblers.
type ReportConfig struct {
	MaxDeckBullets int     `toml:"max_deck_bullets"` // Cap on technical-analysis bullets per slide (0 = no cap)
	ChartWidthMM   float64 `toml:"chart_width_mm"`   // Rendered chart width in the document, millimetres
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
}

// NewDefaultConfig creates a configuration with default values.
// Only user-facing settings are exposed in marketreport.toml; presentation
// constants live in models.DefaultTheme.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Output: OutputConfig{
			Dir:          "./output",
			DeckFile:     "Crypto_Market_Analysis_Deck.pdf",
			DocumentFile: "Crypto_Market_Analysis.pdf",
		},
		Report: ReportConfig{
			MaxDeckBullets: 0,
			ChartWidthMM:   160,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05",
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env. Later files override earlier ones.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("MARKETREPORT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if dir := os.Getenv("MARKETREPORT_OUTPUT_DIR"); dir != "" {
		config.Output.Dir = dir
	}
	if deck := os.Getenv("MARKETREPORT_OUTPUT_DECK_FILE"); deck != "" {
		config.Output.DeckFile = deck
	}
	if doc := os.Getenv("MARKETREPORT_OUTPUT_DOCUMENT_FILE"); doc != "" {
		config.Output.DocumentFile = doc
	}

	if level := os.Getenv("MARKETREPORT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("MARKETREPORT_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			trimmed := strings.TrimSpace(o)
			if trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

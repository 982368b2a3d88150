package internal

import (
	"fmt"
	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultPattern matches the newsletter naming scheme
// YYYY-MM-DD-this-week-in-rust.md.
const DefaultPattern = "[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]-this-week-in-rust.md"

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return c.Content.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// ContentConfig selects which newsletter files are inspected.
type ContentConfig struct {
	Path      string `yaml:"path"`
	Pattern   string `yaml:"pattern"`
	NumRecent int    `yaml:"num_recent"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.Pattern, validation.Required, validation.By(validGlobPattern)),
		validation.Field(&c.NumRecent, validation.Required, validation.Min(1)),
	)
}

// validGlobPattern rejects patterns doublestar cannot compile.
func validGlobPattern(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !doublestar.ValidatePattern(s) {
		return fmt.Errorf("invalid glob pattern")
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Content: ContentConfig{
			Path:      "content",
			Pattern:   DefaultPattern,
			NumRecent: 5,
		},
	}
}

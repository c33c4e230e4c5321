package extract

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// Config configures the extraction engine. Build it once at process start
// and inject it; the engine keeps no other state.
type Config struct {
	// MinTextLen is the minimum trimmed length (in runes) for text decoded
	// from binary formats (pdf, doc, docx). Shorter output is treated as
	// no readable content (default: 10).
	MinTextLen int `json:"min_text_len" yaml:"min_text_len"`

	// MinPlainTextLen is the minimum trimmed length for plain-text uploads
	// (default: 1).
	MinPlainTextLen int `json:"min_plain_text_len" yaml:"min_plain_text_len"`

	// Logger for diagnostic events.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.MinTextLen <= 0 {
		c.MinTextLen = 10
	}
	if c.MinPlainTextLen <= 0 {
		c.MinPlainTextLen = 1
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfig parses a YAML configuration blob.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse extract config: %w", err)
	}
	return cfg, nil
}

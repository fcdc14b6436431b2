// Package config loads run configuration for analyses from YAML.
package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sentimeter/pkg/sentimeter/aggregate"
	"github.com/cognicore/sentimeter/pkg/sentimeter/internalerr"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon/memlex"
	"github.com/cognicore/sentimeter/pkg/sentimeter/lexicon/sqlex"
)

// Config describes where lexicons come from and how analyses run.
// Either CompiledLexicon or at least one of the YAML lexicon paths must
// be set.
type Config struct {
	// CompiledLexicon is the path to a sqlex-compiled lexicon file.
	CompiledLexicon string `yaml:"compiled_lexicon"`

	// PolarityLexicon and EmotionLexicon point at YAML word lists,
	// used when no compiled lexicon is configured.
	PolarityLexicon string `yaml:"polarity_lexicon"`
	EmotionLexicon  string `yaml:"emotion_lexicon"`

	// Stemming enables snowball stemming before lexicon lookup.
	Stemming bool `yaml:"stemming"`

	// Bins is the averaged-score chunk size; 0 means the default.
	Bins int `yaml:"bins"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for a usable lexicon source.
func (c *Config) Validate() error {
	if c.CompiledLexicon == "" && c.PolarityLexicon == "" && c.EmotionLexicon == "" {
		return fmt.Errorf("%w: no lexicon source configured", internalerr.ErrInvalidConfig)
	}
	if c.Bins < 0 {
		return fmt.Errorf("%w: bins must not be negative", internalerr.ErrInvalidConfig)
	}
	return nil
}

// BinSize returns the configured bin size, or the package default.
func (c *Config) BinSize() int {
	if c.Bins <= 0 {
		return aggregate.DefaultBins
	}
	return c.Bins
}

// BuildStore constructs the lexicon store the configuration names.
// A compiled lexicon takes precedence over YAML word lists.
func (c *Config) BuildStore(ctx context.Context) (lexicon.Store, error) {
	if c.CompiledLexicon != "" {
		return sqlex.Open(ctx, c.CompiledLexicon)
	}

	var (
		polarity map[string]lexicon.Polarity
		emotions map[string]lexicon.EmotionVector
		err      error
	)
	if c.PolarityLexicon != "" {
		polarity, err = lexicon.LoadPolarityYAML(c.PolarityLexicon)
		if err != nil {
			return nil, fmt.Errorf("load polarity lexicon: %w", err)
		}
	}
	if c.EmotionLexicon != "" {
		emotions, err = lexicon.LoadEmotionsYAML(c.EmotionLexicon)
		if err != nil {
			return nil, fmt.Errorf("load emotion lexicon: %w", err)
		}
	}

	return memlex.New(polarity, emotions)
}

// Package config provides configuration loading and management for termlogic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete termlogic configuration
type Config struct {
	NATS   NATSConfig   `yaml:"nats"`
	Engine EngineConfig `yaml:"engine"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL
	URL string `yaml:"url"`
	// MaxReconnects bounds reconnection attempts (-1 = unlimited)
	MaxReconnects int `yaml:"max_reconnects"`
	// ReconnectWait is the delay between reconnection attempts
	ReconnectWait time.Duration `yaml:"reconnect_wait"`
}

// EngineConfig configures the inference components
type EngineConfig struct {
	// RequestSubject is the request/reply subject for one-shot inference
	RequestSubject string `yaml:"request_subject"`
	// StreamName is the JetStream stream holding premise pair events
	StreamName string `yaml:"stream_name"`
	// PairSubject is the subject premise pair events arrive on
	PairSubject string `yaml:"pair_subject"`
	// PublishConclusions controls publishing derived conclusions to the
	// knowledge graph. Nil means unset, which enables publishing.
	PublishConclusions *bool `yaml:"publish_conclusions,omitempty"`
}

// PublishConclusionsEnabled reports whether derived conclusions should be
// published, defaulting to true when the option is unset.
func (e *EngineConfig) PublishConclusionsEnabled() bool {
	if e.PublishConclusions == nil {
		return true
	}
	return *e.PublishConclusions
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:           "nats://localhost:4222",
			MaxReconnects: -1,
			ReconnectWait: 2 * time.Second,
		},
		Engine: EngineConfig{
			RequestSubject: "logic.infer",
			StreamName:     "LOGIC",
			PairSubject:    "logic.premises.pair",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.NATS.URL == "" {
		return fmt.Errorf("nats.url is required")
	}
	if c.Engine.RequestSubject == "" {
		return fmt.Errorf("engine.request_subject is required")
	}
	if c.Engine.StreamName == "" {
		return fmt.Errorf("engine.stream_name is required")
	}
	if c.Engine.PairSubject == "" {
		return fmt.Errorf("engine.pair_subject is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.MaxReconnects != 0 {
		c.NATS.MaxReconnects = other.NATS.MaxReconnects
	}
	if other.NATS.ReconnectWait != 0 {
		c.NATS.ReconnectWait = other.NATS.ReconnectWait
	}

	// Engine
	if other.Engine.RequestSubject != "" {
		c.Engine.RequestSubject = other.Engine.RequestSubject
	}
	if other.Engine.StreamName != "" {
		c.Engine.StreamName = other.Engine.StreamName
	}
	if other.Engine.PairSubject != "" {
		c.Engine.PairSubject = other.Engine.PairSubject
	}
	if other.Engine.PublishConclusions != nil {
		c.Engine.PublishConclusions = other.Engine.PublishConclusions
	}
}

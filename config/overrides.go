package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mpalmer79/agentforge-sub001/registry"
)

// Overrides adjusts the built-in context-window table from a configuration
// file. Deployments use this when a provider raises a limit before the
// built-in table catches up, or to cap windows below the provider maximum.
//
// An Overrides value is an immutable snapshot: Load builds it once and
// nothing mutates it afterward, so it is safe to share across goroutines.
type Overrides struct {
	// ContextWindows maps exact model identifiers to window sizes,
	// taking precedence over the built-in table.
	ContextWindows map[string]int `yaml:"context_windows,omitempty" toml:"context_windows,omitempty" json:"context_windows,omitempty"`

	// DefaultWindow replaces the built-in fallback for unknown models
	// when positive.
	DefaultWindow int `yaml:"default_window,omitempty" toml:"default_window,omitempty" json:"default_window,omitempty"`

	// ReservedForResponse replaces the default response reservation when
	// positive.
	ReservedForResponse int `yaml:"reserved_for_response,omitempty" toml:"reserved_for_response,omitempty" json:"reserved_for_response,omitempty"`
}

// Load reads overrides from a YAML (.yaml/.yml), TOML (.toml), or JSON
// (.json) file, dispatching on the file extension.
func Load(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides file: %w", err)
	}

	var o Overrides
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parse yaml overrides: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parse toml overrides: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("parse json overrides: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported overrides format %q (want .yaml, .yml, .toml, or .json)", ext)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Overrides) validate() error {
	for id, window := range o.ContextWindows {
		if window <= 0 {
			return fmt.Errorf("context window for %q must be positive, got %d", id, window)
		}
	}
	if o.DefaultWindow < 0 {
		return fmt.Errorf("default window must not be negative, got %d", o.DefaultWindow)
	}
	if o.ReservedForResponse < 0 {
		return fmt.Errorf("reserved for response must not be negative, got %d", o.ReservedForResponse)
	}
	return nil
}

// Window returns the context window for a model, consulting the override
// table first and falling back to the registry.
func (o *Overrides) Window(modelID string) int {
	if o != nil {
		if window, ok := o.ContextWindows[modelID]; ok {
			return window
		}
		if o.DefaultWindow > 0 && !registry.IsKnownModel(modelID) {
			return o.DefaultWindow
		}
	}
	return registry.GetContextWindow(modelID)
}

// Reserve returns the response reservation to use with this configuration.
func (o *Overrides) Reserve(fallback int) int {
	if o != nil && o.ReservedForResponse > 0 {
		return o.ReservedForResponse
	}
	return fallback
}

package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/lvzhenbang/flex-layout/errors"
)

// Config is the root of a flexlayout.yml (or flexlayout.toml) file.
type Config struct {
	Version string      `yaml:"version,omitempty" toml:"version,omitempty"`
	Media   MediaConfig `yaml:"media,omitempty" toml:"media,omitempty"`

	// Extensions captures any top-level sections this package does not model
	// (e.g. "logging"). Tools decode their own section with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" toml:"-"`
}

// MediaConfig holds the media query and breakpoint settings.
type MediaConfig struct {
	// PrintWithBreakpoints lists breakpoint aliases that are forced active
	// while a print context is matching. Unset degrades to an empty list.
	PrintWithBreakpoints []string `yaml:"print_with_breakpoints,omitempty" toml:"print_with_breakpoints,omitempty" jsonschema:"description=Breakpoint aliases forced active while printing"`

	// Breakpoints declares custom breakpoints. An entry whose alias matches a
	// default breakpoint replaces it; other entries are added to the registry.
	Breakpoints []BreakpointConfig `yaml:"breakpoints,omitempty" toml:"breakpoints,omitempty" jsonschema:"description=Custom breakpoint declarations merged over the defaults"`

	// DisableDefaults drops the built-in breakpoint set so the registry
	// contains only the declared breakpoints.
	DisableDefaults bool `yaml:"disable_defaults,omitempty" toml:"disable_defaults,omitempty" jsonschema:"description=If true only declared breakpoints are registered"`
}

// BreakpointConfig declares a single custom breakpoint.
type BreakpointConfig struct {
	Alias       string `yaml:"alias" toml:"alias" jsonschema:"description=Short name used in directives (e.g. md)"`
	MediaQuery  string `yaml:"media_query" toml:"media_query" jsonschema:"description=The media query condition string"`
	Priority    int    `yaml:"priority,omitempty" toml:"priority,omitempty" jsonschema:"description=Higher priority wins when several queries match"`
	Overlapping bool   `yaml:"overlapping,omitempty" toml:"overlapping,omitempty" jsonschema:"description=Marks range breakpoints that overlap the base set"`
}

// Validate checks structural invariants that the YAML/TOML decoders cannot.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Media.Breakpoints))
	for _, bp := range c.Media.Breakpoints {
		if bp.Alias == "" {
			return errors.ConfigInvalid("breakpoint declared without an alias")
		}
		if bp.MediaQuery == "" {
			return errors.InvalidQuery("", fmt.Sprintf("breakpoint '%s' has no media_query", bp.Alias))
		}
		if seen[bp.Alias] {
			return errors.DuplicateAlias(bp.Alias)
		}
		seen[bp.Alias] = true
	}
	return nil
}

// UnmarshalExtension decodes an unmodeled top-level section of the loaded
// flexlayout.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for tools to access their custom
// configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

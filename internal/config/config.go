// Package config loads optional settings for git-changelog using koanf.
// Configuration is layered with priority: environment variables (CHANGELOG_*)
// > config file (.changelog.yml by default) > built-in defaults. Command-line
// flags are applied on top by the commands themselves.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultPath is the config file looked up when none is given explicitly.
	DefaultPath = ".changelog.yml"
	// EnvPrefix prefixes every environment override, e.g. CHANGELOG_FORMAT.
	EnvPrefix = "CHANGELOG_"
)

// Configuration holds the settings that can be provided outside of flags.
type Configuration struct {
	// Format is the default output format of both commands.
	Format string `koanf:"format"`
	// NoLinks suppresses PR references in release output.
	NoLinks bool `koanf:"no_links"`
	// Repo is the default repository path of the generate command.
	Repo string `koanf:"repo"`

	Grouped ProfileConfig `koanf:"grouped"`
	Release ProfileConfig `koanf:"release"`
}

// ProfileConfig customises one category taxonomy.
type ProfileConfig struct {
	// Types adds or overrides type-to-label entries, e.g. revert: Changed.
	Types map[string]string `koanf:"types"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// Path overrides DefaultPath.
	Path string
	// Explicit makes a missing file an error instead of being skipped.
	Explicit bool
}

// Load reads the config file, if any, and applies environment overrides.
func Load(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	if err := loadFile(k, path, opts.Explicit); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: CHANGELOG_NO_LINKS -> no_links
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the plus configuration file in the working directory,
//              its config subdirectory and the user configuration directory.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation of file discovery
// - 2026-10-17 v0.2.0: plus file names, user configuration directory,
//                       optional discovery returns an empty configuration

package config

import (
	"os"
	"path/filepath"

	"github.com/msto63/plus/core/errors"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches ".", "./config" and $HOME/.config/plus
// for plus.toml, plus.yaml and plus.yml. A missing file is not an error.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "plus"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"plus"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
		Required:   false,
	}
}

// Discover loads the first configuration file found. Paths are searched in
// order, then file names, then extensions. When nothing is found and the
// file is not required, an empty configuration with environment overrides
// is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	options = withDiscoveryDefaults(options)

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	options = withDiscoveryDefaults(options)

	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.ConfigNotFound(candidates)
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}

func withDiscoveryDefaults(options DiscoveryOptions) DiscoveryOptions {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"plus"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}
	return options
}

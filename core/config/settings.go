// File: settings.go
// Title: Typed plus Settings
// Description: Reads the keys used by the command line front end into a
//              typed struct after validating them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package config

import "strings"

// Settings holds the effective values of the plus configuration keys
type Settings struct {
	LogLevel        string // log.level
	LogFormat       string // log.format
	OutputStyle     string // output.style: plain or pretty
	OutputPrecision int    // output.precision: -1 prints the shortest exact form
	RandomSeed      uint64 // random.seed: 0 seeds from the runtime
}

// DefaultSettings returns the values used when a key is not configured
func DefaultSettings() Settings {
	return Settings{
		LogLevel:        "warn",
		LogFormat:       "console",
		OutputStyle:     "plain",
		OutputPrecision: -1,
		RandomSeed:      0,
	}
}

// Settings validates c against StandardRules and returns the typed values.
// On a validation failure the defaults are returned with the first error.
func (c *Config) Settings() (Settings, error) {
	defaults := DefaultSettings()
	if err := c.Validate(StandardRules()).Err(); err != nil {
		return defaults, err
	}

	return Settings{
		LogLevel:        strings.ToLower(c.GetString("log.level", defaults.LogLevel)),
		LogFormat:       strings.ToLower(c.GetString("log.format", defaults.LogFormat)),
		OutputStyle:     strings.ToLower(c.GetString("output.style", defaults.OutputStyle)),
		OutputPrecision: c.GetInt("output.precision", defaults.OutputPrecision),
		RandomSeed:      uint64(c.GetInt64("random.seed", int64(defaults.RandomSeed))),
	}, nil
}

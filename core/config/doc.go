// Package config provides configuration loading for plus.
//
// Package: config
// Title: Core Configuration Management
// Description: TOML and YAML configuration files with automatic discovery,
//              dot-notation access, environment variable overrides and
//              validation of the settings plus reads.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: plus discovery paths, typed Settings, validation
//                       errors from core/errors
//
// # Discovery
//
// DiscoverWithDefaults looks for plus.toml, plus.yaml and plus.yml in the
// working directory, in ./config and in $HOME/.config/plus, and loads the
// first one found. No file at all is not an error: the result is an empty
// configuration that still honours environment overrides.
//
// # Keys
//
//	[log]
//	level = "warn"        # trace, debug, info, warn, error, fatal
//	format = "console"    # console, text, json, logfmt
//
//	[output]
//	style = "plain"       # plain or pretty
//	precision = -1        # digits after the point, -1 for the shortest form
//
//	[random]
//	seed = 0              # 0 seeds from the runtime
//
// # Environment
//
// Every key can be overridden with an environment variable named after it
// with the PLUS prefix: output.style is overridden by PLUS_OUTPUT_STYLE.
// Environment values win over file values.
//
// Usage:
//
//	cfg, err := config.DiscoverWithDefaults()
//	if err != nil {
//		return err
//	}
//	settings, err := cfg.Settings()
//	if err != nil {
//		return err // CONFIG_INVALID_VALUE with the offending key in its details
//	}
package config

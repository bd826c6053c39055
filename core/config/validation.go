// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against rules: required keys,
//              value kinds, numeric bounds and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation of validation
// - 2026-10-17 v0.2.0: Allowed-value lists, structured errors, rules for
//                       the plus settings

package config

import (
	"fmt"
	"sort"
	"strings"

	mdwerror "github.com/msto63/plus/core/error"
	"github.com/msto63/plus/core/errors"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected kind: "string", "int", "float" or "bool"
	Min      *float64 // Inclusive lower bound for numbers
	Max      *float64 // Inclusive upper bound for numbers
	OneOf    []string // Allowed string values, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []*mdwerror.Error
}

// Err returns the first validation error, or nil when the configuration is valid
func (r *ValidationResult) Err() error {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Bound returns a pointer to v for use as ValidationRule.Min or Max
func Bound(v float64) *float64 {
	return &v
}

// StandardRules returns the rules for the keys plus reads
func StandardRules() ValidationRules {
	return ValidationRules{
		"log.level": {
			Type:  "string",
			OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "err", "fatal"},
		},
		"log.format": {
			Type:  "string",
			OneOf: []string{"console", "text", "json", "logfmt"},
		},
		"output.style": {
			Type:  "string",
			OneOf: []string{"plain", "pretty"},
		},
		"output.precision": {
			Type: "int",
			Min:  Bound(-1),
			Max:  Bound(17),
		},
		"random.seed": {
			Type: "int",
			Min:  Bound(0),
		},
	}
}

// Validate checks the effective value of every key, environment overrides
// included. Keys are checked in sorted order so results are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}

	return result
}

// validateField validates a single configuration key
func (c *Config) validateField(key string, rule ValidationRule) *mdwerror.Error {
	value := c.lookup(key)
	if value == nil {
		if rule.Required {
			return errors.NewErrorBuilder(errors.ModuleConfig).
				Operation("validate").
				Messagef("required key %s is missing", key).
				Code(mdwerror.CodeRequiredField).
				Detail("key", key).
				Build()
		}
		return nil
	}

	switch rule.Type {
	case "":
	case "string":
		if _, ok := value.(string); !ok {
			return errors.ConfigInvalidValue(key, value, "a string")
		}
	case "int":
		n, ok := toInt(value)
		if !ok {
			return errors.ConfigInvalidValue(key, value, "an integer")
		}
		if err := checkBounds(key, value, float64(n), rule); err != nil {
			return err
		}
	case "float":
		f, ok := toFloat(value)
		if !ok {
			return errors.ConfigInvalidValue(key, value, "a number")
		}
		if err := checkBounds(key, value, f, rule); err != nil {
			return err
		}
	case "bool":
		if _, ok := toBool(value); !ok {
			return errors.ConfigInvalidValue(key, value, "true or false")
		}
	default:
		return errors.ConfigInvalidValue(key, value, fmt.Sprintf("known type, rule has %q", rule.Type))
	}

	if len(rule.OneOf) > 0 {
		s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", value)))
		for _, allowed := range rule.OneOf {
			if s == allowed {
				return nil
			}
		}
		return errors.ConfigInvalidValue(key, value, "one of "+strings.Join(rule.OneOf, ", "))
	}

	return nil
}

func checkBounds(key string, value interface{}, n float64, rule ValidationRule) *mdwerror.Error {
	if rule.Min != nil && n < *rule.Min {
		return errors.ConfigInvalidValue(key, value, fmt.Sprintf("a value of at least %g", *rule.Min))
	}
	if rule.Max != nil && n > *rule.Max {
		return errors.ConfigInvalidValue(key, value, fmt.Sprintf("a value of at most %g", *rule.Max))
	}
	return nil
}

// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML and YAML files,
//              dot-notation access with defaults and environment variable
//              overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-13
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Structured errors from core/errors, nested defaults,
//                       environment lookup without caching

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/plus/core/errors"
	"github.com/msto63/plus/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// EnvPrefix is the prefix of the environment variables that override
// configuration keys: log.level is overridden by PLUS_LOG_LEVEL.
const EnvPrefix = "PLUS"

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested or dotted keys
}

// Load loads configuration from a file with the PLUS environment prefix
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: EnvPrefix,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, errors.InvalidInput(errors.ModuleConfig, "load", filePath, "path of a configuration file")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewErrorBuilder(errors.ModuleConfig).
				Operation("load").
				Messagef("config file not found: %s", filePath).
				Cause(err).
				Code(errors.CodeNotFound).
				Detail("path", filePath).
				Build()
		}
		return nil, errors.OperationFailed(errors.ModuleConfig, "load", err).
			WithDetail("path", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, errors.ConfigParseFailed(filePath, format.String(), err)
	}

	return newConfig(data, filePath, format, options), nil
}

// LoadFromString loads configuration from a string with the given format.
// FormatAuto is treated as TOML. Environment overrides are not applied.
func LoadFromString(content string, format Format) (*Config, error) {
	return LoadFromStringWithOptions(content, LoadOptions{Format: format})
}

// LoadFromStringWithOptions loads configuration from a string with custom options
func LoadFromStringWithOptions(content string, options LoadOptions) (*Config, error) {
	format := options.Format
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, errors.ConfigParseFailed("<string>", format.String(), err)
	}

	return newConfig(data, "", format, options), nil
}

// Empty returns a configuration without values. Environment overrides with
// the given prefix still apply.
func Empty(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

func newConfig(data map[string]interface{}, filePath string, format Format, options LoadOptions) *Config {
	if data == nil {
		data = make(map[string]interface{})
	}
	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}
	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return data, nil
}

// mergeDefaults returns data with defaults filled in for missing keys.
// Default keys may be nested maps or dotted paths.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(data)
	for key, value := range defaults {
		if nested, ok := value.(map[string]interface{}); ok {
			existing, _ := result[key].(map[string]interface{})
			if existing == nil {
				if _, taken := result[key]; taken {
					continue
				}
				existing = make(map[string]interface{})
			}
			result[key] = mergeDefaults(existing, nested)
			continue
		}
		if lookupPath(result, key) == nil {
			setPath(result, key, value)
		}
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value := c.lookup(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default.
// Values that are not integers yield the default.
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if v, ok := toInt(c.lookup(key)); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetInt64 returns a 64 bit integer configuration value with optional default
func (c *Config) GetInt64(key string, defaultValue ...int64) int64 {
	switch v := c.lookup(key).(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return i
		}
	case float64:
		if v == float64(int64(v)) {
			return int64(v)
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if b, ok := toBool(c.lookup(key)); ok {
		return b
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if v, ok := toFloat(c.lookup(key)); ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a string slice configuration value with optional
// default. An environment override is split on commas.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	switch v := c.lookup(key).(type) {
	case []string:
		return v
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// lookup returns the environment override for key if one is set, otherwise
// the file value. Environment values are returned as strings.
func (c *Config) lookup(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.envPrefix != "" {
		if envValue, ok := os.LookupEnv(c.EnvKey(key)); ok && envValue != "" {
			return envValue
		}
	}
	return lookupPath(c.data, key)
}

// EnvKey returns the environment variable that overrides key:
// log.level -> PLUS_LOG_LEVEL
func (c *Config) EnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Has checks if a configuration key exists in the file or the environment
func (c *Config) Has(key string) bool {
	return c.lookup(key) != nil
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	setPath(c.data, key, value)
}

// Keys returns all leaf keys in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	collectKeys(c.data, "", &keys)
	sort.Strings(keys)
	return keys
}

// GetAll returns a deep copy of all file values
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}

// lookupPath walks a dotted key through nested maps
func lookupPath(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// setPath sets a dotted key, creating intermediate maps as needed
func setPath(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

func collectKeys(data map[string]interface{}, prefix string, keys *[]string) {
	for k, v := range data {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			collectKeys(nested, path, keys)
			continue
		}
		*keys = append(*keys, path)
	}
}

// deepCopyMap creates a deep copy of a map
func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// toInt converts the numeric kinds produced by the TOML and YAML decoders
// and environment strings. Floats must be whole numbers.
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func toBool(value interface{}) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b, true
		}
	}
	return false, false
}

// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, filtering and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16

package log

import (
	"testing"

	mdwerror "github.com/msto63/plus/core/error"
	"github.com/msto63/plus/core/errors"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		str   string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.str {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.str)
		}
		if got := tt.level.ShortString(); got != tt.short {
			t.Errorf("Level(%d).ShortString() = %q, want %q", tt.level, got, tt.short)
		}
	}
}

func TestLevelShouldLog(t *testing.T) {
	tests := []struct {
		level    Level
		minLevel Level
		want     bool
	}{
		{LevelDebug, LevelInfo, false},
		{LevelInfo, LevelInfo, true},
		{LevelError, LevelWarn, true},
		{LevelTrace, LevelTrace, true},
		{LevelWarn, LevelFatal, false},
	}

	for _, tt := range tests {
		if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
			t.Errorf("%s.ShouldLog(%s) = %v, want %v", tt.level, tt.minLevel, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if err != nil && !mdwerror.HasCode(err, errors.CodeInvalidInput) {
			t.Errorf("ParseLevel(%q) code = %v", tt.input, mdwerror.GetCode(err))
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatConsole, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !tt.wantErr && got.String() != tt.want.String() {
			t.Errorf("Format.String() = %q", got.String())
		}
	}

	if _, err := ParseFormat("xml"); !errors.IsModuleOperation(err, errors.ModuleLog, "parse_format") {
		t.Error("ParseFormat error should be attributed to log.parse_format")
	}
}

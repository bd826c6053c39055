// File: stringx.go
// Title: Core String Utility Functions
// Description: Unicode-safe string helpers: blank checks, padding, reversal
//              and overlapping substring counting.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Blank checks, padding and Reverse
// - 2026-10-16 v0.2.0: OccurrencesOf

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string from the provided strings.
// This is useful for providing default values while ignoring whitespace-only strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// PadRight pads s to width runes with the given pad character.
// If the string is already at least width runes long, it is returned unchanged.
func PadRight(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-runeCount)*utf8.RuneLen(pad))
	builder.WriteString(s)
	for i := runeCount; i < width; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// Reverse reverses a string while preserving Unicode characters.
// This function properly handles multi-byte UTF-8 characters.
func Reverse(s string) string {
	runes := []rune(s)
	reverseRunes(runes)
	return string(runes)
}

func reverseRunes(runes []rune) {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
}

// OccurrencesOf counts how often needle occurs in haystack. Matches may
// overlap: after a match the scan resumes one rune later, so
// OccurrencesOf("aa", "aaa") is 2. An empty needle occurs 0 times.
func OccurrencesOf(needle, haystack string) int {
	if needle == "" {
		return 0
	}

	count := 0
	for {
		i := strings.Index(haystack, needle)
		if i < 0 {
			return count
		}
		count++
		_, size := utf8.DecodeRuneInString(haystack[i:])
		haystack = haystack[i+size:]
	}
}

// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for blank checks, padding, reversal, substring
//              counting and palindrome construction, including Unicode input.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: OccurrencesOf and palindrome tests

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"string with spaces around", " hello ", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlank(tt.input); result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
			if result := IsNotBlank(tt.input); result == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v; want %v", tt.input, result, !tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"no values", nil, ""},
		{"all blank", []string{"", "  ", "\t"}, ""},
		{"first wins", []string{"a", "b"}, "a"},
		{"skips blanks", []string{" ", "", "pretty"}, "pretty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := FirstNonBlank(tt.input...); result != tt.expected {
				t.Errorf("FirstNonBlank(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		pad      rune
		expected string
	}{
		{"pad ascii", "abc", 6, '.', "abc..."},
		{"already wide", "abcdef", 3, '.', "abcdef"},
		{"exact width", "abc", 3, '.', "abc"},
		{"unicode input", "世界", 4, ' ', "世界  "},
		{"unicode pad", "a", 3, '·', "a··"},
		{"negative width", "a", -1, ' ', "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := PadRight(tt.input, tt.width, tt.pad); result != tt.expected {
				t.Errorf("PadRight(%q, %d, %q) = %q; want %q", tt.input, tt.width, tt.pad, result, tt.expected)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"single character", "a", "a"},
		{"simple string", "abc", "cba"},
		{"palindrome", "racecar", "racecar"},
		{"unicode string", "Hello, 世界", "界世 ,olleH"},
		{"emoji", "a😀b", "b😀a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Reverse(tt.input); result != tt.expected {
				t.Errorf("Reverse(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestOccurrencesOf(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack string
		expected int
	}{
		{"overlapping pair", "aa", "aaa", 2},
		{"overlapping run", "aa", "aaaa", 3},
		{"single character", "a", "banana", 3},
		{"overlapping word", "ana", "banana", 2},
		{"no match", "x", "banana", 0},
		{"needle longer than haystack", "bananas", "banana", 0},
		{"equal strings", "abc", "abc", 1},
		{"empty needle", "", "abc", 0},
		{"empty haystack", "a", "", 0},
		{"both empty", "", "", 0},
		{"unicode overlapping", "世世", "世世世", 2},
		{"case sensitive", "A", "aAa", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := OccurrencesOf(tt.needle, tt.haystack); result != tt.expected {
				t.Errorf("OccurrencesOf(%q, %q) = %d; want %d", tt.needle, tt.haystack, result, tt.expected)
			}
		})
	}
}

func TestMakeFirstHalfPalindrome(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "aba"},
		{"abc", "aba"},
		{"abcd", "abcba"},
		{"abcde", "abcba"},
		{"日本語", "日本日"},
	}

	for _, tt := range tests {
		result := MakeFirstHalfPalindrome(tt.input)
		if result != tt.expected {
			t.Errorf("MakeFirstHalfPalindrome(%q) = %q; want %q", tt.input, result, tt.expected)
		}
		if !IsPalindrome(result) {
			t.Errorf("MakeFirstHalfPalindrome(%q) = %q is not a palindrome", tt.input, result)
		}
	}
}

func TestMakeSecondHalfPalindrome(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "a"},
		{"ab", "b"},
		{"abc", "cbc"},
		{"abcd", "dcd"},
		{"abcde", "edcde"},
		{"日本語", "語本語"},
	}

	for _, tt := range tests {
		result := MakeSecondHalfPalindrome(tt.input)
		if result != tt.expected {
			t.Errorf("MakeSecondHalfPalindrome(%q) = %q; want %q", tt.input, result, tt.expected)
		}
		if !IsPalindrome(result) {
			t.Errorf("MakeSecondHalfPalindrome(%q) = %q is not a palindrome", tt.input, result)
		}
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"a", true},
		{"aa", true},
		{"ab", false},
		{"racecar", true},
		{"Racecar", false},
		{"世a世", true},
		{"世a界", false},
	}

	for _, tt := range tests {
		if result := IsPalindrome(tt.input); result != tt.expected {
			t.Errorf("IsPalindrome(%q) = %v; want %v", tt.input, result, tt.expected)
		}
	}
}

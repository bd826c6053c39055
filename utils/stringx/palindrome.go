// File: palindrome.go
// Title: Palindrome Construction
// Description: Builds palindromes from the first or second half of a string
//              and checks whether a string reads the same in both directions.
//              All functions work on runes, not bytes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package stringx

// MakeFirstHalfPalindrome keeps the first half of s, including the middle rune
// of an odd-length string, and mirrors it around its last rune:
//
//	MakeFirstHalfPalindrome("abcd")  // "abcba"
//	MakeFirstHalfPalindrome("abcde") // "abcba"
func MakeFirstHalfPalindrome(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	half := runes[:len(runes)/2+1]
	out := make([]rune, 0, 2*len(half)-1)
	out = append(out, half...)
	for i := len(half) - 2; i >= 0; i-- {
		out = append(out, half[i])
	}
	return string(out)
}

// MakeSecondHalfPalindrome keeps the second half of s, including the middle
// rune of an odd-length string, and mirrors it around its first rune:
//
//	MakeSecondHalfPalindrome("abcd")  // "dcd"
//	MakeSecondHalfPalindrome("abcde") // "edcde"
func MakeSecondHalfPalindrome(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	half := runes[len(runes)/2:]
	out := make([]rune, 0, 2*len(half)-1)
	for i := len(half) - 1; i > 0; i-- {
		out = append(out, half[i])
	}
	out = append(out, half...)
	return string(out)
}

// IsPalindrome reports whether s reads the same forwards and backwards.
// The empty string is a palindrome.
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides Unicode-safe string helpers for plus:
//              substring counting, reversal and palindrome construction, plus
//              the blank checks and padding used by the command line front end.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation with core string utilities
// - 2026-10-16 v0.2.0: Palindrome construction and overlapping counts

// Package stringx provides string helpers that extend the strings package.
//
// Every function works on runes rather than bytes, so multi-byte UTF-8 input
// is never split in the middle of a character.
//
// # Counting
//
// OccurrencesOf counts overlapping matches. After a match the scan moves on by
// one rune, not by the length of the needle:
//
//	stringx.OccurrencesOf("aa", "aaa")     // 2
//	stringx.OccurrencesOf("ana", "banana") // 2
//
// # Palindromes
//
// MakeFirstHalfPalindrome keeps the first half of the input, middle rune
// included, and mirrors it. MakeSecondHalfPalindrome does the same with the
// second half:
//
//	stringx.MakeFirstHalfPalindrome("abcd")  // "abcba"
//	stringx.MakeSecondHalfPalindrome("abcd") // "dcd"
//
// Both always return a palindrome, which IsPalindrome confirms.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package stringx

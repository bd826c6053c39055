// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16

package stringx_test

import (
	"fmt"

	mdwstringx "github.com/msto63/plus/utils/stringx"
)

func ExampleReverse() {
	fmt.Println(mdwstringx.Reverse("abc"))
	fmt.Println(mdwstringx.Reverse("Hello, 世界"))
	// Output:
	// cba
	// 界世 ,olleH
}

func ExampleOccurrencesOf() {
	fmt.Println(mdwstringx.OccurrencesOf("aa", "aaa"))
	fmt.Println(mdwstringx.OccurrencesOf("ana", "banana"))
	// Output:
	// 2
	// 2
}

func ExampleMakeFirstHalfPalindrome() {
	fmt.Println(mdwstringx.MakeFirstHalfPalindrome("abcd"))
	fmt.Println(mdwstringx.MakeFirstHalfPalindrome("abcde"))
	// Output:
	// abcba
	// abcba
}

func ExampleMakeSecondHalfPalindrome() {
	fmt.Println(mdwstringx.MakeSecondHalfPalindrome("abcd"))
	fmt.Println(mdwstringx.MakeSecondHalfPalindrome("abcde"))
	// Output:
	// dcd
	// edcde
}

func ExampleIsPalindrome() {
	fmt.Println(mdwstringx.IsPalindrome("racecar"))
	fmt.Println(mdwstringx.IsPalindrome("plus"))
	// Output:
	// true
	// false
}

func ExampleFirstNonBlank() {
	flag := ""
	fromConfig := "  "
	fmt.Println(mdwstringx.FirstNonBlank(flag, fromConfig, "plain"))
	// Output:
	// plain
}

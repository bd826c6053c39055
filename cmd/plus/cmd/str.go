package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/plus/utils/stringx"
)

func newStrCmd(a *app) *cobra.Command {
	strCmd := &cobra.Command{
		Use:   "str",
		Short: "String helpers",
	}

	transforms := []struct {
		use   string
		short string
		label string
		apply func(string) string
	}{
		{"reverse", "Reverse a string", "reversed", stringx.Reverse},
		{"first-palindrome", "Palindrome built by mirroring the first half", "palindrome", stringx.MakeFirstHalfPalindrome},
		{"second-palindrome", "Palindrome built by mirroring the second half", "palindrome", stringx.MakeSecondHalfPalindrome},
	}
	for _, t := range transforms {
		strCmd.AddCommand(&cobra.Command{
			Use:   t.use + " <text>",
			Short: t.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.printer.value(t.label, t.apply(args[0]))
				return nil
			},
		})
	}

	strCmd.AddCommand(
		&cobra.Command{
			Use:   "is-palindrome <text>",
			Short: "Whether text reads the same in both directions",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.printer.boolValue("palindrome", stringx.IsPalindrome(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "count <needle> <haystack>",
			Short: "Number of possibly overlapping occurrences of needle in haystack",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a.printer.intValue("occurrences", stringx.OccurrencesOf(args[0], args[1]))
				return nil
			},
		},
	)

	return strCmd
}

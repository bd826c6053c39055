package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/plus/core/log"
	"github.com/msto63/plus/utils/mathx"
)

func newStatsCmd(a *app) *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Statistics over a list of numbers",
	}

	reducers := []struct {
		use    string
		short  string
		label  string
		reduce func(values ...float64) float64
	}{
		{"max", "Largest value", "max", mathx.Max[float64]},
		{"min", "Smallest value", "min", mathx.Min[float64]},
		{"sum", "Sum of the values", "sum", mathx.Sum[float64]},
		{"avg", "Arithmetic mean of the values", "average", mathx.Average[float64]},
	}
	for _, r := range reducers {
		statsCmd.AddCommand(&cobra.Command{
			Use:   r.use + " <values...>",
			Short: r.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := parseFloats(commandName(cmd), args)
				if err != nil {
					return err
				}
				a.logger.Debug("parsed values", log.Int("count", len(values)))

				a.printer.floatValue(r.label, r.reduce(values...))
				return nil
			},
		})
	}

	statsCmd.AddCommand(&cobra.Command{
		Use:   "mode <values...>",
		Short: "Most frequent values, in order of first occurrence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(commandName(cmd), args)
			if err != nil {
				return err
			}
			a.printer.floatList("mode", mathx.Mode(values...))
			return nil
		},
	})

	return statsCmd
}

package cmd

import (
	"fmt"
	"image"
	"math"

	"github.com/spf13/cobra"

	"github.com/msto63/plus/core/log"
	"github.com/msto63/plus/utils/mathx"
)

func newMathCmd(a *app) *cobra.Command {
	mathCmd := &cobra.Command{
		Use:   "math",
		Short: "Numeric helpers",
	}

	var degrees bool
	angleCmd := &cobra.Command{
		Use:   "angle <x1> <y1> <x2> <y2>",
		Short: "Angle of the line from (x1, y1) to (x2, y2)",
		Long: `Angle of the line from (x1, y1) to (x2, y2), measured from the
positive x axis. The result is in radians in (-π, π] unless --degrees is set.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(commandName(cmd), args)
			if err != nil {
				return err
			}
			angle := mathx.AngleBetween(v[0], v[1], v[2], v[3])
			if degrees {
				angle = angle * 180 / math.Pi
			}
			a.printer.floatValue("angle", angle)
			return nil
		},
	}
	angleCmd.Flags().BoolVar(&degrees, "degrees", false, "report the angle in degrees")

	mathCmd.AddCommand(
		&cobra.Command{
			Use:   "lerp <a> <b> <t>",
			Short: "Linear interpolation between a and b",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(commandName(cmd), args)
				if err != nil {
					return err
				}
				a.printer.floatValue("lerp", mathx.LinearInterpolation(v[0], v[1], v[2]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "factorial <n>",
			Short: "Factorial of a non-negative integer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := parseFloat(commandName(cmd), args[0])
				if err != nil {
					return err
				}
				result, err := mathx.Factorial(n)
				if err != nil {
					return err
				}
				if math.IsInf(result, 1) {
					a.logger.Warn("factorial overflows float64", log.Float64("n", n))
				}
				a.printer.floatValue("factorial", result)
				return nil
			},
		},
		&cobra.Command{
			Use:   "nthrt <a> <n>",
			Short: "n-th root of a",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(commandName(cmd), args)
				if err != nil {
					return err
				}
				a.printer.floatValue("root", mathx.Nthrt(v[0], v[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "inrange <value> <min> <max>",
			Short: "Whether min <= value <= max",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseFloats(commandName(cmd), args)
				if err != nil {
					return err
				}
				inRange, err := mathx.InRange(v[0], v[1], v[2])
				if err != nil {
					return err
				}
				a.printer.boolValue("in range", inRange)
				return nil
			},
		},
		angleCmd,
		&cobra.Command{
			Use:   "mirror <px> <py> <x0> <y0> <x1> <y1>",
			Short: "Reflect point (px, py) across the line through (x0, y0) and (x1, y1)",
			Args:  cobra.ExactArgs(6),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := parseInts(commandName(cmd), args)
				if err != nil {
					return err
				}
				p := mathx.Mirror(image.Pt(v[0], v[1]), v[2], v[3], v[4], v[5])
				a.printer.value("mirrored", fmt.Sprintf("%d %d", p.X, p.Y))
				return nil
			},
		},
		&cobra.Command{
			Use:   "constants",
			Short: "Print the mathematical constants",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.printer.table("constants", [][2]string{
					{"tau", a.printer.formatFloat(mathx.Tau)},
					{"phi", a.printer.formatFloat(mathx.Phi)},
					{"omega", a.printer.formatFloat(mathx.Omega)},
					{"root_two", a.printer.formatFloat(mathx.RootTwo)},
				})
				return nil
			},
		},
	)

	return mathCmd
}

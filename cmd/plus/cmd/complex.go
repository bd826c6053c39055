package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/plus/core/log"
	"github.com/msto63/plus/utils/mathx"
)

func newComplexCmd(a *app) *cobra.Command {
	complexCmd := &cobra.Command{
		Use:   "complex",
		Short: "Complex number arithmetic",
		Long: `Complex number arithmetic.

Operands are written as "a + bi", for example "3 - 2i", "2i" or "-1.5".
Quote operands that contain spaces.`,
	}

	binary := []struct {
		use   string
		short string
		op    func(x, y mathx.Complex) mathx.Complex
	}{
		{"add", "Add two complex numbers", mathx.Complex.Add},
		{"sub", "Subtract the second complex number from the first", mathx.Complex.Subtract},
		{"mul", "Multiply two complex numbers", mathx.Complex.Multiply},
		{"div", "Divide the first complex number by the second", mathx.Complex.Divide},
	}
	for _, b := range binary {
		complexCmd.AddCommand(&cobra.Command{
			Use:   b.use + " <c1> <c2>",
			Short: b.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := mathx.ParseComplex(args[0])
				if err != nil {
					return err
				}
				y, err := mathx.ParseComplex(args[1])
				if err != nil {
					return err
				}
				a.logger.Debug("parsed operands", log.Fields{"c1": x.String(), "c2": y.String()})

				a.printer.complexValue("result", b.op(x, y))
				return nil
			},
		})
	}

	complexCmd.AddCommand(
		&cobra.Command{
			Use:   "conj <c>",
			Short: "Complex conjugate",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := mathx.ParseComplex(args[0])
				if err != nil {
					return err
				}
				a.printer.complexValue("conjugate", c.Conjugate())
				return nil
			},
		},
		&cobra.Command{
			Use:   "abs <c>",
			Short: "Modulus of a complex number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := mathx.ParseComplex(args[0])
				if err != nil {
					return err
				}
				a.printer.floatValue("modulus", c.Abs())
				return nil
			},
		},
		&cobra.Command{
			Use:   "sqrt <x>",
			Short: "Square root of a real number, imaginary for negative input",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := parseFloat(commandName(cmd), args[0])
				if err != nil {
					return err
				}
				a.printer.complexValue("sqrt", mathx.Sqrt(x))
				return nil
			},
		},
	)

	return complexCmd
}

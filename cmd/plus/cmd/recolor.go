package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/plus/core/log"
	"github.com/msto63/plus/utils/imagex"
)

func newRecolorCmd(a *app) *cobra.Command {
	var colorSpec string

	recolorCmd := &cobra.Command{
		Use:   "recolor <input> <output.png>",
		Short: "XOR the colour channels of an image with a colour",
		Long: `Recolour an image by XOR-ing the red, green and blue channels of every
non-transparent pixel with --color. Transparent pixels and alpha are kept.
Applying the same colour twice restores the original image.

The input may be PNG, JPEG or GIF; the output is always PNG.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]

			target, err := imagex.ParseHexColor(colorSpec)
			if err != nil {
				return err
			}

			timer := a.logger.StartTimer("recolor").
				WithField("input", input).
				WithField("output", output)

			src, format, err := imagex.DecodeFile(input)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			bounds := src.Bounds()
			a.logger.Debug("decoded image", log.Fields{
				"format": format,
				"width":  bounds.Dx(),
				"height": bounds.Dy(),
			})

			if err := imagex.EncodePNG(output, imagex.Recolor(src, target)); err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()

			a.printer.value("written", fmt.Sprintf("%s (%dx%d)", output, bounds.Dx(), bounds.Dy()))
			return nil
		},
	}
	recolorCmd.Flags().StringVarP(&colorSpec, "color", "c", "", "target colour as RRGGBB or #RRGGBB")
	_ = recolorCmd.MarkFlagRequired("color")

	return recolorCmd
}

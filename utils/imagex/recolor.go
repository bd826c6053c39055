// File: recolor.go
// Title: XOR Recoloring
// Description: Recolor, hex colour parsing and the file helpers used to read
//              and write recolored images.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package imagex

import (
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/msto63/plus/core/errors"
)

// Recolor returns a copy of src in which the RGB channels of every pixel
// with non-zero alpha are XORed with the RGB channels of target. Alpha is
// preserved and fully transparent pixels stay transparent. The alpha of
// target is ignored. src is not modified.
func Recolor(src image.Image, target color.Color) *image.NRGBA {
	t := color.NRGBAModel.Convert(target).(color.NRGBA)
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: c.R ^ t.R,
				G: c.G ^ t.G,
				B: c.B ^ t.B,
				A: c.A,
			})
		}
	}
	return dst
}

// ParseHexColor parses "RRGGBB" or "#RRGGBB" into an opaque colour
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, errors.ImagexInvalidColor(s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, errors.ImagexInvalidColor(s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// DecodeFile reads a PNG, JPEG or GIF image and reports its format name
func DecodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.ImagexDecodeFailed(path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", errors.ImagexDecodeFailed(path, err)
	}
	return img, format, nil
}

// EncodePNG writes img to path as PNG, replacing any existing file
func EncodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ImagexEncodeFailed(path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.ImagexEncodeFailed(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.ImagexEncodeFailed(path, err)
	}
	return nil
}

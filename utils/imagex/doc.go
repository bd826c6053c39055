// File: doc.go
// Title: Package Documentation for imagex
// Description: Package imagex recolors images by XOR-ing their colour
//              channels with a target colour.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

// Package imagex recolors images.
//
// Recolor XORs the red, green and blue channels of every visible pixel with
// the corresponding channels of a target colour. Alpha is never touched, so
// transparent regions and soft edges keep their shape. Applying Recolor twice
// with the same colour restores the original pixels.
//
//	src, _, err := imagex.DecodeFile("sprite.png")
//	if err != nil {
//		return err
//	}
//	target, err := imagex.ParseHexColor("#ff8000")
//	if err != nil {
//		return err
//	}
//	return imagex.EncodePNG("sprite-orange.png", imagex.Recolor(src, target))
//
// PNG, JPEG and GIF inputs are supported; output is always PNG so the alpha
// channel survives.
package imagex

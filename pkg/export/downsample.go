package export

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a supersampled frame down to width×height with
// Catmull-Rom filtering, which smooths the rasterizer's hard edges. Frames
// already at or below the target size are returned unchanged.
func Downsample(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if width <= 0 || height <= 0 || (b.Dx() <= width && b.Dy() <= height) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

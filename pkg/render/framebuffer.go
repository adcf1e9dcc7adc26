// Package render is an immediate-mode software 3D renderer. A Context
// transforms, clips, and rasterizes flat-colored triangles into
// caller-owned pixel and depth buffers, on a float32 or Q16.16 fixed-point
// backend.
package render

import (
	"image"
	"image/color"
	"math"
)

// Framebuffer is a view over a packed 0xRRGGBB pixel buffer. It does not
// copy the pixels; drawing through a Framebuffer writes straight into the
// renderer's buffer.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32 // Row-major packed RGB
}

// NewFramebuffer allocates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, max(BufferSize(width, height, 1), 0)),
	}
}

// FramebufferOf returns a view over a renderer's pixel buffer.
func FramebufferOf(r Renderer) *Framebuffer {
	return &Framebuffer{
		Width:  r.Width(),
		Height: r.Height(),
		Pixels: r.Pixels(),
	}
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c uint32) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y). Out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c uint32) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the packed color at (x, y), or 0 out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) uint32 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// The segment is first clipped to the framebuffer, so the work is bounded
// by the framebuffer size whatever the endpoints.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c uint32) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, fb.Width, fb.Height)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine clips a segment to [0, w) × [0, h) with the Liang–Barsky
// method. Segments already inside are returned unchanged.
func clipLine(x0, y0, x1, y1, w, h int) (int, int, int, int, bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	inside := func(x, y int) bool { return x >= 0 && x < w && y >= 0 && y < h }
	if inside(x0, y0) && inside(x1, y1) {
		return x0, y0, x1, y1, true
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0},               // left
		{dx, float64(w-1) - fx0}, // right
		{-dy, fy0},               // top
		{dy, float64(h-1) - fy0}, // bottom
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}

	snap := func(v float64, n int) int {
		return min(max(int(math.Round(v)), 0), n-1)
	}
	return snap(fx0+t0*dx, w), snap(fy0+t0*dy, h),
		snap(fx0+t1*dx, w), snap(fy0+t1*dy, h), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, fb.Width, fb.Height) }

// At implements image.Image. Every pixel is opaque.
func (fb *Framebuffer) At(x, y int) color.Color { return Unpack(fb.GetPixel(x, y)) }

// ToImage copies the framebuffer into a new image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := 0; y < fb.Height; y++ {
		row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
		off := img.PixOffset(0, y)
		for _, p := range row {
			img.Pix[off+0] = uint8(p >> 16)
			img.Pix[off+1] = uint8(p >> 8)
			img.Pix[off+2] = uint8(p)
			img.Pix[off+3] = 0xFF
			off += 4
		}
	}
	return img
}

// RGB packs 8-bit channels into 0xRRGGBB.
func RGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Pack converts any color to 0xRRGGBB, dropping alpha.
func Pack(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Unpack expands 0xRRGGBB to an opaque color.RGBA.
func Unpack(c uint32) color.RGBA {
	return color.RGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xFF}
}

// Colors for convenience
const (
	ColorBlack   uint32 = 0x000000
	ColorWhite   uint32 = 0xFFFFFF
	ColorRed     uint32 = 0xFF0000
	ColorGreen   uint32 = 0x00FF00
	ColorBlue    uint32 = 0x0000FF
	ColorYellow  uint32 = 0xFFFF00
	ColorCyan    uint32 = 0x00FFFF
	ColorMagenta uint32 = 0xFF00FF
	ColorGray    uint32 = 0x808080
	ColorSky     uint32 = 0x87CEEB
	ColorGrass   uint32 = 0x228B22
	ColorOrange  uint32 = 0xFF8C00
)

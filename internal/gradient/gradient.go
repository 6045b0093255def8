// Package gradient synthesizes the raster backgrounds of the picker widgets.
//
// Images have a fixed resolution (1x256 for the hue strip, 256x256 for the
// saturation/value plane). Stretching them to the on-screen widget size is
// left to Scale, which the renderers call at draw time.
package gradient

import (
	"image"

	"hexpick/pkg/colorutil"

	xdraw "golang.org/x/image/draw"
)

const (
	// Steps is the number of samples along each gradient axis.
	Steps = 256

	last = Steps - 1
)

// HueStrip returns the 1x256 strip of fully saturated hues from top (0°)
// to bottom (360°, red again).
func HueStrip() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, Steps))
	for i := 0; i < Steps; i++ {
		hue := float64(i) / last * 360
		setPixel(img, 0, i, colorutil.FromHSV(hue, 1, 1))
	}
	return img
}

// Plane returns the 256x256 saturation/value plane for hue. Saturation grows
// left to right; value falls top to bottom.
func Plane(hue float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Steps, Steps))
	for j := 0; j < Steps; j++ {
		v := float64(j) / last
		for i := 0; i < Steps; i++ {
			u := float64(i) / last
			setPixel(img, i, j, PlaneColor(hue, u, v))
		}
	}
	return img
}

// PlaneColor is the color shown at normalized plane coordinate (u, v).
// The top-left corner is full value, zero saturation.
func PlaneColor(hue, u, v float64) colorutil.Color {
	return colorutil.FromHSV(hue, u, 1-v)
}

func setPixel(img *image.RGBA, x, y int, c colorutil.Color) {
	rgba := c.RGBA8()
	idx := img.PixOffset(x, y)
	img.Pix[idx+0] = rgba[0]
	img.Pix[idx+1] = rgba[1]
	img.Pix[idx+2] = rgba[2]
	img.Pix[idx+3] = rgba[3]
}

// Scale stretches src to w x h with bilinear filtering.
// A non-positive dimension yields a 1x1 image.
func Scale(src image.Image, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src == nil {
		return dst
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// PlaneCache keeps the plane raster for the most recent hue.
// Value and saturation changes never invalidate it.
type PlaneCache struct {
	hue         float64
	img         *image.RGBA
	generations int
}

// NewPlaneCache creates a cache primed for hue.
func NewPlaneCache(hue float64) *PlaneCache {
	pc := &PlaneCache{}
	pc.Image(hue)
	return pc
}

// Image returns the plane for hue, synthesizing it only when hue changed.
func (pc *PlaneCache) Image(hue float64) *image.RGBA {
	hue = colorutil.NormalizeHue(hue)
	if pc.img != nil && pc.hue == hue {
		return pc.img
	}
	pc.hue = hue
	pc.img = Plane(hue)
	pc.generations++
	return pc.img
}

// Hue returns the hue of the cached plane.
func (pc *PlaneCache) Hue() float64 {
	return pc.hue
}

// Generations returns how many times the plane has been synthesized.
func (pc *PlaneCache) Generations() int {
	return pc.generations
}

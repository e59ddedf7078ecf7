package silhouette

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate returns img rotated counter-clockwise on screen by degrees. The
// result is enlarged to the bounding box of the rotated source, with the
// source centre mapped onto the result centre.
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	sr := img.Bounds()
	w, h := float64(sr.Dx()), float64(sr.Dy())

	if math.Mod(degrees, 360) == 0 {
		dst := image.NewNRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
		draw.Draw(dst, dst.Bounds(), img, sr.Min, draw.Src)
		return dst
	}

	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	dw := ceil(math.Abs(w*cos) + math.Abs(h*sin))
	dh := ceil(math.Abs(w*sin) + math.Abs(h*cos))
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))

	// maps source pixel space onto destination pixel space
	sx, sy := float64(sr.Min.X)+w/2, float64(sr.Min.Y)+h/2
	dx, dy := float64(dw)/2, float64(dh)/2
	s2d := f64.Aff3{
		cos, sin, dx - (cos*sx + sin*sy),
		-sin, cos, dy - (-sin*sx + cos*sy),
	}
	draw.NearestNeighbor.Transform(dst, s2d, img, sr, draw.Src, nil)
	return dst
}

// ceil rounds up while ignoring floating point noise around whole numbers.
func ceil(v float64) int {
	return int(math.Ceil(v - 1e-6))
}

package silhouette

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Silhouette pairs a rotated sprite image with its opacity mask.
type Silhouette struct {
	Image *image.NRGBA
	Mask  *Mask
}

// Size returns the silhouette's pixel dimensions
func (s *Silhouette) Size() (int, int) {
	return s.Mask.Width(), s.Mask.Height()
}

// RectAt returns the bounding rectangle of the silhouette centred on (cx, cy)
func (s *Silhouette) RectAt(cx, cy float64) image.Rectangle {
	w, h := s.Size()
	return CenteredRect(cx, cy, w, h)
}

// Outline samples the silhouette's boundary
func (s *Silhouette) Outline(step int) []image.Point {
	return s.Mask.Outline(step)
}

// CenteredRect returns a w×h rectangle whose centre is at (cx, cy).
func CenteredRect(cx, cy float64, w, h int) image.Rectangle {
	x := int(math.Floor(cx)) - w/2
	y := int(math.Floor(cy)) - h/2
	return image.Rect(x, y, x+w, y+h)
}

// Sprite produces silhouettes of one source image at arbitrary rotations.
// Rotations are quantised to whole degrees and each bucket is built once.
type Sprite struct {
	base      *image.NRGBA
	threshold uint8
	cache     map[int]*Silhouette
}

// NewSprite creates a sprite from img using the given opacity threshold
func NewSprite(img image.Image, threshold uint8) *Sprite {
	base := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(base, base.Bounds(), img, img.Bounds().Min, draw.Src)
	return &Sprite{
		base:      base,
		threshold: threshold,
		cache:     make(map[int]*Silhouette),
	}
}

// Base returns the unrotated source image
func (s *Sprite) Base() *image.NRGBA {
	return s.base
}

// At returns the silhouette for the given rotation in degrees
func (s *Sprite) At(degrees float64) *Silhouette {
	bucket := Bucket(degrees)
	if sil, ok := s.cache[bucket]; ok {
		return sil
	}
	img := Rotate(s.base, float64(bucket))
	sil := &Silhouette{
		Image: img,
		Mask:  FromImage(img, s.threshold),
	}
	s.cache[bucket] = sil
	return sil
}

// Cached returns the number of rotation buckets built so far
func (s *Sprite) Cached() int {
	return len(s.cache)
}

// Bucket quantises an angle in degrees to a whole degree in [0, 360).
func Bucket(degrees float64) int {
	b := int(math.Round(math.Mod(degrees, 360)))
	if b < 0 {
		b += 360
	}
	return b % 360
}

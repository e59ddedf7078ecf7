package silhouette

import (
	"image"
	"math/bits"
)

// DefaultThreshold is the alpha a pixel must exceed to count as solid.
const DefaultThreshold uint8 = 50

const wordBits = 64

// Mask is a binary opacity bitmap. Bit k of word i in a row is pixel x = 64*i + k.
// Padding bits past the width are always zero.
type Mask struct {
	width  int
	height int
	stride int // words per row
	words  []uint64
}

// NewMask creates an empty mask of the given size
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + wordBits - 1) / wordBits
	return &Mask{
		width:  width,
		height: height,
		stride: stride,
		words:  make([]uint64, stride*height),
	}
}

// FromImage builds a mask from the alpha channel of img. A pixel is solid
// only when its alpha is strictly greater than threshold.
func FromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < m.height; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
			off := (b.Min.X - src.Rect.Min.X) * 4
			for x := 0; x < m.width; x++ {
				if row[off+x*4+3] > threshold {
					m.Set(x, y)
				}
			}
		}
	case *image.RGBA:
		for y := 0; y < m.height; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride:]
			off := (b.Min.X - src.Rect.Min.X) * 4
			for x := 0; x < m.width; x++ {
				if row[off+x*4+3] > threshold {
					m.Set(x, y)
				}
			}
		}
	default:
		for y := 0; y < m.height; y++ {
			for x := 0; x < m.width; x++ {
				_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				if uint8(a>>8) > threshold {
					m.Set(x, y)
				}
			}
		}
	}
	return m
}

// Width returns the mask width in pixels
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask size as a rectangle anchored at the origin
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Get reports whether (x, y) is solid. Out of range pixels are empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.words[y*m.stride+x/wordBits]&(1<<uint(x%wordBits)) != 0
}

// Set marks (x, y) as solid. Out of range pixels are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.words[y*m.stride+x/wordBits] |= 1 << uint(x%wordBits)
}

// Count returns the number of solid pixels
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (m *Mask) row(y int) []uint64 {
	return m.words[y*m.stride : (y+1)*m.stride]
}

// Overlap reports whether any solid pixel (x, y) of m coincides with a solid
// pixel (x+offset.X, y+offset.Y) of other.
func (m *Mask) Overlap(other *Mask, offset image.Point) bool {
	if m == nil || other == nil {
		return false
	}

	y0 := max(0, -offset.Y)
	y1 := min(m.height, other.height-offset.Y)
	if y0 >= y1 {
		return false
	}
	if offset.X >= other.width || offset.X+m.width <= 0 {
		return false
	}

	for y := y0; y < y1; y++ {
		a := m.row(y)
		b := other.row(y + offset.Y)
		for i, wa := range a {
			if wa == 0 {
				continue
			}
			// bit 0 of wa lands on pixel s of the other row
			s := i*wordBits + offset.X
			j := floorDiv(s, wordBits)
			r := uint(s - j*wordBits)

			if j >= 0 && j < len(b) && (wa<<r)&b[j] != 0 {
				return true
			}
			if r != 0 && j+1 >= 0 && j+1 < len(b) && (wa>>(wordBits-r))&b[j+1] != 0 {
				return true
			}
		}
	}
	return false
}

// Overlaps tests two silhouettes placed at the given bounding rectangles.
// The relative offset is taken from the rectangles' top-left corners.
func Overlaps(a *Mask, ra image.Rectangle, b *Mask, rb image.Rectangle) bool {
	return a.Overlap(b, ra.Min.Sub(rb.Min))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

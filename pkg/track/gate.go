package track

import (
	"image"

	"github.com/golangdaddy/gatedrive/pkg/silhouette"
)

// Gate is a placed checkpoint. Gates are never mutated; the sequencer
// builds a new one each time it advances.
type Gate struct {
	Index      int
	Placement  Placement
	Silhouette *silhouette.Silhouette
	Rect       image.Rectangle
}

// NewGate places the sprite at p. A nil sprite yields a gate nothing can touch.
func NewGate(index int, p Placement, sprite *silhouette.Sprite) *Gate {
	gate := &Gate{
		Index:     index,
		Placement: p,
	}
	if sprite != nil {
		gate.Silhouette = sprite.At(p.Rotation)
		gate.Rect = gate.Silhouette.RectAt(p.X, p.Y)
	}
	return gate
}

// Touches reports whether a body at rect overlaps the gate
func (g *Gate) Touches(body *silhouette.Silhouette, rect image.Rectangle) bool {
	if g.Silhouette == nil || body == nil {
		return false
	}
	return silhouette.Overlaps(body.Mask, rect, g.Silhouette.Mask, g.Rect)
}

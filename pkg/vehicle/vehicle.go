package vehicle

import (
	"image"

	"github.com/golangdaddy/gatedrive/pkg/silhouette"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vehicle is anything the session can drive and collide each frame.
type Vehicle interface {
	Position() r2.Vec
	Heading() float64
	Update(dt float64)
	Silhouette() *silhouette.Silhouette
	Rect() image.Rectangle
}

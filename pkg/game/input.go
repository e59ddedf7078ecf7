package game

import (
	"github.com/golangdaddy/gatedrive/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
)

// readKeys snapshots the driving keys for this frame
func readKeys() vehicle.KeyState {
	return vehicle.KeyState{
		Accelerate: ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Brake:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Handbrake:  ebiten.IsKeyPressed(ebiten.KeySpace),
		Left:       ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:      ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

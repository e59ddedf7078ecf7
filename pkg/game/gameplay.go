package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	outlineColor  = color.RGBA{255, 0, 0, 255}
	hudBackground = color.RGBA{20, 20, 30, 200}
	hudBorder     = color.RGBA{100, 100, 120, 255}
)

// Draw renders the track, the active gate, the car and the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	screen.DrawImage(g.trackImage, &ebiten.DrawImageOptions{})

	gate := g.session.Gate()
	drawRotated(screen, g.gateImage, gate.Placement.X, gate.Placement.Y, gate.Placement.Rotation)

	car := g.session.Car()
	pos := car.Position()
	drawRotated(screen, g.carImage, pos.X, pos.Y, car.Heading())

	if g.debug {
		g.drawOutline(screen)
	}

	g.drawHUD(screen)
}

// drawRotated draws img centred on (x, y), turned counter-clockwise by degrees
func drawRotated(screen, img *ebiten.Image, x, y, degrees float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	// GeoM rotates clockwise on screen
	op.GeoM.Rotate(-degrees * math.Pi / 180)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

// drawOutline marks the car's collision silhouette with small squares
func (g *Game) drawOutline(screen *ebiten.Image) {
	car := g.session.Car()
	body := car.Silhouette()
	if body == nil {
		return
	}
	origin := car.Rect().Min
	for _, p := range body.Outline(g.cfg.Collision.OutlineStep) {
		vector.DrawFilledRect(screen, float32(origin.X+p.X), float32(origin.Y+p.Y), 2, 2, outlineColor, false)
	}
}

// drawHUD draws the gate counter, speed and boundary warning
func (g *Game) drawHUD(screen *ebiten.Image) {
	x, y := float32(20), float32(20)
	width, height := float32(200), float32(90)

	vector.DrawFilledRect(screen, x, y, width, height, hudBackground, false)
	vector.StrokeRect(screen, x, y, width, height, 2, hudBorder, false)

	gateText := fmt.Sprintf("GATE %d/%d", g.frame.ActiveGate+1, g.session.Gates())
	g.drawText(screen, gateText, float64(x)+12, float64(y)+10, 2, color.RGBA{255, 200, 50, 255})

	speed := g.session.Car().Speed()
	speedText := fmt.Sprintf("SPEED %.1f", speed)
	g.drawText(screen, speedText, float64(x)+12, float64(y)+48, 1.5, color.RGBA{200, 200, 200, 255})

	if g.frame.Colliding {
		warning := "BOUNDARY"
		scale := 3.0
		w := text.Advance(warning, g.face) * scale
		cx := float64(screen.Bounds().Dx())/2 - w/2
		g.drawText(screen, warning, cx, 30, scale, color.RGBA{255, 60, 60, 255})
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), int(x), int(y+height)+8)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

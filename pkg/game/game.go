package game

import (
	"github.com/golangdaddy/gatedrive/pkg/assets"
	"github.com/golangdaddy/gatedrive/pkg/config"
	"github.com/golangdaddy/gatedrive/pkg/session"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
)

// Game implements the ebiten.Game interface and drives one session
type Game struct {
	cfg     *config.Config
	log     zerolog.Logger
	session *session.Session
	clock   *session.Clock

	carImage   *ebiten.Image
	trackImage *ebiten.Image
	gateImage  *ebiten.Image
	face       text.Face

	debug bool
	frame session.Frame
}

// NewGame creates a new game instance
func NewGame(cfg *config.Config, sprites *assets.Sprites, log zerolog.Logger) (*Game, error) {
	s, err := session.New(cfg, sprites, log)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:        cfg,
		log:        log,
		session:    s,
		clock:      session.NewClock(nil),
		carImage:   ebiten.NewImageFromImage(sprites.Car),
		trackImage: ebiten.NewImageFromImage(sprites.Track),
		gateImage:  ebiten.NewImageFromImage(sprites.Gate),
		face:       text.NewGoXFace(bitmapfont.Face),
		debug:      cfg.Debug.Outline,
	}, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.log.Info().Msg("quit requested")
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.log.Debug().Bool("outline", g.debug).Msg("debug overlay toggled")
	}

	dt := g.clock.Tick()
	g.frame = g.session.Step(readKeys(), dt)
	return nil
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

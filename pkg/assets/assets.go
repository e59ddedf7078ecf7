package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/golangdaddy/gatedrive/pkg/config"
	"golang.org/x/image/draw"
)

// Sprites holds the three images a session needs, already scaled
type Sprites struct {
	Car   *image.NRGBA
	Track *image.NRGBA
	Gate  *image.NRGBA
}

// Load reads and scales the car, track and gate images. Any failure is
// fatal for the session, so the first error is returned as is.
func Load(cfg config.AssetsConfig) (*Sprites, error) {
	car, err := LoadImage(cfg.Path(cfg.Car), cfg.CarSize.Width, cfg.CarSize.Height)
	if err != nil {
		return nil, fmt.Errorf("car sprite: %w", err)
	}
	trackImg, err := LoadImage(cfg.Path(cfg.Track), cfg.TrackSize.Width, cfg.TrackSize.Height)
	if err != nil {
		return nil, fmt.Errorf("track image: %w", err)
	}
	gate, err := LoadImage(cfg.Path(cfg.Gate), cfg.GateSize.Width, cfg.GateSize.Height)
	if err != nil {
		return nil, fmt.Errorf("gate sprite: %w", err)
	}
	return &Sprites{Car: car, Track: trackImg, Gate: gate}, nil
}

// LoadImage decodes a PNG or JPEG file and scales it to width×height
func LoadImage(path string, width, height int) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return Scale(src, width, height), nil
}

// Scale resizes src to width×height with bilinear filtering
func Scale(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

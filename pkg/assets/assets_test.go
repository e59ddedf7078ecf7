package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/gatedrive/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{10, 20, 30, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadImage_Scales(t *testing.T) {
	path := filepath.Join(t.TempDir(), "car.png")
	writePNG(t, path, 80, 40)

	img, err := LoadImage(path, 40, 20)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	assert.Equal(t, uint8(255), img.NRGBAAt(20, 10).A)
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadImage(filepath.Join(dir, "missing.png"), 1, 1)
	assert.ErrorContains(t, err, "failed to open image")

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0644))
	_, err = LoadImage(bad, 1, 1)
	assert.ErrorContains(t, err, "failed to decode")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "car.png"), 40, 20)
	writePNG(t, filepath.Join(dir, "track.png"), 170, 80)
	writePNG(t, filepath.Join(dir, "gate.png"), 15, 2)

	cfg := config.AssetsConfig{
		Dir:       dir,
		Car:       "car.png",
		Track:     "track.png",
		Gate:      "gate.png",
		CarSize:   config.Size{Width: 40, Height: 20},
		TrackSize: config.Size{Width: 340, Height: 160},
		GateSize:  config.Size{Width: 150, Height: 2},
	}

	sprites, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, 40, sprites.Car.Bounds().Dx())
	assert.Equal(t, 340, sprites.Track.Bounds().Dx())
	assert.Equal(t, 150, sprites.Gate.Bounds().Dx())

	cfg.Gate = "absent.png"
	_, err = Load(cfg)
	assert.ErrorContains(t, err, "gate sprite")
}

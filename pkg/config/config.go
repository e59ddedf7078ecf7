package config

import (
	"fmt"
	"path/filepath"

	"github.com/golangdaddy/gatedrive/pkg/track"
	"github.com/golangdaddy/gatedrive/pkg/vehicle"
	"github.com/spf13/viper"
)

// Size is a pixel size for a scaled sprite
type Size struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// WindowConfig holds the window settings
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	TPS    int    `mapstructure:"tps"`
}

// AssetsConfig names the sprite files and the size each is scaled to
type AssetsConfig struct {
	Dir       string `mapstructure:"dir"`
	Car       string `mapstructure:"car"`
	Track     string `mapstructure:"track"`
	Gate      string `mapstructure:"gate"`
	CarSize   Size   `mapstructure:"carSize"`
	TrackSize Size   `mapstructure:"trackSize"`
	GateSize  Size   `mapstructure:"gateSize"`
}

// Path resolves an asset file name against Dir
func (a AssetsConfig) Path(name string) string {
	if filepath.IsAbs(name) || a.Dir == "" {
		return name
	}
	return filepath.Join(a.Dir, name)
}

// VehicleConfig holds the starting pose and limits of the car
type VehicleConfig struct {
	StartX            float64 `mapstructure:"startX"`
	StartY            float64 `mapstructure:"startY"`
	Heading           float64 `mapstructure:"heading"`
	Length            float64 `mapstructure:"length"`
	MaxAcceleration   float64 `mapstructure:"maxAcceleration"`
	MaxSteering       float64 `mapstructure:"maxSteering"`
	MaxVelocity       float64 `mapstructure:"maxVelocity"`
	BrakeDeceleration float64 `mapstructure:"brakeDeceleration"`
	FreeDeceleration  float64 `mapstructure:"freeDeceleration"`
	YawRateMultiplier float64 `mapstructure:"yawRateMultiplier"`
}

// Specs converts the limits to vehicle specs
func (v VehicleConfig) Specs() vehicle.Specs {
	return vehicle.Specs{
		Length:            v.Length,
		MaxAcceleration:   v.MaxAcceleration,
		MaxSteering:       v.MaxSteering,
		MaxVelocity:       v.MaxVelocity,
		BrakeDeceleration: v.BrakeDeceleration,
		FreeDeceleration:  v.FreeDeceleration,
		YawRateMultiplier: v.YawRateMultiplier,
	}
}

// CollisionConfig holds the silhouette settings
type CollisionConfig struct {
	Threshold   uint8 `mapstructure:"threshold"`
	OutlineStep int   `mapstructure:"outlineStep"`
}

// TrackConfig selects the gate table. Gates, when set, wins over GatesFile;
// with neither the built-in table is used.
type TrackConfig struct {
	GatesFile string            `mapstructure:"gatesFile"`
	Gates     []track.Placement `mapstructure:"gates"`
}

// Table returns the configured gate table
func (t TrackConfig) Table() (track.Table, error) {
	if len(t.Gates) > 0 {
		return track.Table(t.Gates), nil
	}
	if t.GatesFile != "" {
		return track.LoadTable(t.GatesFile)
	}
	return track.DefaultTable(), nil
}

// DebugConfig toggles debug overlays
type DebugConfig struct {
	Outline bool `mapstructure:"outline"`
}

// Config is everything needed to start a session
type Config struct {
	LogLevel  string          `mapstructure:"logLevel"`
	Window    WindowConfig    `mapstructure:"window"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Vehicle   VehicleConfig   `mapstructure:"vehicle"`
	Collision CollisionConfig `mapstructure:"collision"`
	Track     TrackConfig     `mapstructure:"track"`
	Debug     DebugConfig     `mapstructure:"debug"`
}

// setDefaults registers the stock value of every key
func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.title", "Gate Drive")
	v.SetDefault("window.width", 1700)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.tps", 60)

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("assets.car", "car.png")
	v.SetDefault("assets.track", "tracks1.png")
	v.SetDefault("assets.gate", "gate.png")
	v.SetDefault("assets.carSize.width", 40)
	v.SetDefault("assets.carSize.height", 20)
	v.SetDefault("assets.trackSize.width", 1700)
	v.SetDefault("assets.trackSize.height", 800)
	v.SetDefault("assets.gateSize.width", 150)
	v.SetDefault("assets.gateSize.height", 2)

	specs := vehicle.DefaultSpecs()
	v.SetDefault("vehicle.startX", 850.0)
	v.SetDefault("vehicle.startY", 700.0)
	v.SetDefault("vehicle.heading", 180.0)
	v.SetDefault("vehicle.length", specs.Length)
	v.SetDefault("vehicle.maxAcceleration", specs.MaxAcceleration)
	v.SetDefault("vehicle.maxSteering", specs.MaxSteering)
	v.SetDefault("vehicle.maxVelocity", specs.MaxVelocity)
	v.SetDefault("vehicle.brakeDeceleration", specs.BrakeDeceleration)
	v.SetDefault("vehicle.freeDeceleration", specs.FreeDeceleration)
	v.SetDefault("vehicle.yawRateMultiplier", specs.YawRateMultiplier)

	v.SetDefault("collision.threshold", 50)
	v.SetDefault("collision.outlineStep", 8)

	v.SetDefault("track.gatesFile", "")

	v.SetDefault("debug.outline", false)
}

// Default returns the stock configuration
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// defaults alone always decode
		panic(err)
	}
	return cfg
}

// Load reads configuration from the given file on top of the defaults.
// An empty path yields the defaults. The format follows the file extension
// (json, yaml, toml).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	sizes := map[string]Size{
		"assets.carSize":   c.Assets.CarSize,
		"assets.trackSize": c.Assets.TrackSize,
		"assets.gateSize":  c.Assets.GateSize,
	}
	for key, s := range sizes {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%s must be positive, got %dx%d", key, s.Width, s.Height)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Vehicle.MaxAcceleration < 0 || c.Vehicle.MaxSteering < 0 {
		return fmt.Errorf("vehicle limits must not be negative")
	}
	if c.Collision.OutlineStep < 1 {
		return fmt.Errorf("collision.outlineStep must be at least 1, got %d", c.Collision.OutlineStep)
	}
	return nil
}

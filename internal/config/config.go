package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"model-viewer/internal/physics"
)

// DefaultPath is the viewer config file, relative to the process working directory.
const DefaultPath = "config/viewer.yaml"

// Config holds every tunable of the viewer. Fields missing from the file keep their defaults.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Motion  MotionConfig  `yaml:"motion"`
	Spin    SpinConfig    `yaml:"spin"`
	Layout  LayoutConfig  `yaml:"layout"`
	Lights  LightsConfig  `yaml:"lights"`
	HUD     HUDConfig     `yaml:"hud"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	FPS        int    `yaml:"fps"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// AssetsConfig says where models come from. Source is a directory or an http(s) index URL.
type AssetsConfig struct {
	Source    string `yaml:"source"`
	Extension string `yaml:"extension"`
	CacheDir  string `yaml:"cache_dir"`
	Workers   int    `yaml:"workers"`
}

type MotionConfig struct {
	MaxSpeed          float32 `yaml:"max_speed"`
	Acceleration      float32 `yaml:"acceleration"`
	Friction          float32 `yaml:"friction"`
	WheelAcceleration float32 `yaml:"wheel_acceleration"`
	TiltIntensity     float32 `yaml:"tilt_intensity"`
	TiltReturn        float32 `yaml:"tilt_return"`
	// Mode is the starting movement style: "scanner" or "racer".
	Mode string `yaml:"mode"`
}

type SpinConfig struct {
	Friction    float32 `yaml:"friction"`
	Sensitivity float32 `yaml:"sensitivity"`
	Epsilon     float32 `yaml:"epsilon"`
	DragRotate  float32 `yaml:"drag_rotate"`
	IdleMin     float32 `yaml:"idle_min"`
	IdleMax     float32 `yaml:"idle_max"`
	Seed        int64   `yaml:"seed"`
}

type LayoutConfig struct {
	Spacing float32 `yaml:"spacing"`
	FitSize float32 `yaml:"fit_size"`
}

// LightsConfig describes the per-model point lights and the scene-wide fill lights.
// Color is 0xRRGGBB.
type LightsConfig struct {
	Color         uint32     `yaml:"color"`
	Intensity     float32    `yaml:"intensity"`
	Range         float32    `yaml:"range"`
	Offset        [3]float32 `yaml:"offset"`
	Ambient       float32    `yaml:"ambient"`
	AreaIntensity float32    `yaml:"area_intensity"`
}

// HUDConfig holds overlay preferences. Font is a family name looked up under assets/fonts;
// empty means raylib's built-in font.
type HUDConfig struct {
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	Font         string `yaml:"font"`
	FontSize     int    `yaml:"font_size"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration the viewer runs with when no file is present.
func Default() Config {
	t := physics.DefaultTuning()
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Model Viewer",
			FPS:    60,
		},
		Assets: AssetsConfig{
			Source:    "models",
			Extension: ".glb",
			CacheDir:  "cache/models",
			Workers:   4,
		},
		Motion: MotionConfig{
			MaxSpeed:          t.MaxSpeed,
			Acceleration:      t.Acceleration,
			Friction:          t.Friction,
			WheelAcceleration: t.WheelAcceleration,
			TiltIntensity:     t.TiltIntensity,
			TiltReturn:        t.TiltReturn,
			Mode:              "scanner",
		},
		Spin: SpinConfig{
			Friction:    t.SpinFriction,
			Sensitivity: t.SpinSensitivity,
			Epsilon:     t.SpinEpsilon,
			DragRotate:  t.DragRotate,
			IdleMin:     0.001,
			IdleMax:     0.003,
			Seed:        1,
		},
		Layout: LayoutConfig{
			Spacing: 4,
			FitSize: 1.5,
		},
		Lights: LightsConfig{
			Color:         0x66ccff,
			Intensity:     0.25,
			Range:         10,
			Offset:        [3]float32{t.LightOffset[0], t.LightOffset[1], t.LightOffset[2]},
			Ambient:       0.5,
			AreaIntensity: 0.5,
		},
		HUD: HUDConfig{
			FontSize: 32,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "logs/viewer.txt",
		},
	}
}

// Load reads the config at path over Default(). A missing file is not an error.
// An unreadable or invalid file returns Default() together with the error so the caller can log it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// SavePrefs stores the overlay toggles and movement mode in the file at path and leaves every
// other value as the file has it, so command-line overrides never leak into it.
// An invalid file is reported and left untouched.
func SavePrefs(path string, hud HUDConfig, mode physics.Mode) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	cfg.HUD.ShowFPS = hud.ShowFPS
	cfg.HUD.ShowMemAlloc = hud.ShowMemAlloc
	cfg.Motion.Mode = mode.String()
	return Save(path, cfg)
}

// Validate rejects values that would make the motion model diverge.
func (c Config) Validate() error {
	if c.Motion.Friction < 0 || c.Motion.Friction >= 1 {
		return fmt.Errorf("motion.friction %v must be in [0,1)", c.Motion.Friction)
	}
	if c.Spin.Friction < 0 || c.Spin.Friction >= 1 {
		return fmt.Errorf("spin.friction %v must be in [0,1)", c.Spin.Friction)
	}
	if c.Motion.TiltReturn < 0 || c.Motion.TiltReturn >= 1 {
		return fmt.Errorf("motion.tilt_return %v must be in [0,1)", c.Motion.TiltReturn)
	}
	if c.Motion.MaxSpeed <= 0 {
		return fmt.Errorf("motion.max_speed %v must be positive", c.Motion.MaxSpeed)
	}
	if c.Motion.Acceleration < 0 {
		return fmt.Errorf("motion.acceleration %v must not be negative", c.Motion.Acceleration)
	}
	if c.Spin.Epsilon <= 0 {
		return fmt.Errorf("spin.epsilon %v must be positive", c.Spin.Epsilon)
	}
	if c.Assets.Workers < 0 {
		return fmt.Errorf("assets.workers %d must not be negative", c.Assets.Workers)
	}
	if _, ok := physics.ParseMode(c.Motion.Mode); !ok {
		return fmt.Errorf("motion.mode %q must be scanner or racer", c.Motion.Mode)
	}
	return nil
}

// Tuning converts the motion and spin sections into simulation constants.
func (c Config) Tuning() physics.Tuning {
	return physics.Tuning{
		MaxSpeed:          c.Motion.MaxSpeed,
		Acceleration:      c.Motion.Acceleration,
		Friction:          c.Motion.Friction,
		WheelAcceleration: c.Motion.WheelAcceleration,
		TiltIntensity:     c.Motion.TiltIntensity,
		TiltReturn:        c.Motion.TiltReturn,
		SpinFriction:      c.Spin.Friction,
		SpinSensitivity:   c.Spin.Sensitivity,
		SpinEpsilon:       c.Spin.Epsilon,
		DragRotate:        c.Spin.DragRotate,
		LightOffset:       mgl32.Vec3{c.Lights.Offset[0], c.Lights.Offset[1], c.Lights.Offset[2]},
	}
}

// StartMode returns the configured starting movement mode.
func (c Config) StartMode() physics.Mode {
	m, _ := physics.ParseMode(c.Motion.Mode)
	return m
}

// Overrides are values given on the command line. Zero values mean "not set".
type Overrides struct {
	Window  WindowConfig
	Assets  AssetsConfig
	Logging LoggingConfig
}

// Apply copies every non-zero override onto cfg, section by section.
func (c *Config) Apply(o Overrides) error {
	opt := copier.Option{IgnoreEmpty: true}
	if err := copier.CopyWithOption(&c.Window, &o.Window, opt); err != nil {
		return fmt.Errorf("config: window overrides: %w", err)
	}
	if err := copier.CopyWithOption(&c.Assets, &o.Assets, opt); err != nil {
		return fmt.Errorf("config: assets overrides: %w", err)
	}
	if err := copier.CopyWithOption(&c.Logging, &o.Logging, opt); err != nil {
		return fmt.Errorf("config: logging overrides: %w", err)
	}
	return nil
}

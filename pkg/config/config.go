// Package config holds the JSON run configuration for the b3d command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/render"
)

// Config holds viewport, pipeline, lighting and output settings.
type Config struct {
	// Viewport
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	FOV     float64 `json:"fov"`
	Backend string  `json:"backend"`

	// Pipeline
	Cull           bool `json:"cull"`
	ClipCapacity   int  `json:"clip_capacity"`
	FailOnOverflow bool `json:"fail_on_overflow"`

	// Camera and lighting
	Camera     *Camera     `json:"camera,omitempty"` // nil keeps the scene's camera
	LookAt     *[3]float64 `json:"look_at,omitempty"`
	Light      [3]float64  `json:"light"`
	Ambient    float64     `json:"ambient"`
	Color      Color       `json:"color"`
	Background Color       `json:"background"`

	// Content and output
	Scene       string     `json:"scene"`
	Model       string     `json:"model"`
	Output      string     `json:"output"`
	Supersample int        `json:"supersample"`
	Frames      int        `json:"frames"`
	FPS         float64    `json:"fps"`
	Spin        [3]float64 `json:"spin"` // radians per second around X, Y, Z
}

// Camera is the JSON form of render.Camera.
type Camera struct {
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"`
	Pitch    float64    `json:"pitch"`
	Roll     float64    `json:"roll"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Width:        160,
		Height:       120,
		FOV:          65,
		Backend:      render.BackendFloat.String(),
		Cull:         true,
		ClipCapacity: render.DefaultClipCapacity,
		Light:        [3]float64{0, 0, 1},
		Ambient:      render.DefaultAmbient,
		Color:        0xFCD0A1,
		Background:   0x000000,
		Scene:        "cube",
		Supersample:  1,
		Frames:       1,
		FPS:          30,
		Spin:         [3]float64{0.3, 0.8, 0},
	}
}

// Load reads a JSON config file on top of Default. Fields not set in the
// file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings. Zero
// values leave the config untouched.
type Flags struct {
	Width       int
	Height      int
	FOV         float64
	Backend     string
	Scene       string
	Model       string
	Output      string
	Supersample int
	Frames      int
}

// Resolve applies non-zero flag values.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Backend != "" {
		c.Backend = flags.Backend
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
}

// MaxSupersample bounds the supersampling factor.
const MaxSupersample = 8

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("width and height must be positive, got %dx%d", c.Width, c.Height))
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		errs = append(errs, fmt.Errorf("fov must be in (0, 180), got %v", c.FOV))
	}
	if _, err := render.ParseBackend(c.Backend); err != nil {
		errs = append(errs, err)
	}
	if c.ClipCapacity < 1 {
		errs = append(errs, fmt.Errorf("clip_capacity must be at least 1, got %d", c.ClipCapacity))
	}
	if l := vec(c.Light); !l.IsFinite() || l.Len() < math3d.Epsilon {
		errs = append(errs, fmt.Errorf("light must be finite and non-zero, got %v", c.Light))
	}
	if !(c.Ambient >= 0 && c.Ambient <= 1) {
		errs = append(errs, fmt.Errorf("ambient must be in [0, 1], got %v", c.Ambient))
	}
	if c.Supersample < 1 || c.Supersample > MaxSupersample {
		errs = append(errs, fmt.Errorf("supersample must be in [1, %d], got %d", MaxSupersample, c.Supersample))
	}
	if c.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames must be at least 1, got %d", c.Frames))
	}
	if !(c.FPS >= 1) || math.IsInf(c.FPS, 0) {
		errs = append(errs, fmt.Errorf("fps must be at least 1, got %v", c.FPS))
	}
	return errors.Join(errs...)
}

// RenderBackend returns the parsed backend.
func (c Config) RenderBackend() (render.Backend, error) {
	return render.ParseBackend(c.Backend)
}

// Options converts the pipeline settings to renderer options.
func (c Config) Options() []render.Option {
	opts := []render.Option{
		render.WithBackfaceCulling(c.Cull),
		render.WithClipCapacity(c.ClipCapacity),
	}
	if c.FailOnOverflow {
		opts = append(opts, render.WithFailOnClipOverflow())
	}
	return opts
}

// RenderCamera converts the camera settings, or returns fallback when the
// config sets no camera.
func (c Config) RenderCamera(fallback render.Camera) render.Camera {
	if c.Camera == nil {
		return fallback
	}
	return render.Camera{
		Position: vec(c.Camera.Position),
		Yaw:      c.Camera.Yaw,
		Pitch:    c.Camera.Pitch,
		Roll:     c.Camera.Roll,
	}
}

// LookAtTarget returns the configured look-at point, if any.
func (c Config) LookAtTarget() (math3d.Vec3, bool) {
	if c.LookAt == nil {
		return math3d.Vec3{}, false
	}
	return vec(*c.LookAt), true
}

// LightDirection returns the light as a vector.
func (c Config) LightDirection() math3d.Vec3 { return vec(c.Light) }

// SpinRate returns the spin rates as a vector.
func (c Config) SpinRate() math3d.Vec3 { return vec(c.Spin) }

// Apply configures a renderer's camera and lighting. fallback is the
// camera used when the config sets none.
func (c Config) Apply(r render.Renderer, fallback render.Camera) error {
	r.SetCamera(c.RenderCamera(fallback))
	if target, ok := c.LookAtTarget(); ok {
		r.LookAt(target)
	}
	r.SetAmbient(c.Ambient)
	return r.SetLightDirection(c.LightDirection())
}

func vec(a [3]float64) math3d.Vec3 { return math3d.V3(a[0], a[1], a[2]) }

// Color is a packed 0xRRGGBB color written in JSON as "#RRGGBB".
type Color uint32

// MarshalJSON implements json.Marshaler.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF))
}

// UnmarshalJSON accepts "#RRGGBB", "RRGGBB" or a plain number.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n uint32
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("color: want \"#RRGGBB\" or a number, got %s", data)
		}
		*c = Color(n & 0xFFFFFF)
		return nil
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color: want 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color: %q: %w", s, err)
	}
	return Color(v), nil
}

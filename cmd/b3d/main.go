// b3d - software 3D renderer
// Renders built-in scenes or OBJ/GLB models to image files or, without
// -out, live in the terminal.
//
// Controls:
//
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	X           - Toggle wireframe mode (x-ray)
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/taigrr/b3d/pkg/config"
	"github.com/taigrr/b3d/pkg/render"
	"github.com/taigrr/b3d/pkg/scene"
)

var (
	configPath  = flag.String("config", "", "Path to JSON config file")
	logLevel    = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	outPath     = flag.String("out", "", "Render headless to this file (.png, .webp, .tga)")
	width       = flag.Int("width", 0, "Output width in pixels")
	height      = flag.Int("height", 0, "Output height in pixels")
	fov         = flag.Float64("fov", 0, "Vertical field of view in degrees")
	backend     = flag.String("backend", "", "Scalar backend (float, fixed, fixed16)")
	sceneName   = flag.String("scene", "", "Built-in scene ("+strings.Join(scene.Names(), ", ")+")")
	supersample = flag.Int("supersample", 0, "Render at N times the output size and scale down")
	frames      = flag.Int("frames", 0, "Number of frames to render with -out")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "b3d - software 3D renderer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: b3d [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  X           - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	render.SetLogger(logger)

	cfg, err := loadConfig(*configPath, config.Flags{
		Width:       *width,
		Height:      *height,
		FOV:         *fov,
		Backend:     *backend,
		Scene:       *sceneName,
		Model:       flag.Arg(0),
		Output:      *outPath,
		Supersample: *supersample,
		Frames:      *frames,
	})
	if err != nil {
		return err
	}

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}
	logger.Info("content loaded", "name", c.name, "triangles", c.triangles, "backend", cfg.Backend)

	if cfg.Output != "" {
		written, err := renderHeadless(cfg, c, logger)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d frame(s) to %s\n", len(written), written[len(written)-1])
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runViewer(ctx, cfg, c, logger)
}

// loadConfig reads the config file, if any, then applies flag overrides
// and validates the result.
func loadConfig(path string, flags config.Flags) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

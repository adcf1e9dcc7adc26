package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/taigrr/b3d/pkg/config"
	"github.com/taigrr/b3d/pkg/export"
	"github.com/taigrr/b3d/pkg/render"
)

// newRenderer builds a renderer of the configured backend at w×h pixels.
func newRenderer(cfg config.Config, w, h int, cam render.Camera) (render.Renderer, error) {
	backend, err := cfg.RenderBackend()
	if err != nil {
		return nil, err
	}
	r, err := render.New(backend, w, h, cfg.FOV, cfg.Options()...)
	if err != nil {
		return nil, fmt.Errorf("create %s renderer: %w", backend, err)
	}
	if err := cfg.Apply(r, cam); err != nil {
		return nil, fmt.Errorf("configure renderer: %w", err)
	}
	return r, nil
}

// drawFrame clears r to the background and draws c at time t.
func drawFrame(r render.Renderer, cfg config.Config, c content, t float64) int {
	r.Clear()
	if cfg.Background != 0 {
		render.FramebufferOf(r).Fill(uint32(cfg.Background))
	}
	return c.draw(r, t)
}

// renderHeadless renders cfg.Frames frames and writes them to cfg.Output.
// A single frame goes to the path as given; several frames get numbered
// paths. Frames are rendered at cfg.Supersample times the output size and
// scaled down.
func renderHeadless(cfg config.Config, c content, logger *slog.Logger) ([]string, error) {
	if _, err := export.FormatOf(cfg.Output); err != nil {
		return nil, err
	}

	ss := cfg.Supersample
	r, err := newRenderer(cfg, cfg.Width*ss, cfg.Height*ss, c.camera)
	if err != nil {
		return nil, err
	}

	var written []string
	for i := range cfg.Frames {
		t := float64(i) / cfg.FPS
		drawn := drawFrame(r, cfg, c, t)

		var img image.Image = render.FramebufferOf(r).ToImage()
		if ss > 1 {
			img = export.Downsample(img, cfg.Width, cfg.Height)
		}

		path := cfg.Output
		if cfg.Frames > 1 {
			path = export.FramePath(cfg.Output, i)
		}
		if err := export.Save(path, img); err != nil {
			return written, fmt.Errorf("frame %d: %w", i, err)
		}
		written = append(written, path)
		logger.Debug("frame written",
			"path", path,
			"t", t,
			"triangles", drawn,
			"clip_drops", r.ClipDropCount(),
		)
	}
	return written, nil
}

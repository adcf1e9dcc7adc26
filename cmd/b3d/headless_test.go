package main

import (
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/b3d/pkg/config"
	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/render"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

const tetraOBJ = `# tetrahedron
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
f 1 3 2
f 1 2 4
f 1 4 3
f 2 3 4
`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 48, 32
	cfg.Output = filepath.Join(t.TempDir(), "frame.png")
	return cfg
}

func TestRenderHeadlessScene(t *testing.T) {
	cfg := testConfig(t)
	cfg.Supersample = 2
	c, err := loadContent(cfg)
	if err != nil {
		t.Fatalf("loadContent: %v", err)
	}

	written, err := renderHeadless(cfg, c, discard)
	if err != nil {
		t.Fatalf("renderHeadless: %v", err)
	}
	if len(written) != 1 || written[0] != cfg.Output {
		t.Fatalf("written = %v", written)
	}

	f, err := os.Open(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 32 {
		t.Errorf("image is %dx%d, want 48x32", b.Dx(), b.Dy())
	}
}

func TestRenderHeadlessFrames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene = "cubes"
	cfg.Frames = 3
	cfg.Backend = "fixed"
	c, err := loadContent(cfg)
	if err != nil {
		t.Fatal(err)
	}

	written, err := renderHeadless(cfg, c, discard)
	if err != nil {
		t.Fatalf("renderHeadless: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("wrote %d frames, want 3", len(written))
	}
	for _, p := range written {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("frame missing: %v", err)
		}
	}
}

func TestRenderHeadlessBadFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output = filepath.Join(t.TempDir(), "frame.bmp")
	c, err := loadContent(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := renderHeadless(cfg, c, discard); err == nil {
		t.Error("unknown output format accepted")
	}
}

func TestLoadContentModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.obj")
	if err := os.WriteFile(path, []byte(tetraOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)
	cfg.Model = path

	c, err := loadContent(cfg)
	if err != nil {
		t.Fatalf("loadContent: %v", err)
	}
	if c.name != "tetra.obj" || c.triangles != 4 {
		t.Errorf("content = %q with %d triangles", c.name, c.triangles)
	}

	r, err := newRenderer(cfg, cfg.Width, cfg.Height, c.camera)
	if err != nil {
		t.Fatal(err)
	}
	if n := drawFrame(r, cfg, c, 0.5); n == 0 || n > 4 {
		t.Errorf("drew %d triangles", n)
	}
}

func TestLoadContentErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene string
		model string
		want  string
	}{
		{"unknown scene", "teapot", "", "unknown scene"},
		{"unknown format", "", "model.stl", "unsupported format"},
		{"missing model", "", "missing.obj", "load model"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.scene != "" {
				cfg.Scene = tt.scene
			}
			cfg.Model = tt.model
			_, err := loadContent(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDrawFrameBackground(t *testing.T) {
	cfg := testConfig(t)
	cfg.Background = 0x102030
	c, err := loadContent(cfg)
	if err != nil {
		t.Fatal(err)
	}
	r, err := newRenderer(cfg, cfg.Width, cfg.Height, c.camera)
	if err != nil {
		t.Fatal(err)
	}
	drawFrame(r, cfg, c, 0)
	if got := r.Pixels()[0]; got != 0x102030 {
		t.Errorf("corner pixel = %#06x, want background", got)
	}
}

func TestWireRenderer(t *testing.T) {
	cfg := testConfig(t)
	r, err := newRenderer(cfg, cfg.Width, cfg.Height, render.Camera{Position: math3d.V3(0, 0, -3)})
	if err != nil {
		t.Fatal(err)
	}
	w := wireRenderer{Renderer: r, fb: render.FramebufferOf(r), color: wireColor}
	w.TriangleLit(math3d.V3(-1, -1, 0), math3d.V3(0, 1, 0), math3d.V3(1, -1, 0), math3d.V3(0, 0, -1), 0xFFFFFF)

	n := 0
	for _, p := range r.Pixels() {
		switch p {
		case wireColor:
			n++
		case 0:
		default:
			t.Fatalf("unexpected pixel %#06x", p)
		}
	}
	if n == 0 {
		t.Error("no outline drawn")
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug"); err != nil {
		t.Errorf("debug: %v", err)
	}
	if _, err := newLogger("loud"); err == nil {
		t.Error("bad level accepted")
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b3d.json")
	if err := os.WriteFile(path, []byte(`{"width": 200, "scene": "donut"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path, config.Flags{Scene: "terrain", Frames: 4})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Width != 200 || cfg.Scene != "terrain" || cfg.Frames != 4 {
		t.Errorf("cfg = %dx%d scene %q frames %d", cfg.Width, cfg.Height, cfg.Scene, cfg.Frames)
	}
	if _, err := loadConfig("", config.Flags{Supersample: 99}); err == nil {
		t.Error("out-of-range supersample accepted")
	}
}

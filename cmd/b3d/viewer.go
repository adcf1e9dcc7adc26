package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/b3d/pkg/config"
	"github.com/taigrr/b3d/pkg/render"
)

const (
	torqueStrength = 3.0
	kickStrength   = 1.5
	wireColor      = 0x00FF80
)

// torque is the held-key acceleration per axis.
type torque struct{ pitch, yaw, roll float64 }

// viewer is the interactive terminal loop state.
type viewer struct {
	cfg     config.Config
	content content
	logger  *slog.Logger

	term          *uv.Terminal
	width, height int // terminal cells
	r             render.Renderer

	spin      *Spin
	torque    torque
	wireframe bool
	rng       *rand.Rand
}

// runViewer shows c in the terminal until esc, ctrl+c or ctx is done.
func runViewer(ctx context.Context, cfg config.Config, c content, logger *slog.Logger) error {
	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	v := &viewer{
		cfg:     cfg,
		content: c,
		logger:  logger,
		term:    term,
		spin:    NewSpin(cfg.FPS),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	if err := v.resize(width, height); err != nil {
		return err
	}
	return v.loop(ctx)
}

// resize rebuilds the renderer for a terminal of w×h cells. Each cell
// shows two pixel rows.
func (v *viewer) resize(w, h int) error {
	r, err := newRenderer(v.cfg, max(w, 1), max(h, 1)*2, v.content.camera)
	if err != nil {
		return err
	}
	v.width, v.height, v.r = w, h, r
	v.logger.Debug("viewer resized", "cols", w, "rows", h)
	return nil
}

func (v *viewer) loop(ctx context.Context) error {
	frame := time.Duration(float64(time.Second) / v.cfg.FPS)
	start := time.Now()
	last := start
	events := v.term.Events()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			quit, err := v.handle(ev)
			if err != nil || quit {
				return err
			}
			continue
		default:
		}

		now := time.Now()
		dt := min(now.Sub(last).Seconds(), 0.1)
		last = now

		v.spin.Impulse(v.torque.pitch*dt, v.torque.yaw*dt, v.torque.roll*dt)
		// Key releases are not reported by every terminal, so held torque fades.
		v.torque.pitch *= 0.9
		v.torque.yaw *= 0.9
		v.torque.roll *= 0.9
		v.spin.Step()

		v.draw(now.Sub(start).Seconds())
		if err := v.term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < frame {
			time.Sleep(frame - elapsed)
		}
	}
}

func (v *viewer) draw(t float64) {
	v.r.SetCamera(v.spin.Camera(v.cfg.RenderCamera(v.content.camera)))
	if target, ok := v.cfg.LookAtTarget(); ok {
		v.r.LookAt(target)
	}
	fb := render.FramebufferOf(v.r)
	if v.wireframe {
		v.r.Clear()
		v.content.draw(wireRenderer{Renderer: v.r, fb: fb, color: wireColor}, t)
	} else {
		drawFrame(v.r, v.cfg, v.content, t)
	}
	fb.Draw(v.term, uv.Rect(0, 0, v.width, v.height))
}

// handle applies one terminal event and reports whether to quit.
func (v *viewer) handle(ev uv.Event) (bool, error) {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.term.Erase()
		v.term.Resize(ev.Width, ev.Height)
		return false, v.resize(ev.Width, ev.Height)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "ctrl+c"):
			return true, nil
		case ev.MatchString("w", "up"):
			v.torque.pitch = -torqueStrength
		case ev.MatchString("s", "down"):
			v.torque.pitch = torqueStrength
		case ev.MatchString("a", "left"):
			v.torque.yaw = -torqueStrength
		case ev.MatchString("d", "right"):
			v.torque.yaw = torqueStrength
		case ev.MatchString("q"):
			v.torque.roll = -torqueStrength
		case ev.MatchString("e"):
			v.torque.roll = torqueStrength
		case ev.MatchString("space"):
			v.spin.Kick(v.rng, kickStrength)
		case ev.MatchString("r"):
			v.spin.Reset()
			v.torque = torque{}
		case ev.MatchString("x"):
			v.wireframe = !v.wireframe
		}

	case uv.KeyReleaseEvent:
		switch {
		case ev.MatchString("w", "up", "s", "down"):
			v.torque.pitch = 0
		case ev.MatchString("a", "left", "d", "right"):
			v.torque.yaw = 0
		case ev.MatchString("q", "e"):
			v.torque.roll = 0
		}
	}
	return false, nil
}

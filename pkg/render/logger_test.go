package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/taigrr/b3d/pkg/math3d"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := New(BackendFloat, 0, 4, testFOV); err == nil {
		t.Fatal("New accepted zero width")
	}
	r, err := New(BackendFloat, 8, 8, testFOV, WithClipCapacity(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.SetLightDirection(math3d.Vec3{}); err == nil {
		t.Fatal("zero light accepted")
	}
	r.SetCamera(Camera{Position: math3d.V3(0, 0, -2.3)})
	_ = r.DrawTriangle(math3d.V3(-10, -10, 0), math3d.V3(-10, 30, 0), math3d.V3(30, -10, 0), testColor)

	out := buf.String()
	for _, want := range []string{
		"render: initialized",
		"render: light direction rejected",
		"render: clip overflow",
		"level=WARN",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

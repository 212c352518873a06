package hud

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	h, err := NewHud(HudConfig{Registrations: &Event[LayerRegistrationFunc]{}, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	h.Screenshot("a")
	h.Screenshot("b")
	if len(h.screenshotQueue) != 2 || h.screenshotQueue[0] != "a" || h.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", h.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	h, err := NewHud(HudConfig{Registrations: &Event[LayerRegistrationFunc]{}, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	if h.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", h.ScreenshotDir, "screenshots")
	}
}

func TestUnpremultiply(t *testing.T) {
	// One opaque red pixel, one half-transparent premultiplied grey pixel.
	pixels := []byte{255, 0, 0, 255, 64, 64, 64, 128}
	img := unpremultiply(pixels, 2, 1)

	if got := img.NRGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Errorf("pixel 0 = %v, want opaque red", got)
	}
	if got := img.NRGBAAt(1, 0); got.R != 127 || got.A != 128 {
		t.Errorf("pixel 1 = %v, want R=127 A=128", got)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, unpremultiply([]byte{1, 2, 3, 255}, 1, 1)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("bounds = %v, want 1x1", b)
	}
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phanxgames/hud"
)

// runCmd executes the root command with args and returns stdout and the
// command error.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeLayout(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTreeCommand(t *testing.T) {
	out, err := runCmd(t, "tree")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	for _, id := range hud.VanillaLayers() {
		if !strings.Contains(out, id.String()) {
			t.Errorf("tree output missing %s", id)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("tree output should not mark sub-lists hidden by default")
	}

	// Draw order: crosshair is drawn before chat.
	if strings.Index(out, hud.CrosshairLayer.String()) > strings.Index(out, hud.ChatLayer.String()) {
		t.Error("crosshair should be listed before chat")
	}
}

func TestTreeCommandHidden(t *testing.T) {
	out, err := runCmd(t, "tree", "--hidden")
	if err != nil {
		t.Fatalf("tree --hidden: %v", err)
	}
	if got := strings.Count(out, "sub-list (hidden)"); got != 2 {
		t.Errorf("hidden sub-lists = %d, want 2", got)
	}
}

func TestTreeCommandLayout(t *testing.T) {
	path := writeLayout(t, `
[[layer]]
id = "demo:banner"
type = "hud:text"
after = "minecraft:chat"
[layer.options]
text = "hello"

[[layer]]
id = "minecraft:subtitles"
remove = true
`)
	out, err := runCmd(t, "tree", "-l", path)
	if err != nil {
		t.Fatalf("tree -l: %v", err)
	}
	if !strings.Contains(out, "demo:banner") {
		t.Error("tree output missing demo:banner")
	}
	if strings.Contains(out, hud.SubtitlesLayer.String()) {
		t.Error("tree output still lists removed subtitles layer")
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: "[[layer]]\nid = \"demo:fps\"\ntype = \"hud:fps\"\nafter = \"minecraft:debug\"\n",
		},
		{
			name:    "unknown anchor",
			data:    "[[layer]]\nid = \"demo:fps\"\ntype = \"hud:fps\"\nafter = \"demo:nope\"\n",
			wantErr: "not found",
		},
		{
			name:    "duplicate",
			data:    "[[layer]]\nid = \"minecraft:chat\"\ntype = \"hud:fps\"\n",
			wantErr: "already",
		},
		{
			name:    "unknown key",
			data:    "[[layer]]\nid = \"demo:fps\"\ntype = \"hud:fps\"\nafterr = \"minecraft:debug\"\n",
			wantErr: "unknown key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLayout(t, tt.data)
			out, err := runCmd(t, "check", path)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("check: %v", err)
				}
				if !strings.Contains(out, path) {
					t.Errorf("output %q should name the layout", out)
				}
				return
			}
			if err == nil {
				t.Fatal("check should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckCommandMissingFile(t *testing.T) {
	if _, err := runCmd(t, "check", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("check of a missing file should fail")
	}
}

func TestLayerTreeNested(t *testing.T) {
	list := hud.NewLayerList()
	if err := list.AddLayer(hud.NewLayer(hud.MustParseIdentifier("a:top"), nil)); err != nil {
		t.Fatal(err)
	}
	sub := list.AddSubList(func() bool { return false })
	if err := sub.AddLayer(hud.NewLayer(hud.MustParseIdentifier("a:inner"), nil)); err != nil {
		t.Fatal(err)
	}

	out := layerTree(list).String()
	for _, want := range []string{"a:top", "sub-list (hidden)", "a:inner"} {
		if !strings.Contains(out, want) {
			t.Errorf("tree %q missing %q", out, want)
		}
	}
	if strings.Index(out, "a:top") > strings.Index(out, "a:inner") {
		t.Error("a:top should be listed before a:inner")
	}
}

func TestDefaultScreenshotDir(t *testing.T) {
	t.Setenv("HUD_SCREENSHOT_DIR", "")
	if got := defaultScreenshotDir(); got != "screenshots" {
		t.Errorf("defaultScreenshotDir() = %q, want screenshots", got)
	}
	t.Setenv("HUD_SCREENSHOT_DIR", "/tmp/shots")
	if got := defaultScreenshotDir(); got != "/tmp/shots" {
		t.Errorf("defaultScreenshotDir() = %q, want /tmp/shots", got)
	}
}

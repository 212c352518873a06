package hud

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}, false},
		{"00ff0080", color.NRGBA{0, 255, 0, 128}, false},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 255}, false},
		{"#12", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// buildFactory runs a built-in factory against the options of a one-entry layout.
func buildFactory(t *testing.T, data string) (DrawFunc, error) {
	t.Helper()
	lay, err := LoadLayout([]byte(data))
	require.NoError(t, err)
	require.Len(t, lay.Layers, 1)

	e := lay.Layers[0]
	factory, ok := DefaultFactories().Get(e.Type.ID)
	require.True(t, ok)
	return factory(LayerOptions{md: lay.md, prim: e.Options})
}

func TestBuiltinFactories(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"text", "[[layer]]\nid = \"a:t\"\ntype = \"hud:text\"\n[layer.options]\ntext = \"hi\"\nx = 4", false},
		{"text without text", "[[layer]]\nid = \"a:t\"\ntype = \"hud:text\"", true},
		{"fps", "[[layer]]\nid = \"a:f\"\ntype = \"hud:fps\"", false},
		{"rect", "[[layer]]\nid = \"a:r\"\ntype = \"hud:rect\"\n[layer.options]\nwidth = 10.0\nheight = 5.0\ncolor = \"#ff000080\"", false},
		{"rect without size", "[[layer]]\nid = \"a:r\"\ntype = \"hud:rect\"", true},
		{"rect bad color", "[[layer]]\nid = \"a:r\"\ntype = \"hud:rect\"\n[layer.options]\nwidth = 1.0\nheight = 1.0\ncolor = \"red\"", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw, err := buildFactory(t, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, draw)
		})
	}
}

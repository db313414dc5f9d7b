package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/pagingmenu/internal/config"
	"github.com/oakwood-commons/pagingmenu/internal/paging"
	"github.com/oakwood-commons/pagingmenu/internal/source"
)

func planets() source.Provider {
	l := source.NewList([]paging.Item{
		{ID: "mercury", Order: 0, Title: "Mercury"},
		{ID: "venus", Order: 1, Title: "Venus"},
		{ID: "earth", Order: 2, Title: "Earth"},
	})
	l.SetBody("earth", "# Earth\n\nHome.\n")
	return source.FromList(l)
}

func TestRenderSnapshot(t *testing.T) {
	out, err := RenderSnapshot(Config{
		Provider:  planets(),
		AppName:   "planets",
		Width:     50,
		Height:    12,
		NoColor:   true,
		StartKeys: []string{"<right>", "<right>"},
	})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 12)
	assert.Contains(t, out, "Earth  3/3")
	assert.Contains(t, out, "Home.")
	assert.Contains(t, out, "planets")
}

func TestRenderSnapshotSelect(t *testing.T) {
	out, err := RenderSnapshot(Config{
		Provider: planets(),
		Select:   "venus",
		Width:    50,
		Height:   12,
		NoColor:  true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Venus  2/3")
}

func TestRenderSnapshotUsesConfigFile(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.UI.NoColor = true

	_, err = RenderSnapshot(Config{File: &cfg, Provider: planets(), Width: 40, Height: 10})
	require.NoError(t, err)
}

func TestRenderSnapshotErrors(t *testing.T) {
	_, err := RenderSnapshot(Config{Provider: source.FromList(nil), Width: 40, Height: 10})
	require.Error(t, err)

	_, err = RenderSnapshot(Config{Provider: planets(), Select: "pluto", Width: 40, Height: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pluto")
}

func TestDetectTerminalSizeFallsBackToEnv(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	t.Setenv("LINES", "40")
	w, h := DetectTerminalSize()
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestFillSize(t *testing.T) {
	w, h := fillSize(30, 9)
	assert.Equal(t, 30, w)
	assert.Equal(t, 9, h)

	w, h = fillSize(30, 0)
	assert.Equal(t, 30, w)
	assert.Positive(t, h)
}

func TestWithIO(t *testing.T) {
	in := bytes.NewBufferString("")
	out := bytes.NewBuffer(nil)

	tests := []struct {
		name string
		in   io.Reader
		out  io.Writer
		want int
	}{
		{"both", in, out, 2},
		{"input only", in, nil, 1},
		{"output only", nil, out, 1},
		{"none", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, WithIO(tt.in, tt.out), tt.want)
		})
	}
}

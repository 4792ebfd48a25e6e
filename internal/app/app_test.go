package app

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "20", "-h", "10", "-fill", "noise", "-seed", "3", "-legacy"}))

	lc, err := cfg.LifeConfig()
	require.NoError(t, err)
	assert.Equal(t, 20, lc.Width)
	assert.Equal(t, 10, lc.Height)
	assert.Equal(t, core.FillNoise, lc.Fill)
	assert.Equal(t, int64(3), lc.Seed)
	assert.True(t, lc.LegacySetCells)
	assert.Equal(t, core.FillDemo, lc.ResizeFill)
}

func TestLifeConfigRejectsUnknownFill(t *testing.T) {
	cfg := NewConfig()
	cfg.Fill = "confetti"
	_, err := cfg.LifeConfig()
	assert.Error(t, err)
}

func TestLoadFromFlags(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 6, 4
	u, err := cfg.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 6, H: 4}, u.Size())

	cfg.Width = 0
	_, err = cfg.Load(context.Background())
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestLoadFromScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.hcl")
	src := "width = 4\nheight = 4\nfill = \"dead\"\npattern \"block\" {\n  cells = [[1, 1], [1, 2], [2, 1], [2, 2]]\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg := NewConfig()
	cfg.Scenario = path
	u, err := cfg.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, u.Population())

	u.Tick()
	assert.Equal(t, 4, u.Population(), "a block is a still life")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", "json", &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/m3theme/internal/config"
	"github.com/setanarut/m3theme/internal/material"
	"github.com/setanarut/m3theme/internal/output"
	"github.com/setanarut/m3theme/internal/seed"
)

type fakeReloader struct {
	calls int
	err   error
}

func (f *fakeReloader) Reload(context.Context) error {
	f.calls++
	return f.err
}

func writePurple(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 128, G: 0, B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, "wall.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func testConfig(t *testing.T, image string) config.Config {
	t.Helper()
	out := t.TempDir()
	return config.Config{
		ImagePath:      image,
		Variant:        material.DefaultVariant,
		IsDark:         true,
		OutputDir:      out,
		ThemeFile:      filepath.Join(out, "theme.json"),
		WaybarSubpath:  config.DefaultWaybarSubpath,
		VesktopSubpath: config.DefaultVesktopSubpath,
		Method:         seed.MethodDominantColor,
		MakeDirs:       true,
		Reload:         true,
	}
}

func countPrefix(s, prefix string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestRunSolidPurple(t *testing.T) {
	cfg := testConfig(t, writePurple(t, t.TempDir()))
	reloader := &fakeReloader{}
	var stdout bytes.Buffer

	theme, err := New(zerolog.Nop(), WithReloader(reloader), WithOutput(&stdout, false)).Run(context.Background(), cfg)
	require.NoError(t, err)

	hue, _, _ := material.SourceHCT(theme.Source)
	want, _, _ := material.SourceHCT(material.Color{R: 128, G: 0, B: 128})
	assert.InDelta(t, want, hue, 10)
	assert.Equal(t, theme.Source.Hex()+"\n", stdout.String())
	assert.Equal(t, 1, reloader.calls)

	raw, err := os.ReadFile(cfg.ThemeFile)
	require.NoError(t, err)
	var decoded material.Theme
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, theme.Source, decoded.Source)

	css, err := os.ReadFile(cfg.VesktopPath())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(css), "# Source: "+theme.Source.Hex()+"\n:root {\n"))
	assert.Equal(t, len(material.Roles()), countPrefix(string(css), "  --"))

	bar, err := os.ReadFile(cfg.WaybarPath())
	require.NoError(t, err)
	assert.Equal(t, len(material.Roles()), countPrefix(string(bar), "@define-color "))
	assert.Contains(t, string(bar), "@define-color primary "+theme.Schemes.Dark["primary"].Hex()+";\n")
}

func TestRunLightScheme(t *testing.T) {
	cfg := testConfig(t, writePurple(t, t.TempDir()))
	cfg.IsDark = false
	cfg.Reload = false

	theme, err := New(zerolog.Nop()).Run(context.Background(), cfg)
	require.NoError(t, err)

	bar, err := os.ReadFile(cfg.WaybarPath())
	require.NoError(t, err)
	assert.Contains(t, string(bar), "@define-color primary "+theme.Schemes.Light["primary"].Hex()+";\n")
}

func TestRunReloadFailureIsNotFatal(t *testing.T) {
	cfg := testConfig(t, writePurple(t, t.TempDir()))
	reloader := &fakeReloader{err: errors.New("no process found")}

	_, err := New(zerolog.Nop(), WithReloader(reloader)).Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, reloader.calls)
}

func TestRunWriteFailureSkipsReload(t *testing.T) {
	cfg := testConfig(t, writePurple(t, t.TempDir()))
	cfg.OutputDir = filepath.Join(cfg.OutputDir, "missing")
	cfg.MakeDirs = false
	reloader := &fakeReloader{}

	_, err := New(zerolog.Nop(), WithReloader(reloader)).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrWriteFailure))
	assert.Zero(t, reloader.calls)

	// The theme file lives outside the missing directory and is still written.
	_, statErr := os.Stat(cfg.ThemeFile)
	assert.NoError(t, statErr)
}

func TestRunDecodeFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0o644))
	cfg := testConfig(t, bad)
	reloader := &fakeReloader{}

	_, err := New(zerolog.Nop(), WithReloader(reloader)).Run(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, seed.ErrDecodeFailure))
	assert.Zero(t, reloader.calls)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunRejectsNonImage(t *testing.T) {
	cfg := testConfig(t, t.TempDir())

	_, err := New(zerolog.Nop()).Run(context.Background(), cfg)
	assert.True(t, errors.Is(err, config.ErrNotAnImage))
}

func TestTargetsOrder(t *testing.T) {
	cfg := testConfig(t, "unused.png")
	theme, err := material.Generate(material.Color{R: 0x67, G: 0x50, B: 0xA4}, material.VariantVibrant)
	require.NoError(t, err)

	targets, err := Targets(cfg, theme)
	require.NoError(t, err)
	require.Len(t, targets, 3)
	assert.Equal(t, cfg.ThemeFile, targets[0].Path)
	assert.Equal(t, cfg.WaybarPath(), targets[1].Path)
	assert.Equal(t, cfg.VesktopPath(), targets[2].Path)
}

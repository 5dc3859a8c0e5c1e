// Package app runs one pass of theme generation: image, seed, theme,
// rendered palettes, files on disk, status bar reload.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/setanarut/m3theme/internal/config"
	"github.com/setanarut/m3theme/internal/material"
	"github.com/setanarut/m3theme/internal/output"
	"github.com/setanarut/m3theme/internal/reload"
	"github.com/setanarut/m3theme/internal/render"
	"github.com/setanarut/m3theme/internal/seed"
	"github.com/setanarut/m3theme/internal/swatch"
)

// Reloader notifies the status bar that its stylesheet changed.
type Reloader interface {
	Reload(ctx context.Context) error
}

// App wires the pipeline stages together.
type App struct {
	logger   zerolog.Logger
	out      io.Writer
	color    bool
	reloader Reloader
}

// Option configures an App.
type Option func(*App)

// WithOutput sets where the source color is printed.
func WithOutput(w io.Writer, color bool) Option {
	return func(a *App) {
		a.out = w
		a.color = color
	}
}

// WithReloader replaces the pkill based reloader.
func WithReloader(r Reloader) Option {
	return func(a *App) {
		a.reloader = r
	}
}

// New returns an App. Output goes to io.Discard unless WithOutput is given.
func New(logger zerolog.Logger, opts ...Option) *App {
	a := &App{
		logger: logger,
		out:    io.Discard,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate loads the image and builds its theme without touching the
// filesystem otherwise.
func (a *App) Generate(cfg config.Config) (material.Theme, error) {
	if err := config.CheckImage(cfg.ImagePath); err != nil {
		return material.Theme{}, err
	}

	img, err := seed.Load(cfg.ImagePath)
	if err != nil {
		return material.Theme{}, err
	}

	source := seed.NewExtractor(cfg.Method, a.logger.With().Str("component", "seed").Logger()).Extract(img)
	theme, err := material.Generate(source, cfg.Variant)
	if err != nil {
		return material.Theme{}, err
	}

	a.logger.Info().
		Str("image", cfg.ImagePath).
		Str("source", source.Hex()).
		Str("variant", string(cfg.Variant)).
		Bool("dark", cfg.IsDark).
		Msg("theme generated")
	return theme, nil
}

// Run generates the theme for cfg, writes the theme JSON and both palette
// files, and signals the status bar. Every write is attempted; write
// failures are returned together after the others completed. A failed
// reload is logged only.
func (a *App) Run(ctx context.Context, cfg config.Config) (material.Theme, error) {
	theme, err := a.Generate(cfg)
	if err != nil {
		return material.Theme{}, err
	}

	targets, err := Targets(cfg, theme)
	if err != nil {
		return theme, err
	}

	writer := output.NewWriter(a.logger.With().Str("component", "output").Logger(), cfg.MakeDirs)
	if err := writer.WriteAll(targets); err != nil {
		return theme, err
	}

	if cfg.Reload {
		r := a.reloader
		if r == nil {
			r = reload.New(cfg.ReloadProcess, cfg.ReloadSignal, a.logger.With().Str("component", "reload").Logger())
		}
		if err := r.Reload(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("status bar was not reloaded")
		}
	}

	label := theme.Source.Hex()
	if a.color {
		label = swatch.Line(theme.Source, label)
	}
	if _, err := fmt.Fprintln(a.out, label); err != nil {
		return theme, fmt.Errorf("print source color: %w", err)
	}
	return theme, nil
}

// Targets renders the files produced for cfg: the theme JSON, the status
// bar palette and the chat client stylesheet, in that order.
func Targets(cfg config.Config, theme material.Theme) ([]output.Target, error) {
	themeJSON, err := output.JSONTarget("theme", cfg.ThemeFile, theme)
	if err != nil {
		return nil, err
	}

	statusBar, err := render.Render(render.StatusBar, theme, cfg.IsDark)
	if err != nil {
		return nil, err
	}

	styleSheet, err := render.Render(render.StyleSheet, theme, cfg.IsDark)
	if err != nil {
		return nil, err
	}

	return []output.Target{
		themeJSON,
		{Name: render.StatusBar.Name, Path: cfg.WaybarPath(), Data: []byte(statusBar)},
		{Name: render.StyleSheet.Name, Path: cfg.VesktopPath(), Data: []byte(styleSheet)},
	}, nil
}

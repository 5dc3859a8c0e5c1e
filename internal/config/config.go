// Package config resolves one invocation's settings from flags, environment
// and an optional config file into an immutable Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/setanarut/m3theme/internal/material"
	"github.com/setanarut/m3theme/internal/reload"
	"github.com/setanarut/m3theme/internal/seed"
)

var (
	// ErrInvalidArgument covers missing or malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotAnImage is returned for directories, missing files and
	// unsupported extensions.
	ErrNotAnImage = errors.New("not an image")
	// ErrUnreadablePath is returned when the extension cannot be determined.
	ErrUnreadablePath = errors.New("unreadable path")
)

const (
	DefaultThemeFile      = "theme.json"
	DefaultWaybarSubpath  = "waybar"
	DefaultVesktopSubpath = "vesktop/themes/Actual Material design colors"
	paletteFile           = "colors.css"
)

// Config is the resolved invocation.
type Config struct {
	ImagePath      string
	Variant        material.Variant
	IsDark         bool
	OutputDir      string
	ThemeFile      string
	WaybarSubpath  string
	VesktopSubpath string
	Method         seed.Method
	MakeDirs       bool
	Reload         bool
	ReloadProcess  string
	ReloadSignal   string
}

// WaybarPath is the status bar palette file.
func (c Config) WaybarPath() string {
	return filepath.Join(c.OutputDir, c.WaybarSubpath, paletteFile)
}

// VesktopPath is the chat client stylesheet file.
func (c Config) VesktopPath() string {
	return filepath.Join(c.OutputDir, c.VesktopSubpath, paletteFile)
}

// Options are the raw values gathered from flags, environment and config
// file. Empty strings mean "not given".
type Options struct {
	Image          string
	Variant        string
	Scheme         string
	OutputDir      string
	ThemeFile      string
	WaybarSubpath  string
	VesktopSubpath string
	Method         string
	MakeDirs       bool
	NoReload       bool
	ReloadProcess  string
	ReloadSignal   string
}

// Env looks up an environment variable.
type Env func(key string) (string, bool)

// OSEnv reads the process environment.
func OSEnv(key string) (string, bool) { return os.LookupEnv(key) }

// Resolve validates opts and fills defaults. The environment is consulted
// only for the default output directory.
func Resolve(opts Options, env Env, logger zerolog.Logger) (Config, error) {
	if env == nil {
		env = OSEnv
	}

	image := strings.TrimSpace(opts.Image)
	if image == "" {
		return Config{}, fmt.Errorf("%w: an image path is required", ErrInvalidArgument)
	}
	if err := CheckImage(image); err != nil {
		return Config{}, err
	}

	variant, ok := ParseVariant(opts.Variant)
	if !ok {
		logger.Info().
			Str("requested", opts.Variant).
			Str("variant", string(variant)).
			Msg("no variant was given or it was not recognized, using default")
	}

	isDark, ok := ParseScheme(opts.Scheme)
	if !ok {
		logger.Info().
			Str("requested", opts.Scheme).
			Msg("scheme not recognized, using dark")
	}

	method, err := seed.ParseMethod(opts.Method)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		outputDir, err = DefaultOutputDir(env)
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		ImagePath:      image,
		Variant:        variant,
		IsDark:         isDark,
		OutputDir:      outputDir,
		ThemeFile:      orDefault(opts.ThemeFile, DefaultThemeFile),
		WaybarSubpath:  orDefault(opts.WaybarSubpath, DefaultWaybarSubpath),
		VesktopSubpath: orDefault(opts.VesktopSubpath, DefaultVesktopSubpath),
		Method:         method,
		MakeDirs:       opts.MakeDirs,
		Reload:         !opts.NoReload,
		ReloadProcess:  orDefault(opts.ReloadProcess, reload.DefaultProcess),
		ReloadSignal:   orDefault(opts.ReloadSignal, reload.DefaultSignal),
	}, nil
}

// DefaultOutputDir is /home/$USER/.config, or $HOME/.config when USER is
// unset.
func DefaultOutputDir(env Env) (string, error) {
	if user, ok := env("USER"); ok && strings.TrimSpace(user) != "" {
		return filepath.Join("/home", user, ".config"), nil
	}
	if home, ok := env("HOME"); ok && strings.TrimSpace(home) != "" {
		return filepath.Join(home, ".config"), nil
	}
	return "", fmt.Errorf("%w: cannot derive the output directory, USER and HOME are unset; pass --output-dir", ErrInvalidArgument)
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

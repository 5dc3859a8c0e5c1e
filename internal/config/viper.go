package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. M3THEME_OUTPUT_DIR.
const EnvPrefix = "M3THEME"

// Setting keys. Flags share these names.
const (
	KeyImage          = "image"
	KeyVariant        = "variant"
	KeyScheme         = "scheme"
	KeyOutputDir      = "output-dir"
	KeyThemeFile      = "theme-file"
	KeyWaybarSubpath  = "waybar-subpath"
	KeyVesktopSubpath = "vesktop-subpath"
	KeyMethod         = "method"
	KeyMakeDirs       = "mkdir"
	KeyNoReload       = "no-reload"
	KeyReloadProcess  = "reload-process"
	KeyReloadSignal   = "reload-signal"
)

var settingKeys = []string{
	KeyImage,
	KeyVariant,
	KeyScheme,
	KeyOutputDir,
	KeyThemeFile,
	KeyWaybarSubpath,
	KeyVesktopSubpath,
	KeyMethod,
	KeyMakeDirs,
	KeyNoReload,
	KeyReloadProcess,
	KeyReloadSignal,
}

var envKeyReplacer = strings.NewReplacer("-", "_")

// EnvName is the variable overriding key, e.g. M3THEME_OUTPUT_DIR.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key))
}

// NewViper layers flags over M3THEME_* variables over the config file.
// An explicit configFile must exist; the default location is optional.
// Variables are read through env only.
func NewViper(flags *pflag.FlagSet, configFile string, env Env) (*viper.Viper, error) {
	if env == nil {
		env = OSEnv
	}

	v := viper.New()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	explicit := configFile != ""
	if !explicit {
		configFile = defaultConfigFile(env)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !(errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
				return nil, fmt.Errorf("%w: read config %s: %w", ErrInvalidArgument, configFile, err)
			}
		}
	}

	// v.Set outranks flags, so variables only apply to flags left unset.
	for _, key := range settingKeys {
		if flags != nil && flags.Changed(key) {
			continue
		}
		if val, ok := env(EnvName(key)); ok {
			v.Set(key, val)
		}
	}
	return v, nil
}

// OptionsFromViper reads the raw options out of v.
func OptionsFromViper(v *viper.Viper) Options {
	return Options{
		Image:          v.GetString(KeyImage),
		Variant:        v.GetString(KeyVariant),
		Scheme:         v.GetString(KeyScheme),
		OutputDir:      v.GetString(KeyOutputDir),
		ThemeFile:      v.GetString(KeyThemeFile),
		WaybarSubpath:  v.GetString(KeyWaybarSubpath),
		VesktopSubpath: v.GetString(KeyVesktopSubpath),
		Method:         v.GetString(KeyMethod),
		MakeDirs:       v.GetBool(KeyMakeDirs),
		NoReload:       v.GetBool(KeyNoReload),
		ReloadProcess:  v.GetString(KeyReloadProcess),
		ReloadSignal:   v.GetString(KeyReloadSignal),
	}
}

func defaultConfigFile(env Env) string {
	if dir, ok := env("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, "m3theme", "config.yaml")
	}
	if home, ok := env("HOME"); ok && home != "" {
		return filepath.Join(home, ".config", "m3theme", "config.yaml")
	}
	return ""
}

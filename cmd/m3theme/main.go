package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/setanarut/m3theme/internal/app"
	"github.com/setanarut/m3theme/internal/config"
	"github.com/setanarut/m3theme/internal/logging"
	"github.com/setanarut/m3theme/internal/material"
	"github.com/setanarut/m3theme/internal/swatch"
)

var appVersion = "0.2.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], config.OSEnv); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// cli holds the flag values shared by the commands.
type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	env      config.Env
	reloader app.Reloader

	configFile string
	logLevel   string
	pngPath    string
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string, env config.Env) error {
	root := newRootCmd(&cli{stdout: stdout, stderr: stderr, env: env})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "m3theme [image]",
		Short: "m3theme: Material You palettes from a wallpaper",
		Long: "m3theme picks a seed color from an image, builds a Material Design 3 theme " +
			"from it and writes the palette as CSS for the status bar and the chat client.",
		Args:              cobra.MaximumNArgs(1),
		Version:           appVersion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.initLogging,
		RunE:              c.runGenerate,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/m3theme/config.yaml)")
	pf.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringP(config.KeyVariant, "v", "", "scheme variant, see `m3theme variants` (default tonal_spot)")
	pf.StringP(config.KeyScheme, "s", "", "light or dark (default dark)")
	pf.String(config.KeyMethod, "", "seed extraction: dominantcolor, kmeans or prominent (default dominantcolor)")

	f := root.Flags()
	f.StringP(config.KeyImage, "i", "", "wallpaper image (jpg, jpeg, png or webp)")
	f.StringP(config.KeyOutputDir, "w", "", "configuration root holding the waybar and vesktop directories (default /home/$USER/.config)")
	f.String(config.KeyThemeFile, config.DefaultThemeFile, "where the full theme is written as JSON")
	f.String(config.KeyWaybarSubpath, config.DefaultWaybarSubpath, "status bar directory below the output dir")
	f.String(config.KeyVesktopSubpath, config.DefaultVesktopSubpath, "chat client theme directory below the output dir")
	f.Bool(config.KeyMakeDirs, false, "create missing output directories")
	f.Bool(config.KeyNoReload, false, "do not signal the status bar after writing")
	f.String(config.KeyReloadProcess, "", "process to signal after writing (default waybar)")
	f.String(config.KeyReloadSignal, "", "signal sent to the process (default USR2)")
	f.SetNormalizeFunc(aliasFlags)

	root.AddCommand(newVariantsCmd(c), newPreviewCmd(c))
	return root
}

// aliasFlags keeps the historical --waybar-conf-dir spelling working.
func aliasFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "waybar-conf-dir" {
		name = config.KeyOutputDir
	}
	return pflag.NormalizedName(name)
}

func newVariantsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the scheme variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range material.Variants() {
				line := string(v)
				if v == material.DefaultVariant {
					line += " (default)"
				}
				if _, err := fmt.Fprintln(c.stdout, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPreviewCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <image>",
		Short: "Print the scheme an image would produce without writing palettes",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runPreview,
	}
	cmd.Flags().StringVar(&c.pngPath, "png", "", "also save the scheme as a PNG strip")
	return cmd
}

func (c *cli) initLogging(cmd *cobra.Command, args []string) error {
	if err := logging.Init(c.stderr, c.logLevel); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidArgument, err)
	}
	return nil
}

func (c *cli) options(cmd *cobra.Command, args []string) (config.Options, error) {
	v, err := config.NewViper(cmd.Flags(), c.configFile, c.env)
	if err != nil {
		return config.Options{}, err
	}
	opts := config.OptionsFromViper(v)

	if len(args) > 0 {
		if cmd.Flags().Changed(config.KeyImage) && opts.Image != args[0] {
			return config.Options{}, fmt.Errorf("%w: give the image either as an argument or with --image, not both", config.ErrInvalidArgument)
		}
		opts.Image = args[0]
	}
	return opts, nil
}

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	opts, err := c.options(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(opts, c.env, logging.Component("config"))
	if err != nil {
		return err
	}

	appOpts := []app.Option{app.WithOutput(c.stdout, isTerminal(c.stdout))}
	if c.reloader != nil {
		appOpts = append(appOpts, app.WithReloader(c.reloader))
	}
	_, err = app.New(logging.Logger, appOpts...).Run(cmd.Context(), cfg)
	return err
}

func (c *cli) runPreview(cmd *cobra.Command, args []string) error {
	opts, err := c.options(cmd, args)
	if err != nil {
		return err
	}
	// Nothing is written, so the output directory only has to be non-empty.
	if strings.TrimSpace(opts.OutputDir) == "" {
		opts.OutputDir = "."
	}
	cfg, err := config.Resolve(opts, c.env, logging.Component("config"))
	if err != nil {
		return err
	}

	theme, err := app.New(logging.Logger).Generate(cfg)
	if err != nil {
		return err
	}

	color := isTerminal(c.stdout)
	named := append([]swatch.Named{{Name: "source", Color: theme.Source}}, swatch.SchemeColors(theme.Scheme(cfg.IsDark))...)
	if err := swatch.Print(c.stdout, named, color); err != nil {
		return err
	}

	if c.pngPath != "" {
		colors := make([]material.Color, 0, len(named))
		for _, n := range named[1:] {
			colors = append(colors, n.Color)
		}
		if err := swatch.SavePNG(colors, 32, c.pngPath); err != nil {
			return fmt.Errorf("save preview %s: %w", c.pngPath, err)
		}
		logging.Logger.Info().Str("path", c.pngPath).Msg("preview saved")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

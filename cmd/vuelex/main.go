package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	check_restart "github.com/walteh/vuelex/cmd/vuelex/check-restart"
	"github.com/walteh/vuelex/cmd/vuelex/semtok"
	"github.com/walteh/vuelex/cmd/vuelex/tokens"
	"github.com/walteh/vuelex/pkg/config"
	vdebug "github.com/walteh/vuelex/pkg/debug"
)

func main() {
	if err := run(); err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	rootCmd := newRootCommand(afero.NewOsFs())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("failed to execute command: %w", err)
	}

	return nil
}

type rootFlags struct {
	config  string
	level   string
	verbose bool
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "vuelex",
		Short:         "A restartable lexer for Vue single-file components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		rootCmd.Version = "unknown"
	} else {
		rootCmd.Version = info.Main.Version
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "config file (.hcl, .yaml or .yml), defaults to .vuelex.hcl or .vuelex.yaml in the working directory")
	rootCmd.PersistentFlags().StringVar(&flags.level, "level", "", "script language level: es5, es6 or esnext")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "debug", false, "enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := flags.setup(cmd.Context(), fs, cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}

	cmdVersion := &cobra.Command{
		Use: "raw-version",
		Run: func(cmdz *cobra.Command, args []string) {
			cmdz.Println(rootCmd.Version)
		},
		Hidden: true,
	}

	rootCmd.AddCommand(cmdVersion)

	rootCmd.AddCommand(tokens.NewTokensCommand(fs))
	rootCmd.AddCommand(check_restart.NewCheckRestartCommand(fs))
	rootCmd.AddCommand(semtok.NewSemtokCommand(fs))

	return rootCmd
}

func (f *rootFlags) setup(ctx context.Context, fs afero.Fs, cmd *cobra.Command) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := vdebug.NewLogger(cmd.ErrOrStderr(), f.verbose, !color.NoColor).
		With().Str("run_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	var cfg *config.Config
	var err error
	if f.config != "" {
		cfg, err = config.LoadConfig(fs, f.config)
	} else {
		cfg, err = config.Discover(fs, ".")
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	if f.level != "" {
		cfg = cfg.Merge(&config.Config{Level: f.level})
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("invalid --level: %w", err)
		}
	}

	zerolog.Ctx(ctx).Debug().Str("level", cfg.Level).Str("format", cfg.Format).Int("aliases", len(cfg.Aliases)).Msg("config loaded")

	return cfg.WithContext(ctx), nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/madbook/slid/internal/commands"
	"github.com/madbook/slid/internal/core/config"
	"github.com/madbook/slid/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}
	pickCmd := commands.NewPickCmd(flags)

	app := &cli.Command{
		Name:      "slid",
		Usage:     "Interactively select lines from stdin",
		UsageText: "slid [options] < input",
		Description: `Slid reads lines from stdin, presents them in a scrollable picker on the
controlling terminal, and prints the chosen lines to stdout.

Navigate with the arrow keys, toggle with enter or 's', confirm a multiline
selection with 'c', and cancel with 'q' or ctrl-c. Blank lines cannot be
selected and the cursor skips over them.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SLID_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (logging is disabled when unset)",
				Sources:     cli.EnvVars("SLID_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SLID_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Flags win over config file values.
			level, file := flags.LogLevel, flags.LogFile
			if !c.IsSet("log-level") && cfg.LogLevel != "" {
				level = cfg.LogLevel
			}
			if !c.IsSet("log-file") && cfg.LogFile != "" {
				file = cfg.LogFile
			}

			logger, closer, err := logutils.New(level, file)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown argument %q. Run 'slid --help' for usage", c.Args().First())
			}
			return pickCmd.Run(ctx, c)
		},
	}

	app.Flags = append(app.Flags, pickCmd.Flags()...)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		// stdout carries the selection, so errors go to stderr.
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

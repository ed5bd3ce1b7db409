package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/richedit/internal/commands"
	"github.com/hay-kot/richedit/internal/core/config"
	"github.com/hay-kot/richedit/internal/core/logging"
	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

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

	app := &cli.Command{
		Name:      "richedit",
		Usage:     "Edit rich-text markup in the terminal",
		UsageText: "richedit [global options] [file] | command [command options]",
		Description: `richedit edits HTML/Markdown markup buffers with formatting commands that
wrap the current selection, link and image pickers, and a rendered preview.

Run 'richedit <file>' to open the editor.
Run 'richedit apply' to apply a single command from scripts.

Rendered output is not sanitized.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("RICHEDIT_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/richedit.log)",
				Sources:     cli.EnvVars("RICHEDIT_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("RICHEDIT_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("RICHEDIT_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; the editor owns the terminal
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "richedit.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			log.Debug().Str("config", flags.ConfigPath).Str("theme", cfg.Theme).Msg("config loaded")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	editCmd := commands.NewEditCmd(flags)

	app = editCmd.Register(app)
	app = commands.NewRenderCmd(flags).Register(app)
	app = commands.NewCommandsCmd(flags).Register(app)
	app = commands.NewApplyCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register edit flags on root command
	app.Flags = append(app.Flags, editCmd.Flags()...)

	// Edit is the default action when a file is given without a subcommand
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() == 0 {
			return cli.ShowRootCommandHelp(c)
		}
		return editCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}

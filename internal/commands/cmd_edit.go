package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/media"
	"github.com/hay-kot/richedit/internal/tui"
	"github.com/hay-kot/richedit/pkg/utils"
)

type EditCmd struct {
	flags *Flags

	// flags
	field string
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a markup file in the terminal",
		UsageText: "richedit edit [--field name] <file>",
		Description: `Opens the file in the interactive editor. The file is created on first save
if it does not exist.

Formatting keys wrap the selection in markup; ctrl+k and ctrl+g open the link
and image pickers. ctrl+p toggles the rendered preview, ctrl+y copies the
selection and ctrl+s saves.

The preview renders the buffer as-is. Embedded HTML is not sanitized.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Flags returns the edit flags, also registered on the root command.
func (cmd *EditCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "field",
			Usage:       "field name recorded in log context (defaults to the file name)",
			Sources:     cli.EnvVars("RICHEDIT_FIELD"),
			Destination: &cmd.field,
		},
	}
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("missing file argument. Run 'richedit edit --help' for usage")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("edit requires an interactive terminal; use 'richedit apply' for scripted edits")
	}

	initial, err := readOptional(path)
	if err != nil {
		return err
	}

	cfg := cmd.flags.Config

	// Messages produced while the editor owns the screen are held until it exits.
	var deferred utils.DeferredWriter
	defer func() { _ = deferred.Flush(os.Stderr) }()

	lib, err := media.Load(cfg.Media, cfg.ResolvePath)
	if err != nil {
		log.Warn().Err(err).Msg("media library incomplete")
		deferred.Printf("%s", styles.TextWarningStyle.Render("media library incomplete: "+err.Error()))
	} else {
		for _, it := range lib.Rejected() {
			log.Warn().Str("url", it.URL).Msg("media item skipped")
			deferred.Printf("%s", styles.TextWarningStyle.Render(fmt.Sprintf("media item %q skipped: unusable url", it.Label)))
		}
	}

	field := cmd.field
	if field == "" {
		field = filepath.Base(path)
	}

	m := tui.New(initial, cfg, tui.Options{
		Library: lib,
		Save:    saveFile(path),
		Field:   field,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if m.Dirty() {
		deferred.Printf("%s", styles.TextWarningStyle.Render("unsaved changes to "+path+" were discarded"))
	}
	return nil
}

// readOptional reads path, treating a missing file as empty.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// saveFile returns a SaveFunc writing to path, keeping the existing file mode.
func saveFile(path string) tui.SaveFunc {
	return func(buf string) error {
		mode := os.FileMode(0o644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode().Perm()
		}

		if err := os.WriteFile(path, []byte(buf), mode); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug().Str("path", path).Int("bytes", len(buf)).Msg("buffer saved")
		return nil
	}
}

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/richedit/internal/core/logging"
	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/pkg/iojson"
)

type ApplyCmd struct {
	flags *Flags
	input iojson.InputReader

	// flags
	start int
	end   int
	url   string
	text  string
	write bool
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(flags *Flags) *ApplyCmd {
	return &ApplyCmd{flags: flags}
}

// Register adds the apply command to the application
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "apply",
		Usage:     "Apply one formatting command to a buffer",
		UsageText: "richedit apply <command> [-f file] [--start N] [--end N] [--url U --text T] [--write]",
		Description: `Runs a catalog command against the selection [start, end) of the input and
prints the new buffer and caret as JSON. Offsets are byte offsets and are
clamped to the buffer.

The link and image commands take the picker result from --url and --text.
With --write the result replaces the input file.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.IntFlag{
				Name:        "start",
				Usage:       "selection start offset",
				Destination: &cmd.start,
			},
			&cli.IntFlag{
				Name:        "end",
				Usage:       "selection end offset (defaults to start)",
				Value:       -1,
				Destination: &cmd.end,
			},
			&cli.StringFlag{
				Name:        "url",
				Usage:       "URL for the link and image commands",
				Destination: &cmd.url,
			},
			&cli.StringFlag{
				Name:        "text",
				Usage:       "link text or image alt text",
				Destination: &cmd.text,
			},
			&cli.BoolFlag{
				Name:        "write",
				Aliases:     []string{"w"},
				Usage:       "write the result back to --file",
				Destination: &cmd.write,
			},
		},
		Action: cmd.run,
	})

	return app
}

// ApplyResult is the JSON output of the apply command.
type ApplyResult struct {
	Command   editor.CommandID `json:"command"`
	Buffer    string           `json:"buffer"`
	Selection editor.Selection `json:"selection"`
	Caret     int              `json:"caret"`
}

func (cmd *ApplyCmd) run(_ context.Context, c *cli.Command) error {
	id := editor.CommandID(c.Args().First())
	if id == "" {
		return fmt.Errorf("missing command argument. Run 'richedit commands' for the list")
	}

	if cmd.write && cmd.input.Path() == "" {
		return fmt.Errorf("--write requires --file")
	}

	buf, err := cmd.input.ReadString()
	if err != nil {
		return err
	}

	end := cmd.end
	if end < 0 {
		end = cmd.start
	}

	res, err := cmd.apply(buf, id, editor.Selection{Start: cmd.start, End: end})
	if err != nil {
		_ = iojson.WriteError(c.Root().ErrWriter, err.Error(), map[string]any{"command": string(id)})
		return cli.Exit("", 1)
	}

	if cmd.write {
		if err := saveFile(cmd.input.Path())(res.Buffer); err != nil {
			return err
		}
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res)
}

// apply runs id headlessly through an editor session, answering the picker
// from the --url and --text flags.
func (cmd *ApplyCmd) apply(buf string, id editor.CommandID, sel editor.Selection) (ApplyResult, error) {
	field := cmd.input.Path()
	if field == "" {
		field = "stdin"
	}

	session := editor.NewSession(buf,
		editor.WithLogger(logging.Component("apply")),
		editor.WithField(field),
	)
	session.Select(sel)

	if err := session.Run(id); err != nil {
		return ApplyResult{}, err
	}

	if session.Pickers().Busy() {
		if cmd.url == "" {
			if err := session.ResolvePicker(editor.Cancelled()); err != nil {
				return ApplyResult{}, err
			}
			return ApplyResult{}, fmt.Errorf("command %q needs --url", id)
		}
		if err := session.ResolvePicker(editor.Chosen(cmd.url, cmd.text)); err != nil {
			return ApplyResult{}, err
		}
	}

	return ApplyResult{
		Command:   id,
		Buffer:    session.Buffer(),
		Selection: session.Selection(),
		Caret:     session.Selection().End,
	}, nil
}

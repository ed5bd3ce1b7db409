package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/richedit/internal/render"
	"github.com/hay-kot/richedit/pkg/iojson"
)

type RenderCmd struct {
	flags *Flags
	input iojson.InputReader

	// flags
	format string
	width  int
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render a markup buffer",
		UsageText: "richedit render [--format html|term] [-f file]",
		Description: `Renders the buffer exactly as stored. Markdown is converted and embedded
HTML passes through untouched: the output is NOT sanitized and must not be
shown to untrusted viewers without a sanitizer in front of it.`,
		Flags: []cli.Flag{
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (html, term)",
				Value:       "html",
				Destination: &cmd.format,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "wrap width for term output (defaults to preview.word_wrap)",
				Destination: &cmd.width,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(_ context.Context, c *cli.Command) error {
	buf, err := cmd.input.ReadString()
	if err != nil {
		return err
	}

	var r render.Renderer
	switch cmd.format {
	case "html":
		r = render.NewHTML()
	case "term":
		preview := cmd.flags.Config.Preview
		opts := []render.TerminalOption{render.WithWordWrap(preview.WordWrap)}
		if cmd.width > 0 {
			opts[0] = render.WithWordWrap(cmd.width)
		}
		if preview.Style != "" {
			opts = append(opts, render.WithStandardStyle(preview.Style))
		}
		r = render.NewTerminal(opts...)
	default:
		return fmt.Errorf("unknown format %q (want html or term)", cmd.format)
	}

	out, err := r.Render(buf)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, out)
	return err
}

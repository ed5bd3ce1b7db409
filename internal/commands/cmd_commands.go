package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/pkg/iojson"
)

type CommandsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewCommandsCmd creates a new commands command
func NewCommandsCmd(flags *Flags) *CommandsCmd {
	return &CommandsCmd{flags: flags}
}

// Register adds the commands command to the application
func (cmd *CommandsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "commands",
		Usage:     "List formatting commands and their keys",
		UsageText: "richedit commands [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// CommandInfo describes one catalog entry with its bound keys.
type CommandInfo struct {
	ID          editor.CommandID  `json:"id"`
	Label       string            `json:"label"`
	Prefix      string            `json:"prefix"`
	Suffix      string            `json:"suffix"`
	Placeholder string            `json:"placeholder,omitempty"`
	Multiline   bool              `json:"multiline,omitempty"`
	Picker      editor.PickerKind `json:"picker,omitempty"`
	Keys        []string          `json:"keys,omitempty"`
}

func (cmd *CommandsCmd) run(_ context.Context, c *cli.Command) error {
	infos := cmd.collect(editor.DefaultCatalog())

	w := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteWith(w, c.Root().ErrWriter, infos)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tLABEL\tKEYS\tINSERTS")

	for _, info := range infos {
		inserts := info.Prefix + info.Placeholder + info.Suffix
		if info.Picker != editor.PickerNone {
			inserts = info.Picker.String() + " picker"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			info.ID,
			info.Label,
			strings.Join(info.Keys, ", "),
			styles.TextMutedStyle.Render(strings.ReplaceAll(inserts, "\n", `\n`)),
		)
	}

	return tw.Flush()
}

func (cmd *CommandsCmd) collect(catalog *editor.Catalog) []CommandInfo {
	keys := map[editor.CommandID][]string{}
	if cmd.flags.Config != nil {
		for k, kb := range cmd.flags.Config.Keybindings {
			if kb.Command != "" {
				keys[kb.Command] = append(keys[kb.Command], k)
			}
		}
	}

	infos := make([]CommandInfo, 0, len(catalog.IDs()))
	for _, c := range catalog.Commands() {
		ks := keys[c.ID]
		slices.Sort(ks)
		infos = append(infos, CommandInfo{
			ID:          c.ID,
			Label:       c.Label,
			Prefix:      c.Spec.Prefix,
			Suffix:      c.Spec.Suffix,
			Placeholder: c.Spec.Placeholder,
			Multiline:   c.Spec.Multiline,
			Picker:      c.Spec.Picker,
			Keys:        ks,
		})
	}
	return infos
}

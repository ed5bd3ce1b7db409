package editor

import (
	"fmt"
	"strings"
)

// CommandID identifies a toolbar command.
type CommandID string

// Built-in command ids.
const (
	CmdBold         CommandID = "bold"
	CmdItalic       CommandID = "italic"
	CmdUnderline    CommandID = "underline"
	CmdHeading1     CommandID = "heading1"
	CmdHeading2     CommandID = "heading2"
	CmdHeading3     CommandID = "heading3"
	CmdBulletList   CommandID = "bullet-list"
	CmdOrderedList  CommandID = "ordered-list"
	CmdAlignLeft    CommandID = "align-left"
	CmdAlignCenter  CommandID = "align-center"
	CmdAlignRight   CommandID = "align-right"
	CmdAlignJustify CommandID = "align-justify"
	CmdBlockquote   CommandID = "blockquote"
	CmdCode         CommandID = "code"
	CmdTable        CommandID = "table"
	CmdLink         CommandID = "link"
	CmdImage        CommandID = "image"
)

// InsertionSpec describes the markup a command produces around the selection.
type InsertionSpec struct {
	Prefix      string `json:"prefix"`
	Suffix      string `json:"suffix"`
	Placeholder string `json:"placeholder"`
	// Multiline marks specs whose markup spans lines. The offset arithmetic
	// does not depend on it.
	Multiline bool `json:"multiline"`
	// Picker is set for commands that insert through a picker instead of
	// wrapping the selection directly.
	Picker PickerKind `json:"picker,omitempty"`
}

// Command is a catalog entry.
type Command struct {
	ID    CommandID     `json:"id"`
	Label string        `json:"label"`
	Spec  InsertionSpec `json:"spec"`
}

// Catalog is an immutable, ordered table of commands.
type Catalog struct {
	commands []Command
	byID     map[CommandID]int
}

// NewCatalog builds a catalog from commands, keeping their order. Duplicate
// ids are a programming error and panic.
func NewCatalog(commands ...Command) *Catalog {
	c := &Catalog{
		commands: make([]Command, len(commands)),
		byID:     make(map[CommandID]int, len(commands)),
	}
	copy(c.commands, commands)

	for i, cmd := range c.commands {
		if _, dup := c.byID[cmd.ID]; dup {
			panic(fmt.Sprintf("editor: duplicate command id %q", cmd.ID))
		}
		c.byID[cmd.ID] = i
	}
	return c
}

// Lookup returns the insertion spec for id.
func (c *Catalog) Lookup(id CommandID) (InsertionSpec, error) {
	i, ok := c.byID[id]
	if !ok {
		return InsertionSpec{}, fmt.Errorf("%w: %q", ErrUnknownCommand, id)
	}
	return c.commands[i].Spec, nil
}

// MustLookup is Lookup for ids wired at compile time. It panics on unknown ids.
func (c *Catalog) MustLookup(id CommandID) InsertionSpec {
	spec, err := c.Lookup(id)
	if err != nil {
		panic(err)
	}
	return spec
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id CommandID) bool {
	_, ok := c.byID[id]
	return ok
}

// Label returns the display label for id, or the id itself when unknown.
func (c *Catalog) Label(id CommandID) string {
	if i, ok := c.byID[id]; ok {
		return c.commands[i].Label
	}
	return string(id)
}

// IDs returns command ids in catalog order.
func (c *Catalog) IDs() []CommandID {
	ids := make([]CommandID, len(c.commands))
	for i, cmd := range c.commands {
		ids[i] = cmd.ID
	}
	return ids
}

// Commands returns a copy of all entries in catalog order.
func (c *Catalog) Commands() []Command {
	out := make([]Command, len(c.commands))
	copy(out, c.commands)
	return out
}

func heading(level int) InsertionSpec {
	return InsertionSpec{
		Prefix:      fmt.Sprintf("<h%d>", level),
		Suffix:      fmt.Sprintf("</h%d>", level),
		Placeholder: fmt.Sprintf("Título %d", level),
	}
}

func align(dir string) InsertionSpec {
	return InsertionSpec{
		Prefix:      fmt.Sprintf(`<p style="text-align: %s;">`, dir),
		Suffix:      "</p>",
		Placeholder: "texto alinhado",
	}
}

func list(tag string) InsertionSpec {
	return InsertionSpec{
		Prefix:      "<" + tag + ">\n  <li>",
		Suffix:      "</li>\n</" + tag + ">",
		Placeholder: "item da lista",
		Multiline:   true,
	}
}

var tableSuffix = strings.Join([]string{
	"</th>",
	"      <th>Coluna 2</th>",
	"    </tr>",
	"  </thead>",
	"  <tbody>",
	"    <tr>",
	"      <td>Célula 1</td>",
	"      <td>Célula 2</td>",
	"    </tr>",
	"  </tbody>",
	"</table>",
}, "\n")

var defaultCommands = []Command{
	{ID: CmdBold, Label: "B", Spec: InsertionSpec{Prefix: "<strong>", Suffix: "</strong>", Placeholder: "texto em negrito"}},
	{ID: CmdItalic, Label: "I", Spec: InsertionSpec{Prefix: "<em>", Suffix: "</em>", Placeholder: "texto em itálico"}},
	{ID: CmdUnderline, Label: "U", Spec: InsertionSpec{Prefix: "<u>", Suffix: "</u>", Placeholder: "texto sublinhado"}},
	{ID: CmdHeading1, Label: "H1", Spec: heading(1)},
	{ID: CmdHeading2, Label: "H2", Spec: heading(2)},
	{ID: CmdHeading3, Label: "H3", Spec: heading(3)},
	{ID: CmdBulletList, Label: "•", Spec: list("ul")},
	{ID: CmdOrderedList, Label: "1.", Spec: list("ol")},
	{ID: CmdAlignLeft, Label: "⇤", Spec: align("left")},
	{ID: CmdAlignCenter, Label: "↔", Spec: align("center")},
	{ID: CmdAlignRight, Label: "⇥", Spec: align("right")},
	{ID: CmdAlignJustify, Label: "≡", Spec: align("justify")},
	{ID: CmdBlockquote, Label: "❝", Spec: InsertionSpec{Prefix: "<blockquote>\n  ", Suffix: "\n</blockquote>", Placeholder: "citação", Multiline: true}},
	{ID: CmdCode, Label: "</>", Spec: InsertionSpec{Prefix: "<code>", Suffix: "</code>", Placeholder: "código"}},
	{
		ID:    CmdTable,
		Label: "▦",
		Spec: InsertionSpec{
			Prefix:      "<table>\n  <thead>\n    <tr>\n      <th>",
			Suffix:      tableSuffix,
			Placeholder: "Coluna 1",
			Multiline:   true,
		},
	},
	{ID: CmdLink, Label: "Link", Spec: InsertionSpec{Prefix: `<a href="">`, Suffix: "</a>", Placeholder: "texto do link", Picker: PickerLink}},
	{ID: CmdImage, Label: "Img", Spec: InsertionSpec{Prefix: `<img src="`, Suffix: `" />`, Picker: PickerMedia}},
}

var defaultCatalog = NewCatalog(defaultCommands...)

// DefaultCatalog returns the built-in command table.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"github.com/hay-kot/richedit/internal/core/config"
	"github.com/hay-kot/richedit/internal/editor"
)

// ActionType identifies the kind of action a keybinding triggers.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeCommand
	ActionTypePreview
	ActionTypeSave
	ActionTypeCopy
	ActionTypeQuit
)

// Action represents a resolved keybinding.
type Action struct {
	Type    ActionType
	Key     string
	Help    string
	Command editor.CommandID // set for ActionTypeCommand
}

// KeybindingHandler resolves key presses to actions.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
	catalog     *editor.Catalog
}

// NewKeybindingHandler creates a handler over the merged keybinding map.
func NewKeybindingHandler(keybindings map[string]config.Keybinding, catalog *editor.Catalog) *KeybindingHandler {
	return &KeybindingHandler{
		keybindings: keybindings,
		catalog:     catalog,
	}
}

// Resolve maps a key string (as produced by tea.KeyMsg.String) to an action.
func (h *KeybindingHandler) Resolve(k string) (Action, bool) {
	kb, ok := h.keybindings[k]
	if !ok {
		return Action{}, false
	}

	action := Action{Key: k, Help: kb.Help}

	if kb.Command != "" {
		action.Type = ActionTypeCommand
		action.Command = kb.Command
		if action.Help == "" {
			action.Help = string(kb.Command)
		}
		return action, true
	}

	switch kb.Action {
	case config.ActionPreview:
		action.Type = ActionTypePreview
	case config.ActionSave:
		action.Type = ActionTypeSave
	case config.ActionCopy:
		action.Type = ActionTypeCopy
	case config.ActionQuit:
		action.Type = ActionTypeQuit
	default:
		return Action{}, false
	}
	if action.Help == "" {
		action.Help = kb.Action
	}
	return action, true
}

// KeyFor returns the first key (in sorted order) bound to command id.
func (h *KeybindingHandler) KeyFor(id editor.CommandID) (string, bool) {
	for _, k := range h.sortedKeys() {
		if h.keybindings[k].Command == id {
			return k, true
		}
	}
	return "", false
}

// HelpBindings returns key.Binding values for rendering with bubbles/help.
// Built-in actions come first, followed by commands in catalog order.
func (h *KeybindingHandler) HelpBindings() []key.Binding {
	var actions, commands []key.Binding

	keys := h.sortedKeys()
	for _, k := range keys {
		action, ok := h.Resolve(k)
		if !ok || action.Type == ActionTypeCommand {
			continue
		}
		actions = append(actions, key.NewBinding(key.WithKeys(k), key.WithHelp(k, action.Help)))
	}

	for _, id := range h.catalog.IDs() {
		for _, k := range keys {
			kb := h.keybindings[k]
			if kb.Command != id {
				continue
			}
			help := kb.Help
			if help == "" {
				help = string(id)
			}
			commands = append(commands, key.NewBinding(key.WithKeys(k), key.WithHelp(k, help)))
		}
	}

	return append(actions, commands...)
}

func (h *KeybindingHandler) sortedKeys() []string {
	keys := make([]string, 0, len(h.keybindings))
	for k := range h.keybindings {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

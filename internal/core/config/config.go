// Package config handles configuration loading and validation for richedit.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/internal/core/validate"
	"github.com/hay-kot/richedit/internal/editor"
)

// Built-in action names for keybindings.
const (
	ActionPreview = "preview"
	ActionSave    = "save"
	ActionCopy    = "copy"
	ActionQuit    = "quit"
)

// MinWordWrap is the narrowest preview wrap width accepted.
const MinWordWrap = 20

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"alt+b":  {Command: editor.CmdBold, Help: "bold"},
	"alt+i":  {Command: editor.CmdItalic, Help: "italic"},
	"alt+u":  {Command: editor.CmdUnderline, Help: "underline"},
	"alt+1":  {Command: editor.CmdHeading1, Help: "heading 1"},
	"alt+2":  {Command: editor.CmdHeading2, Help: "heading 2"},
	"alt+3":  {Command: editor.CmdHeading3, Help: "heading 3"},
	"alt+l":  {Command: editor.CmdBulletList, Help: "bullet list"},
	"alt+o":  {Command: editor.CmdOrderedList, Help: "ordered list"},
	"alt+h":  {Command: editor.CmdAlignLeft, Help: "align left"},
	"alt+c":  {Command: editor.CmdAlignCenter, Help: "align center"},
	"alt+r":  {Command: editor.CmdAlignRight, Help: "align right"},
	"alt+j":  {Command: editor.CmdAlignJustify, Help: "justify"},
	"alt+q":  {Command: editor.CmdBlockquote, Help: "quote"},
	"alt+k":  {Command: editor.CmdCode, Help: "code"},
	"alt+t":  {Command: editor.CmdTable, Help: "table"},
	"ctrl+k": {Command: editor.CmdLink, Help: "link"},
	"ctrl+g": {Command: editor.CmdImage, Help: "image"},
	"ctrl+p": {Action: ActionPreview, Help: "preview"},
	"ctrl+s": {Action: ActionSave, Help: "save"},
	"ctrl+y": {Action: ActionCopy, Help: "copy"},
	"ctrl+q": {Action: ActionQuit, Help: "quit"},
}

// Config holds the application configuration.
type Config struct {
	Theme       string                `yaml:"theme"`
	Preview     PreviewConfig         `yaml:"preview"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	Media       MediaConfig           `yaml:"media"`
	DataDir     string                `yaml:"-"` // set by caller, not from config file
	ConfigDir   string                `yaml:"-"` // directory of the loaded file, for relative paths
}

// PreviewConfig controls the rendered preview.
type PreviewConfig struct {
	WordWrap int `yaml:"word_wrap"`
	// Style is an optional glamour standard style (dark, light, notty). When
	// empty the style is derived from the theme.
	Style string `yaml:"style"`
}

// MediaConfig describes where the media picker finds its choices.
type MediaConfig struct {
	BaseURL   string      `yaml:"base_url"`  // prefix joined with paths discovered in Dirs
	Dirs      []string    `yaml:"dirs"`      // directories scanned for media files
	Patterns  []string    `yaml:"patterns"`  // doublestar globs matched inside Dirs
	Items     []MediaItem `yaml:"items"`     // fixed entries always offered
	Manifests []string    `yaml:"manifests"` // YAML files holding more items
}

// MediaItem is a single media library entry.
type MediaItem struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Keybinding maps a key to either a catalog command or a built-in action.
type Keybinding struct {
	Command editor.CommandID `yaml:"command"` // catalog command id
	Action  string           `yaml:"action"`  // built-in action name (preview, save, copy, quit)
	Help    string           `yaml:"help"`    // help text shown in TUI
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		Preview: PreviewConfig{
			WordWrap: 80,
		},
		Keybindings: map[string]Keybinding{},
		Media: MediaConfig{
			Patterns: []string{"**/*.{png,jpg,jpeg,gif,webp,svg}"},
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
			cfg.ConfigDir = filepath.Dir(configPath)
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Preview.WordWrap == 0 {
		c.Preview.WordWrap = defaults.Preview.WordWrap
	}
	if len(c.Media.Patterns) == 0 {
		c.Media.Patterns = defaults.Media.Patterns
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}

	return result
}

// Validate checks that the configuration is structurally valid. Keybindings
// that name a command missing from the catalog are rejected here so that a
// miswired key fails at startup instead of silently doing nothing.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.Preview.WordWrap < MinWordWrap {
		return fmt.Errorf("preview.word_wrap must be at least %d", MinWordWrap)
	}

	catalog := editor.DefaultCatalog()
	for key, kb := range c.Keybindings {
		if err := validate.KeyNameField("keybindings", key); err != nil {
			return err
		}
		if kb.Command == "" && kb.Action == "" {
			return fmt.Errorf("keybinding %q must have either command or action", key)
		}
		if kb.Command != "" && kb.Action != "" {
			return fmt.Errorf("keybinding %q cannot have both command and action", key)
		}
		if kb.Command != "" && !catalog.Has(kb.Command) {
			return fmt.Errorf("keybinding %q: %w: %q", key, editor.ErrUnknownCommand, kb.Command)
		}
		if kb.Action != "" && !isValidAction(kb.Action) {
			return fmt.Errorf("keybinding %q has invalid action %q", key, kb.Action)
		}
	}

	for i, pattern := range c.Media.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("media.patterns[%d]: invalid glob %q", i, pattern)
		}
	}

	for i, item := range c.Media.Items {
		if err := validate.URLField(fmt.Sprintf("media.items[%d].url", i), item.URL); err != nil {
			return err
		}
	}

	return nil
}

// ResolvePath resolves p relative to the config file directory.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) || c.ConfigDir == "" {
		return p
	}
	return filepath.Join(c.ConfigDir, p)
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "richedit.log")
}

func isValidAction(action string) bool {
	switch action {
	case ActionPreview, ActionSave, ActionCopy, ActionQuit:
		return true
	default:
		return false
	}
}

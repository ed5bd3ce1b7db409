package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/richedit/internal/editor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, 80, cfg.Preview.WordWrap)
	assert.Equal(t, editor.CmdBold, cfg.Keybindings["alt+b"].Command)
	assert.Equal(t, ActionPreview, cfg.Keybindings["ctrl+p"].Action)
	assert.Equal(t, ActionCopy, cfg.Keybindings["ctrl+y"].Action)
}

func TestLoad_UserOverrides(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
preview:
  word_wrap: 100
keybindings:
  "alt+b":
    command: italic
    help: italic
  "f5":
    action: preview
    help: preview
media:
  base_url: /uploads
  dirs: [uploads]
  items:
    - label: Brasão
      url: https://portal.example/brasao.png
`)

	cfg, err := Load(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 100, cfg.Preview.WordWrap)
	assert.Equal(t, editor.CmdItalic, cfg.Keybindings["alt+b"].Command)
	assert.Equal(t, ActionPreview, cfg.Keybindings["f5"].Action)
	assert.Equal(t, editor.CmdItalic, cfg.Keybindings["alt+i"].Command, "defaults kept")

	expectedMedia := MediaConfig{
		BaseURL:  "/uploads",
		Dirs:     []string{"uploads"},
		Patterns: DefaultConfig().Media.Patterns,
		Items:    []MediaItem{{Label: "Brasão", URL: "https://portal.example/brasao.png"}},
	}
	opts := cmpopts.EquateEmpty()
	require.True(t, cmp.Equal(expectedMedia, cfg.Media, opts), "%s", cmp.Diff(expectedMedia, cfg.Media, opts))
	assert.Equal(t, filepath.Join(filepath.Dir(path), "uploads"), cfg.ResolvePath("uploads"))
}

func TestLoad_UnknownCommandFailsLoudly(t *testing.T) {
	path := writeConfig(t, `
keybindings:
  "alt+s":
    command: strikethrough
`)

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, editor.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "strikethrough")
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "theme: [unterminated")

	_, err := Load(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "empty data dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantErr: "data directory cannot be empty",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Theme = "solarized-neon" },
			wantErr: "unknown theme",
		},
		{
			name:    "word wrap too small",
			mutate:  func(c *Config) { c.Preview.WordWrap = 5 },
			wantErr: "word_wrap must be at least",
		},
		{
			name: "keybinding without target",
			mutate: func(c *Config) {
				c.Keybindings["x"] = Keybinding{Help: "nothing"}
			},
			wantErr: "must have either command or action",
		},
		{
			name: "keybinding with both targets",
			mutate: func(c *Config) {
				c.Keybindings["x"] = Keybinding{Command: editor.CmdBold, Action: ActionSave}
			},
			wantErr: "cannot have both",
		},
		{
			name: "invalid action",
			mutate: func(c *Config) {
				c.Keybindings["x"] = Keybinding{Action: "explode"}
			},
			wantErr: "invalid action",
		},
		{
			name:    "invalid glob",
			mutate:  func(c *Config) { c.Media.Patterns = []string{"[unclosed"} },
			wantErr: "invalid glob",
		},
		{
			name: "malformed key",
			mutate: func(c *Config) {
				c.Keybindings["ctrl+"] = Keybinding{Command: editor.CmdBold}
			},
			wantErr: "empty modifier",
		},
		{
			name:    "media item without url",
			mutate:  func(c *Config) { c.Media.Items = []MediaItem{{Label: "x"}} },
			wantErr: "url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

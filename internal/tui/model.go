package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/richedit/internal/core/config"
	"github.com/hay-kot/richedit/internal/core/logging"
	"github.com/hay-kot/richedit/internal/editor"
	"github.com/hay-kot/richedit/internal/media"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateEditing UIState = iota
	statePreviewing
	statePicking
)

// SaveFunc persists the buffer.
type SaveFunc func(buf string) error

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// Options configures the editor model.
type Options struct {
	Library  *media.Library    // media picker choices (optional)
	Renderer WidthRenderer     // preview renderer; built from config when nil
	Save     SaveFunc          // ctrl+s target; nil disables saving
	Copy     ClipboardFunc     // defaults to clipboard.WriteAll
	OnChange editor.ChangeFunc // called after every buffer change (optional)
	Field    string            // field name added to log context (optional)
	Catalog  *editor.Catalog   // defaults to editor.DefaultCatalog
	Logger   *zerolog.Logger   // defaults to the "tui" component logger
}

// Model is the Bubble Tea model for the editor shell: toolbar, edit pane or
// preview, status bar and picker dialogs around one editor.Session.
type Model struct {
	cfg     *config.Config
	session *editor.Session
	handler *KeybindingHandler
	pane    *EditPane
	preview *PreviewPane
	modals  *ModalCoordinator
	help    help.Model
	save    SaveFunc
	copy    ClipboardFunc
	logger  zerolog.Logger

	dirty     bool
	quitArmed bool
	notice    string
	noticeErr bool

	width, height int
}

// New creates the editor model seeded with initial.
func New(initial string, cfg *config.Config, opts Options) *Model {
	logger := logging.Component("tui")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = editor.DefaultCatalog()
	}

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = newTerminalRenderer(cfg.Preview)
	}

	m := &Model{
		cfg:     cfg,
		handler: NewKeybindingHandler(cfg.Keybindings, catalog),
		pane:    NewEditPane(),
		preview: NewPreviewPane(renderer, logger),
		modals:  NewModalCoordinator(opts.Library, logger),
		help:    help.New(),
		save:    opts.Save,
		copy:    copyFn,
		logger:  logger,
	}

	sessionOpts := []editor.SessionOption{
		editor.WithCatalog(catalog),
		editor.WithSurface(m.pane),
		editor.WithPickerSurface(m.modals),
		editor.WithLogger(logger),
		editor.WithChangeFunc(func(buf string) {
			m.dirty = true
			if opts.OnChange != nil {
				opts.OnChange(buf)
			}
		}),
	}
	if opts.Field != "" {
		sessionOpts = append(sessionOpts, editor.WithField(opts.Field))
	}

	m.session = editor.NewSession(initial, sessionOpts...)
	return m
}

// Session returns the underlying editing session.
func (m *Model) Session() *editor.Session { return m.session }

// Buffer returns the current buffer.
func (m *Model) Buffer() string { return m.session.Buffer() }

// Dirty reports whether the buffer changed since the last save.
func (m *Model) Dirty() bool { return m.dirty }

// Notice returns the status bar message.
func (m *Model) Notice() string { return m.notice }

func (m *Model) state() UIState {
	switch {
	case m.modals.Active():
		return statePicking
	case m.session.Mode() == editor.ModePreview:
		return statePreviewing
	default:
		return stateEditing
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.setSize(msg.Width, msg.Height)
		return m, nil
	}

	if m.state() == statePicking {
		if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.updatePicker(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKey(msg)
	}

	if m.state() == statePreviewing {
		return m, m.preview.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return tea.Quit
	}

	if action, ok := m.handler.Resolve(keyStr); ok {
		if action.Type != ActionTypeQuit {
			m.quitArmed = false
		}
		return m.dispatch(action)
	}
	m.quitArmed = false

	if m.state() == statePreviewing {
		return m.preview.Update(msg)
	}

	m.handleEditKey(msg, keyStr)
	return nil
}

func (m *Model) dispatch(action Action) tea.Cmd {
	switch action.Type {
	case ActionTypeCommand:
		return m.runCommand(action.Command)
	case ActionTypePreview:
		m.toggleMode()
	case ActionTypeSave:
		m.saveBuffer()
	case ActionTypeCopy:
		m.copySelection()
	case ActionTypeQuit:
		if m.dirty && !m.quitArmed {
			m.quitArmed = true
			m.setNotice("unsaved changes, press again to quit", false)
			return nil
		}
		return tea.Quit
	}
	return nil
}

func (m *Model) runCommand(id editor.CommandID) tea.Cmd {
	if err := m.session.Run(id); err != nil {
		m.reportError(err)
		return nil
	}

	m.clearNotice()
	if m.modals.Active() {
		m.pane.Blur()
		return m.modals.TakeInit()
	}
	return nil
}

func (m *Model) toggleMode() {
	if m.session.ToggleMode() == editor.ModePreview {
		m.pane.Blur()
		m.preview.Refresh(m.session.Buffer())
	}
	m.clearNotice()
}

func (m *Model) saveBuffer() {
	if m.save == nil {
		m.setNotice("nothing to save to", true)
		return
	}
	if err := m.save(m.session.Buffer()); err != nil {
		m.logger.Error().Err(err).Msg("save failed")
		m.setNotice(fmt.Sprintf("save failed: %v", err), true)
		return
	}
	m.dirty = false
	m.setNotice("saved", false)
}

// copySelection copies the selected text, or the whole buffer when nothing
// is selected. The buffer is not touched, so it works in preview too.
func (m *Model) copySelection() {
	buf := m.session.Buffer()
	sel := m.session.Selection().Clamp(buf)

	text := buf
	if !sel.Empty() {
		text = buf[sel.Start:sel.End]
	}
	if text == "" {
		m.setNotice("nothing to copy", false)
		return
	}

	if err := m.copy(text); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		m.setNotice("clipboard unavailable", true)
		return
	}
	m.setNotice(fmt.Sprintf("copied %d bytes", len(text)), false)
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	cmd, res, done := m.modals.Update(msg)
	if !done {
		return cmd
	}
	m.finishPicker(res)
	return cmd
}

// finishPicker hands a settled picker result to the session.
func (m *Model) finishPicker(res editor.PickerResult) {
	if err := m.session.ResolvePicker(res); err != nil {
		m.reportError(err)
		return
	}
	if res.Cancelled {
		m.setNotice("cancelled", false)
		return
	}
	m.clearNotice()
}

func (m *Model) handleEditKey(msg tea.KeyMsg, keyStr string) {
	buf := m.session.Buffer()

	switch keyStr {
	case "left", "right", "home", "end", "up", "down":
		m.move(buf, keyStr, false)
		return
	case "shift+left", "shift+right", "shift+home", "shift+end", "shift+up", "shift+down":
		m.move(buf, keyStr[len("shift+"):], true)
		return
	case "ctrl+a":
		m.pane.SelectAll(buf)
		m.session.Select(m.pane.Selection())
		return
	}

	var err error
	switch msg.Type {
	case tea.KeyBackspace:
		err = m.session.DeleteBackward()
	case tea.KeyDelete:
		err = m.session.DeleteForward()
	case tea.KeyEnter:
		err = m.session.Insert("\n")
	case tea.KeyTab:
		err = m.session.Insert("\t")
	case tea.KeySpace:
		err = m.session.Insert(" ")
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		err = m.session.Insert(string(msg.Runes))
	default:
		return
	}

	if err != nil {
		m.reportError(err)
		return
	}
	m.clearNotice()
}

var motions = map[string]Motion{
	"left":  MotionLeft,
	"right": MotionRight,
	"home":  MotionHome,
	"end":   MotionEnd,
	"up":    MotionUp,
	"down":  MotionDown,
}

func (m *Model) move(buf, name string, extend bool) {
	m.pane.Move(buf, motions[name], extend)
	m.session.Select(m.pane.Selection())
}

func (m *Model) reportError(err error) {
	if editor.IsRefusal(err) {
		m.setNotice(err.Error(), false)
		return
	}
	if !errors.Is(err, editor.ErrUnknownCommand) {
		m.logger.Error().Err(err).Msg("editor action failed")
	}
	m.setNotice(err.Error(), true)
}

func (m *Model) setNotice(s string, isErr bool) {
	m.notice = s
	m.noticeErr = isErr
}

func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

func (m *Model) setSize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w

	// toolbar and status bar take two lines each, help one, the pane border two
	body := max(h-5, 1)
	m.pane.SetSize(max(w-2, 1), max(body-2, 1))
	m.preview.SetSize(w, body)
	m.modals.SetSize(w, h)
}

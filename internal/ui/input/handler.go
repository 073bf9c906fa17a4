package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"usersearch/internal/ui/input/types"
)

// Handler turns key presses into actions. It owns the text field; every
// keystroke that changes the field reports its full value.
type Handler struct {
	keys      KeyMap
	textInput *textinput.Model
}

// New creates a handler with a field bounded to maxLen runes
func New(maxLen int, placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = maxLen
	ti.Focus()

	return &Handler{
		keys:      DefaultKeyMap(),
		textInput: &ti,
	}
}

// HandleKey processes a key message and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, nil

	case key.Matches(msg, h.keys.Clear):
		if ctx.Query() == "" && h.textInput.Value() == "" {
			return nil, nil
		}
		h.textInput.Reset()
		return []types.Action{types.ClearAction{}}, nil

	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, nil

	case key.Matches(msg, h.keys.Up):
		if ctx.SuggestionsVisible() {
			return []types.Action{types.NavigateAction{Direction: "up"}}, nil
		}
		return nil, nil

	case key.Matches(msg, h.keys.Down):
		if ctx.SuggestionsVisible() {
			return []types.Action{types.NavigateAction{Direction: "down"}}, nil
		}
		return nil, nil

	case key.Matches(msg, h.keys.Select):
		if ctx.SuggestionsVisible() {
			return []types.Action{types.SelectAction{Index: -1}}, nil
		}
		return nil, nil

	case key.Matches(msg, h.keys.Details):
		if ctx.SuggestionsVisible() {
			return []types.Action{types.OpenDetailsAction{}}, nil
		}
		return nil, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// Update handles non-keyboard messages for the text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// SetValue replaces the field content, e.g. after a suggestion is selected
func (h *Handler) SetValue(s string) {
	h.textInput.SetValue(s)
	h.textInput.CursorEnd()
}

// Value returns the field content
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetWidth sets the visible width of the field
func (h *Handler) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	h.textInput.Width = w
}

// View renders the field
func (h *Handler) View() string {
	return h.textInput.View()
}

// Keys returns the key bindings
func (h *Handler) Keys() KeyMap {
	return h.keys
}

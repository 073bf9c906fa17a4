package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"usersearch/internal/domain"
)

const (
	// SearchGlyph is shown in the input while it is empty
	SearchGlyph = "🔍"
	// ClearMarker is shown in the input while it holds text
	ClearMarker = "✕"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Input         string // rendered text input
	Query         string
	Loading       bool
	Spinner       string // rendered spinner frame
	Error         string // user-facing message; empty when there is no error
	Suggestions   []domain.User
	Cursor        int
	Help          string // rendered help footer
	StatusMessage string
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	listTop int // screen row of the first suggestion in the last render, -1 if hidden
	items   int
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles:  NewStyles(),
		listTop: -1,
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view: title, input, then at most one of the
// loading indicator, the error banner and the suggestion dropdown.
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")
	content.WriteString(r.RenderInput(state.Input, state.Query, state.Width))
	content.WriteString("\n")

	r.listTop = -1
	r.items = 0

	switch {
	case state.Loading:
		content.WriteString(r.styles.Loader.Render(state.Spinner + " Loading..."))
		content.WriteString("\n")
	case state.Error != "":
		content.WriteString(r.styles.ErrorBanner.Render("Error: " + state.Error))
		content.WriteString("\n")
	case state.Query != "" && len(state.Suggestions) > 0:
		// Main padding top + lines so far + dropdown top border
		r.listTop = r.styles.Main.GetPaddingTop() + strings.Count(content.String(), "\n") + 1
		r.items = len(state.Suggestions)
		content.WriteString(r.RenderSuggestions(state.Suggestions, state.Query, state.Cursor))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.Help != "" {
		// Push help to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - r.styles.Main.GetVerticalPadding()
		if paddingNeeded := availableLines - currentLines; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString(r.styles.Help.Render(state.Help))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// ItemAt maps a screen row from the last render to a suggestion index
func (r *Renderer) ItemAt(y int) (int, bool) {
	if r.listTop < 0 {
		return 0, false
	}
	i := y - r.listTop
	if i < 0 || i >= r.items {
		return 0, false
	}
	return i, true
}

// RenderInput renders the bounded text field with its right-hand affordance:
// a clear marker while it holds text, the search glyph otherwise.
func (r *Renderer) RenderInput(input, query string, width int) string {
	affordance := r.styles.SearchGlyph.Render(SearchGlyph)
	if query != "" {
		affordance = r.styles.ClearButton.Render(ClearMarker)
	}

	line := input
	if width > 0 {
		// Right-align the affordance inside the box
		inner := width - r.styles.Main.GetHorizontalPadding() - r.styles.InputBox.GetHorizontalFrameSize()
		if gap := inner - lipgloss.Width(input) - lipgloss.Width(affordance); gap > 0 {
			line = input + strings.Repeat(" ", gap)
		} else {
			line = input + " "
		}
	} else {
		line = input + " "
	}

	return r.styles.InputBox.Render(line + affordance)
}

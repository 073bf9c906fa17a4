package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"usersearch/internal/config"
	"usersearch/internal/domain"
	"usersearch/internal/ui/state"
	"usersearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	config  *config.Config
	width   int
	height  int
	help    help.Model
	keys    help.KeyMap
	input   string
	spinner string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
		keys:   keys,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// UpdateTextInput sets the rendered text field
func (vm *ViewModel) UpdateTextInput(rendered string) {
	vm.input = rendered
}

// UpdateSpinner sets the rendered spinner frame
func (vm *ViewModel) UpdateSpinner(frame string) {
	vm.spinner = frame
}

// BuildViewState creates a ViewState for rendering. Loading, the error and
// the suggestion list are mutually exclusive.
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Title:         vm.config.UISettings.Title,
		Input:         vm.input,
		Query:         vm.state.Query,
		Cursor:        vm.state.Cursor,
		Help:          vm.help.View(vm.keys),
		StatusMessage: vm.state.StatusMessage,
	}

	switch vm.state.Status {
	case domain.StatusLoading:
		vs.Loading = true
		vs.Spinner = vm.spinner
	case domain.StatusError:
		vs.Error = vm.state.ErrMessage
	default:
		if vm.state.SuggestionsVisible() {
			vs.Suggestions = vm.state.Suggestions
		}
	}

	return vs
}

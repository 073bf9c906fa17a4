package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"usersearch/internal/config"
	"usersearch/internal/debounce"
	"usersearch/internal/directory"
	"usersearch/internal/eventbus"
	"usersearch/internal/ui/coordinator"
	"usersearch/internal/ui/input"
	inputtypes "usersearch/internal/ui/input/types"
	"usersearch/internal/ui/state"
	"usersearch/internal/ui/viewmodels"
	"usersearch/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized state

	// Handlers
	coord        *coordinator.Coordinator // query and fetch lifecycle
	inputHandler *input.Handler           // input handling
	viewModel    *viewmodels.ViewModel    // view model for rendering
	renderer     *views.Renderer          // view renderer
	helpRenderer *HelpRenderer            // pager content
	pager        *PagerOps                // ov pager
	spinner      spinner.Model
	spinning     bool // a spinner tick is in flight

	// Pager function, replaced in tests
	showPager func(content string) error
}

// NewModel creates a new UI model. ctx bounds every directory fetch.
func NewModel(ctx context.Context, cfg *config.Config, fetcher directory.Fetcher, bus eventbus.EventBus) *Model {
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		config: cfg,
		state:  appState,
		coord: coordinator.New(ctx, appState, fetcher, bus, coordinator.Options{
			Delay:          cfg.DebounceDelay(),
			MaxQueryLength: cfg.MaxQueryLength,
			MaxSuggestions: cfg.UISettings.MaxSuggestions,
		}),
		inputHandler: input.New(cfg.MaxQueryLength, cfg.UISettings.Placeholder),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
		spinner:      sp,
	}
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.inputHandler.Keys())
	m.showPager = m.pager.Show

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// State exposes the widget state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		// Leave room for the box frame, the main padding and the affordance
		m.inputHandler.SetWidth(msg.Width - 12)
		return m, nil

	case tea.KeyMsg:
		// Handle input through the handler
		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{state: m.state})

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		i, ok := m.renderer.ItemAt(msg.Y)
		if !ok || !m.state.SuggestionsVisible() {
			return m, nil
		}
		return m, m.selectSuggestion(i)

	case debounce.Msg[string]:
		cmd := m.coord.HandleDebounced(msg)
		return m, tea.Batch(cmd, m.startSpinner())

	case coordinator.FetchResultMsg:
		m.coord.HandleFetchResult(msg)
		return m, nil

	case spinner.TickMsg:
		// Stop re-arming once the latest fetch has settled
		if !m.state.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Error showing %s in pager: %v", msg.what, msg.err)
			m.state.StatusMessage = "Could not open " + msg.what
			return m, clearStatusAfter(statusTimeout)
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	m.viewModel.UpdateTextInput(m.inputHandler.View())
	m.viewModel.UpdateSpinner(m.spinner.View())
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		return m.coord.OnQueryChange(a.Text)

	case inputtypes.ClearAction:
		return m.coord.OnClear()

	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.coord.MoveCursor(-1)
		case "down":
			m.coord.MoveCursor(1)
		}
		return nil

	case inputtypes.SelectAction:
		if a.Index < 0 {
			cmd := m.coord.SelectHighlighted()
			m.inputHandler.SetValue(m.coord.Query())
			return cmd
		}
		return m.selectSuggestion(a.Index)

	case inputtypes.OpenDetailsAction:
		u, ok := m.state.Highlighted()
		if !ok {
			return nil
		}
		return m.openPager("details for "+u.Name, m.helpRenderer.RenderUserDetails(u, m.state.Width))

	case inputtypes.ToggleHelpAction:
		return m.openPager("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// startSpinner starts the loading animation unless it is already running
func (m *Model) startSpinner() tea.Cmd {
	if !m.state.Loading() || m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) selectSuggestion(i int) tea.Cmd {
	if i < 0 || i >= len(m.state.Suggestions) {
		return nil
	}
	cmd := m.coord.OnSuggestionSelect(m.state.Suggestions[i].Name)
	m.inputHandler.SetValue(m.coord.Query())
	return cmd
}

// openPager returns a command that shows content in the pager
func (m *Model) openPager(what, content string) tea.Cmd {
	show := m.showPager
	return func() tea.Msg {
		return pagerMsg{what: what, err: show(content)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// modelContext exposes model state to the input handler
type modelContext struct {
	state *state.AppState
}

func (c modelContext) Query() string            { return c.state.Query }
func (c modelContext) SuggestionsVisible() bool { return c.state.SuggestionsVisible() }

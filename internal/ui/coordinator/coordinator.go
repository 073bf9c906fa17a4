package coordinator

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"usersearch/internal/debounce"
	"usersearch/internal/directory"
	"usersearch/internal/domain"
	"usersearch/internal/eventbus"
	"usersearch/internal/ui/logic"
	"usersearch/internal/ui/state"
)

// FetchResultMsg is delivered when a directory fetch settles
type FetchResultMsg struct {
	Seq   uint64
	Query string
	Users []domain.User
	Err   error
}

// Options tunes the coordinator
type Options struct {
	Delay          time.Duration // debounce quiet period
	MaxQueryLength int           // runes; 0 means unbounded
	MaxSuggestions int           // 0 means unlimited
}

// Coordinator owns the query, derives the debounced query from it and drives
// directory fetches. Every method runs on the Bubble Tea update loop; the
// only work done elsewhere is inside the returned commands.
type Coordinator struct {
	state     *state.AppState
	debounced *debounce.Value[string]
	fetcher   directory.Fetcher
	bus       eventbus.EventBus
	ctx       context.Context
	opts      Options
}

// New creates a coordinator writing into appState. ctx bounds every fetch.
// bus may be nil.
func New(ctx context.Context, appState *state.AppState, fetcher directory.Fetcher, bus eventbus.EventBus, opts Options) *Coordinator {
	return &Coordinator{
		state:     appState,
		debounced: debounce.NewValue(""),
		fetcher:   fetcher,
		bus:       bus,
		ctx:       ctx,
		opts:      opts,
	}
}

// State exposes the state the coordinator writes into
func (c *Coordinator) State() *state.AppState {
	return c.state
}

// Query returns the raw query
func (c *Coordinator) Query() string {
	return c.state.Query
}

// Suggestions returns the current suggestion set
func (c *Coordinator) Suggestions() []domain.User {
	return c.state.Suggestions
}

// Loading reports whether the latest fetch is outstanding
func (c *Coordinator) Loading() bool {
	return c.state.Loading()
}

// Error returns the user-facing error message, if any
func (c *Coordinator) Error() (string, bool) {
	return c.state.ErrMessage, c.state.Status == domain.StatusError
}

// OnQueryChange records a keystroke. Errors clear immediately; the fetch
// waits for the quiet period.
func (c *Coordinator) OnQueryChange(text string) tea.Cmd {
	text = c.bound(text)
	if text == c.state.Query && text == c.debounced.Pending() {
		return nil
	}
	c.state.Query = text
	c.state.ClearError()
	c.state.Cursor = 0
	c.publish(eventbus.QueryChangedEvent{Query: text})
	return c.arm(text)
}

// OnClear empties the query and the suggestion set
func (c *Coordinator) OnClear() tea.Cmd {
	c.state.Query = ""
	c.state.SetSuggestions(nil)
	c.state.ResultsQuery = ""
	c.state.ClearError()
	c.publish(eventbus.QueryClearedEvent{})
	return c.arm("")
}

// OnSuggestionSelect overwrites the raw query with the chosen name. The new
// query goes through the debounce like any edit and triggers its own fetch.
func (c *Coordinator) OnSuggestionSelect(name string) tea.Cmd {
	name = c.bound(name)
	c.state.Query = name
	c.state.ClearError()
	c.state.Cursor = 0
	c.publish(eventbus.SuggestionSelectedEvent{Name: name})
	return c.arm(name)
}

// MoveCursor shifts the highlighted suggestion by delta, wrapping around
func (c *Coordinator) MoveCursor(delta int) {
	n := len(c.state.Suggestions)
	if n == 0 || !c.state.SuggestionsVisible() {
		return
	}
	c.state.Cursor = ((c.state.Cursor+delta)%n + n) % n
}

// SelectHighlighted selects the suggestion under the cursor
func (c *Coordinator) SelectHighlighted() tea.Cmd {
	u, ok := c.state.Highlighted()
	if !ok {
		return nil
	}
	return c.OnSuggestionSelect(u.Name)
}

// HandleDebounced reacts to a debounce emission
func (c *Coordinator) HandleDebounced(msg debounce.Msg[string]) tea.Cmd {
	query, outcome := c.debounced.Settle(msg.Token)
	switch outcome {
	case debounce.Stale:
		return nil
	case debounce.Unchanged:
		// Settling back on a query whose results are not on screen, because
		// its fetch failed or the box was cleared meanwhile, fetches it again
		if query == "" || query == c.state.ResultsQuery || c.state.Status == domain.StatusLoading {
			return nil
		}
	}

	c.state.Debounced = query

	if query == "" {
		// Supersede any outstanding fetch
		c.state.Seq++
		c.state.SetSuggestions(nil)
		c.state.ResultsQuery = ""
		c.state.Status = domain.StatusIdle
		c.state.ErrMessage = ""
		c.state.FailedQuery = ""
		return nil
	}

	c.state.Seq++
	c.state.Status = domain.StatusLoading
	c.state.ErrMessage = ""
	c.publish(eventbus.FetchStartedEvent{Seq: c.state.Seq, Query: query})
	return c.fetch(c.state.Seq, query)
}

// HandleFetchResult applies a settled fetch. Results of superseded fetches
// are dropped so only the most recently requested query is ever visible.
func (c *Coordinator) HandleFetchResult(msg FetchResultMsg) {
	if msg.Seq != c.state.Seq {
		log.Printf("Discarding stale directory result #%d for %q (latest #%d)", msg.Seq, msg.Query, c.state.Seq)
		c.publish(eventbus.FetchDiscardedEvent{Seq: msg.Seq, Query: msg.Query})
		return
	}

	if msg.Err != nil {
		log.Printf("Error fetching data from directory for %q: %v", msg.Query, msg.Err)
		c.state.Status = domain.StatusError
		c.state.ErrMessage = domain.FetchErrorMessage
		c.state.FailedQuery = msg.Query
		c.state.ResultsQuery = ""
		c.publish(eventbus.FetchFailedEvent{Seq: msg.Seq, Query: msg.Query, Err: msg.Err})
		return
	}

	matches := logic.Limit(logic.FilterByName(msg.Users, msg.Query), c.opts.MaxSuggestions)
	c.state.SetSuggestions(matches)
	c.state.ResultsQuery = msg.Query
	c.state.Status = domain.StatusIdle
	c.state.ErrMessage = ""
	c.state.FailedQuery = ""
	c.publish(eventbus.FetchSucceededEvent{
		Seq:     msg.Seq,
		Query:   msg.Query,
		Total:   len(msg.Users),
		Matches: len(matches),
	})
}

func (c *Coordinator) arm(text string) tea.Cmd {
	tok := c.debounced.Set(text)
	return debounce.Tick(c.opts.Delay, tok, text)
}

func (c *Coordinator) fetch(seq uint64, query string) tea.Cmd {
	ctx := c.ctx
	fetcher := c.fetcher
	return func() tea.Msg {
		users, err := fetcher.Fetch(ctx, query)
		return FetchResultMsg{Seq: seq, Query: query, Users: users, Err: err}
	}
}

func (c *Coordinator) bound(text string) string {
	if c.opts.MaxQueryLength <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= c.opts.MaxQueryLength {
		return text
	}
	return string(runes[:c.opts.MaxQueryLength])
}

func (c *Coordinator) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

package state

import (
	"usersearch/internal/domain"
)

// AppState contains all the search widget state. It lives as long as the
// program and is only touched from the update loop.
type AppState struct {
	// Query data
	Query     string // raw text in the input field
	Debounced string // last query that stayed unchanged for the quiet period

	// Results
	Suggestions  []domain.User // filtered records of the latest settled fetch
	Cursor       int           // highlighted suggestion
	ResultsQuery string        // query the suggestions were fetched for; empty once cleared

	// Fetch lifecycle
	Status      domain.Status
	ErrMessage  string // user-facing message, set only while Status is StatusError
	Seq         uint64 // sequence number of the most recently issued fetch
	FailedQuery string // debounced query whose fetch failed last

	// UI state
	Width         int
	Height        int
	StatusMessage string // transient status bar message
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Suggestions: make([]domain.User, 0),
		Status:      domain.StatusIdle,
	}
}

// Loading reports whether the latest fetch is still outstanding
func (s *AppState) Loading() bool {
	return s.Status == domain.StatusLoading
}

// SuggestionsVisible reports whether the dropdown may be shown
func (s *AppState) SuggestionsVisible() bool {
	return s.Query != "" &&
		s.Status == domain.StatusIdle &&
		len(s.Suggestions) > 0
}

// ClearError drops any error without touching a fetch in progress
func (s *AppState) ClearError() {
	s.ErrMessage = ""
	if s.Status == domain.StatusError {
		s.Status = domain.StatusIdle
	}
}

// SetSuggestions replaces the suggestion set and keeps the cursor in range
func (s *AppState) SetSuggestions(users []domain.User) {
	if users == nil {
		users = make([]domain.User, 0)
	}
	s.Suggestions = users
	s.ClampCursor()
}

// ClampCursor keeps the cursor within the suggestion set
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Suggestions) {
		s.Cursor = len(s.Suggestions) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// Highlighted returns the suggestion under the cursor
func (s *AppState) Highlighted() (domain.User, bool) {
	if !s.SuggestionsVisible() || s.Cursor >= len(s.Suggestions) {
		return domain.User{}, false
	}
	return s.Suggestions[s.Cursor], true
}

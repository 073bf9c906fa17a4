package types

// Text input actions

// UpdateTextAction reports the full field value after a keystroke
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ClearAction empties the field
type ClearAction struct{}

func (a ClearAction) Type() string { return "clear" }

// Suggestion actions

// NavigateAction moves the suggestion cursor
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SelectAction picks a suggestion. Index -1 means the highlighted one.
type SelectAction struct {
	Index int
}

func (a SelectAction) Type() string { return "select" }

// OpenDetailsAction shows the highlighted record in the pager
type OpenDetailsAction struct{}

func (a OpenDetailsAction) Type() string { return "open_details" }

// Other actions

// ToggleHelpAction shows the key reference in the pager
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// QuitAction ends the program
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

package ui

// pagerMsg contains the result of showing content in the pager
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the transient status message
type clearStatusMsg struct{}

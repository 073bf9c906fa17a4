package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged       EventType = "QueryChanged"
	EventQueryCleared       EventType = "QueryCleared"
	EventFetchStarted       EventType = "FetchStarted"
	EventFetchSucceeded     EventType = "FetchSucceeded"
	EventFetchFailed        EventType = "FetchFailed"
	EventFetchDiscarded     EventType = "FetchDiscarded"
	EventSuggestionSelected EventType = "SuggestionSelected"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted on every edit of the raw query
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// QueryClearedEvent is emitted when the user clears the input
type QueryClearedEvent struct{}

func (e QueryClearedEvent) Type() EventType { return EventQueryCleared }

// FetchStartedEvent is emitted when a debounced query triggers a fetch
type FetchStartedEvent struct {
	Seq   uint64
	Query string
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when the latest fetch settles successfully
type FetchSucceededEvent struct {
	Seq     uint64
	Query   string
	Total   int // records returned by the directory
	Matches int // records left after filtering
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent carries the underlying failure for diagnostics only
type FetchFailedEvent struct {
	Seq   uint64
	Query string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// FetchDiscardedEvent is emitted when a superseded fetch settles
type FetchDiscardedEvent struct {
	Seq   uint64
	Query string
}

func (e FetchDiscardedEvent) Type() EventType { return EventFetchDiscarded }

// SuggestionSelectedEvent is emitted when a suggestion is picked
type SuggestionSelectedEvent struct {
	Name string
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// ConfigLoadedEvent is emitted after the configuration is read
type ConfigLoadedEvent struct {
	Path     string
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

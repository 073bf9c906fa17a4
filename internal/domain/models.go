package domain

// User is a single directory record. Name is the only attribute used for
// matching; the rest is shown in the details pager.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Status is the lifecycle marker of the most recent fetch attempt
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchErrorMessage is the only failure text the user ever sees
const FetchErrorMessage = "Error fetching data. Please try again."

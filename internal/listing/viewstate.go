package listing

import (
	"github.com/mwhite7112/woodpantry-recipefetch/internal/clients"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusEmpty   Status = "empty"
	StatusFailed  Status = "failed"
)

// ViewState is a snapshot of what the list should display. Recipes holds the
// list at snapshot time, including stale rows kept across a failed refresh.
type ViewState struct {
	Status  Status
	Recipes []clients.Recipe
	Err     error
}

// Message is the user-facing error text, or "" unless Status is StatusFailed.
func (v ViewState) Message() string {
	if v.Status != StatusFailed {
		return ""
	}
	return clients.UserMessage(v.Err)
}

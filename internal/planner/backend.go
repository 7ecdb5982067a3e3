package planner

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnauthenticated marks a 401 from any backend call. The session's
// contract on it is to request navigation to login and change nothing
// locally.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrSaveInProgress is returned when Save is invoked while an earlier
// Save has not completed.
var ErrSaveInProgress = errors.New("save already in progress")

// ErrDropRejected is returned when the validator refuses a move. The
// rejection has already been reported through the Notifier.
var ErrDropRejected = errors.New("drop rejected by constraint")

// APIError is a non-success backend status surfaced to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// Is lets errors.Is(err, ErrUnauthenticated) match any 401 APIError.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthenticated && e.Status == 401
}

// EventFields is the free-form create/edit form for a user event. Blank
// or whitespace-only fields are normalized to absent before transmission.
type EventFields struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	HardStart     string `json:"hard_start,omitempty"`
	HardEnd       string `json:"hard_end,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}

// SearchFilters are the optional event-search fields. Zero values mean
// "no filter".
type SearchFilters struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Type          string `json:"type,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	StartAfter    string `json:"start_after,omitempty"`
	StartBefore   string `json:"start_before,omitempty"`
	EndAfter      string `json:"end_after,omitempty"`
	EndBefore     string `json:"end_before,omitempty"`
}

// BackendAPI is the persisted side of the engine: itinerary fetch/save,
// user-event CRUD and event search, all as opaque request/response calls.
type BackendAPI interface {
	FetchItinerary(ctx context.Context, id int64) (*Itinerary, error)
	SaveItinerary(ctx context.Context, it *Itinerary) (int64, error)
	CreateUserEvent(ctx context.Context, fields EventFields) (int64, error)
	SearchEvents(ctx context.Context, filters SearchFilters) ([]Event, error)
	DeleteUserEvent(ctx context.Context, id int64) error
}

// Notifier is the surface the engine reports user-facing problems to.
// Passed in explicitly; the engine keeps no global notification state.
type Notifier interface {
	Notify(message string)
}

// Navigator is invoked when the backend answers 401; the engine requests
// a move to the login surface and takes no other local action.
type Navigator interface {
	GoToLogin()
}

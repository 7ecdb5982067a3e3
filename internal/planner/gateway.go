package planner

import (
	"context"
	"errors"
	"strings"
)

// ErrNotUserEvent is returned when deletion is attempted on an event the
// user did not create.
var ErrNotUserEvent = errors.New("only user-created events can be deleted")

// SearchOutcome distinguishes the three caption states of a search.
type SearchOutcome int

const (
	// SearchNoMatches: the backend found nothing for these filters.
	SearchNoMatches SearchOutcome = iota
	// SearchAllPresent: everything that matched is already in the pool.
	SearchAllPresent
	// SearchHasResults: at least one match can still be added.
	SearchHasResults
)

// SearchResult is the display list after pool filtering plus its caption
// state.
type SearchResult struct {
	Events  []Event
	Outcome SearchOutcome
}

// Caption is the line shown above the result list.
func (r SearchResult) Caption() string {
	switch r.Outcome {
	case SearchNoMatches:
		return "No events matched your search."
	case SearchAllPresent:
		return "All matching events are already in your plan."
	default:
		return "Select events to add to your plan."
	}
}

// UserEventGateway creates, searches and deletes user-authored events on
// behalf of one edit session. New events always land in the unassigned
// pool, never directly in a block.
type UserEventGateway struct {
	backend   BackendAPI
	session   *EditSession
	notifier  Notifier
	navigator Navigator
}

func NewUserEventGateway(backend BackendAPI, session *EditSession, notifier Notifier, navigator Navigator) *UserEventGateway {
	return &UserEventGateway{
		backend:   backend,
		session:   session,
		notifier:  notifier,
		navigator: navigator,
	}
}

// normalizeFields trims every field; whitespace-only input becomes absent
// so the backend never receives empty strings.
func normalizeFields(fields EventFields) EventFields {
	return EventFields{
		Name:          strings.TrimSpace(fields.Name),
		Description:   strings.TrimSpace(fields.Description),
		Type:          strings.TrimSpace(fields.Type),
		StreetAddress: strings.TrimSpace(fields.StreetAddress),
		City:          strings.TrimSpace(fields.City),
		Country:       strings.TrimSpace(fields.Country),
		PostalCode:    strings.TrimSpace(fields.PostalCode),
		HardStart:     strings.TrimSpace(fields.HardStart),
		HardEnd:       strings.TrimSpace(fields.HardEnd),
		Timezone:      strings.TrimSpace(fields.Timezone),
	}
}

// CreateEvent submits the form, attaches the server-assigned id and
// inserts the new event into the working pool. On failure the working
// copy is untouched.
func (g *UserEventGateway) CreateEvent(ctx context.Context, fields EventFields) (Event, error) {
	fields = normalizeFields(fields)

	id, err := g.backend.CreateUserEvent(ctx, fields)
	if err != nil {
		reportBackendFailure(err, g.notifier, g.navigator, "Could not create the event. Please try again.")
		return Event{}, err
	}

	ev := Event{
		ID:            id,
		Name:          fields.Name,
		Description:   fields.Description,
		Type:          fields.Type,
		StreetAddress: fields.StreetAddress,
		City:          fields.City,
		Country:       fields.Country,
		PostalCode:    fields.PostalCode,
		UserCreated:   true,
		HardStart:     fields.HardStart,
		HardEnd:       fields.HardEnd,
		Timezone:      fields.Timezone,
	}

	g.session.Working().InsertIntoSlot(g.session.SelectedDay(), PoolSlot, ev)
	g.session.markDirty()
	return ev, nil
}

// Search runs the filters against the backend and hides results already
// present in the pool. The outcome tells the caller which caption to
// show.
func (g *UserEventGateway) Search(ctx context.Context, filters SearchFilters) (SearchResult, error) {
	events, err := g.backend.SearchEvents(ctx, filters)
	if err != nil {
		reportBackendFailure(err, g.notifier, g.navigator, "Search failed. Please try again.")
		return SearchResult{}, err
	}

	if len(events) == 0 {
		return SearchResult{Outcome: SearchNoMatches}, nil
	}

	working := g.session.Working()
	visible := make([]Event, 0, len(events))
	for _, ev := range events {
		if !working.PoolHas(ev.ID) {
			visible = append(visible, ev)
		}
	}

	if len(visible) == 0 {
		return SearchResult{Outcome: SearchAllPresent}, nil
	}
	return SearchResult{Events: visible, Outcome: SearchHasResults}, nil
}

// AddToPool moves a search result into the working pool.
func (g *UserEventGateway) AddToPool(ev Event) {
	g.session.Working().InsertIntoSlot(g.session.SelectedDay(), PoolSlot, ev)
	g.session.markDirty()
}

// DeleteEvent removes a user-created event, both from the backend and
// from whichever slot of the active day or the pool currently holds it.
func (g *UserEventGateway) DeleteEvent(ctx context.Context, eventID int64) error {
	working := g.session.Working()
	dayIndex := g.session.SelectedDay()

	ev, ok := working.FindEvent(dayIndex, eventID)
	if !ok || !ev.UserCreated {
		if g.notifier != nil {
			g.notifier.Notify("Only events you created can be deleted.")
		}
		return ErrNotUserEvent
	}

	if err := g.backend.DeleteUserEvent(ctx, eventID); err != nil {
		reportBackendFailure(err, g.notifier, g.navigator, "Could not delete the event. Please try again.")
		return err
	}

	working.RemoveEvent(dayIndex, eventID)
	g.session.markDirty()
	return nil
}

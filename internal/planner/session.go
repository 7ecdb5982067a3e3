package planner

import (
	"context"
	"errors"
	"fmt"
)

// EditSession holds the last-persisted snapshot of one itinerary and the
// live working copy the user edits. Moves and user-event CRUD mutate only
// the working copy; Save pushes it to the backend and promotes it to the
// new snapshot, Cancel discards it.
//
// A failed Save intentionally leaves the working copy exactly as it was:
// the user keeps their edits and may retry or Cancel. There is no
// rollback-on-failure.
type EditSession struct {
	itineraryID   int64
	title         string
	startDate     string
	endDate       string
	chatSessionID string

	snapshot Schedule
	working  Schedule
	dirty    bool
	saving   bool

	selectedDay int

	backend   BackendAPI
	notifier  Notifier
	navigator Navigator
}

// LoadEditSession fetches the itinerary and opens a session on it. The
// working copy starts as an independent clone of the snapshot.
func LoadEditSession(ctx context.Context, backend BackendAPI, notifier Notifier, navigator Navigator, itineraryID int64) (*EditSession, error) {
	it, err := backend.FetchItinerary(ctx, itineraryID)
	if err != nil {
		reportBackendFailure(err, notifier, navigator, "Could not load the itinerary. Please try again.")
		return nil, err
	}

	return &EditSession{
		itineraryID:   it.ID,
		title:         it.Title,
		startDate:     it.StartDate,
		endDate:       it.EndDate,
		chatSessionID: it.ChatSessionID,
		snapshot:      it.Schedule.Clone(),
		working:       it.Schedule.Clone(),
		backend:       backend,
		notifier:      notifier,
		navigator:     navigator,
	}, nil
}

// Working exposes the live copy for mutation by the engine and gateway.
func (s *EditSession) Working() *Schedule {
	return &s.working
}

// Snapshot returns an independent copy of the last-persisted state.
func (s *EditSession) Snapshot() Schedule {
	return s.snapshot.Clone()
}

func (s *EditSession) ItineraryID() int64 { return s.itineraryID }
func (s *EditSession) Title() string      { return s.title }
func (s *EditSession) Dirty() bool        { return s.dirty }
func (s *EditSession) Saving() bool       { return s.saving }

// SelectedDay is the day index drag targets are resolved against.
func (s *EditSession) SelectedDay() int { return s.selectedDay }

// SelectDay switches the active day. Cross-day moves happen as
// unassign-switch-assign; the engine never addresses two days at once.
func (s *EditSession) SelectDay(index int) error {
	if index < 0 || index >= len(s.working.Days) {
		return fmt.Errorf("day index %d out of range", index)
	}
	s.selectedDay = index
	return nil
}

func (s *EditSession) markDirty() {
	s.dirty = true
}

// itinerary assembles the wire shape for Save, preserving identity.
func (s *EditSession) itinerary() *Itinerary {
	return &Itinerary{
		ID:            s.itineraryID,
		Title:         s.title,
		StartDate:     s.startDate,
		EndDate:       s.endDate,
		ChatSessionID: s.chatSessionID,
		Schedule:      s.working.Clone(),
	}
}

// Save persists the working copy. On success the snapshot is replaced by
// a clone of the working copy and the session is clean again. On failure
// the session stays dirty and the working copy is untouched, so the user
// can retry or Cancel.
func (s *EditSession) Save(ctx context.Context) error {
	if s.saving {
		return ErrSaveInProgress
	}
	s.saving = true
	defer func() { s.saving = false }()

	if _, err := s.backend.SaveItinerary(ctx, s.itinerary()); err != nil {
		reportBackendFailure(err, s.notifier, s.navigator, "Could not save your changes. Please try again.")
		return err
	}

	s.snapshot = s.working.Clone()
	s.dirty = false
	return nil
}

// Cancel discards the working copy, replacing it with a fresh clone of
// the snapshot. Purely local, always succeeds.
func (s *EditSession) Cancel() {
	s.working = s.snapshot.Clone()
	s.dirty = false
}

// reportBackendFailure routes a failed call to the right surface: 401
// requests login navigation, anything else goes to the Notifier. Local
// state is never touched here.
func reportBackendFailure(err error, notifier Notifier, navigator Navigator, message string) {
	if errors.Is(err, ErrUnauthenticated) {
		if navigator != nil {
			navigator.GoToLogin()
		}
		return
	}
	if notifier != nil {
		notifier.Notify(message)
	}
}

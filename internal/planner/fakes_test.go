package planner

import (
	"context"
	"testing"
)

// In-package test doubles for the backend and the UI capabilities.

type fakeBackend struct {
	itinerary *Itinerary
	fetchErr  error

	saveErr error
	saved   []*Itinerary

	createID  int64
	createErr error
	created   []EventFields

	searchEvents []Event
	searchErr    error

	deleteErr error
	deleted   []int64
}

func (f *fakeBackend) FetchItinerary(_ context.Context, id int64) (*Itinerary, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.itinerary, nil
}

func (f *fakeBackend) SaveItinerary(_ context.Context, it *Itinerary) (int64, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.saved = append(f.saved, it)
	return it.ID, nil
}

func (f *fakeBackend) CreateUserEvent(_ context.Context, fields EventFields) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, fields)
	return f.createID, nil
}

func (f *fakeBackend) SearchEvents(_ context.Context, _ SearchFilters) ([]Event, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchEvents, nil
}

func (f *fakeBackend) DeleteUserEvent(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(message string) {
	f.messages = append(f.messages, message)
}

type fakeNavigator struct {
	loginRequests int
}

func (f *fakeNavigator) GoToLogin() {
	f.loginRequests++
}

type sessionFixture struct {
	backend   *fakeBackend
	notifier  *fakeNotifier
	navigator *fakeNavigator
	session   *EditSession
}

func newSessionFixture(t *testing.T, schedule Schedule) *sessionFixture {
	t.Helper()

	backend := &fakeBackend{
		itinerary: &Itinerary{
			ID:        7,
			Title:     "Lisbon long weekend",
			StartDate: "2025-01-01",
			EndDate:   "2025-01-02",
			Schedule:  schedule,
		},
	}
	notifier := &fakeNotifier{}
	navigator := &fakeNavigator{}

	session, err := LoadEditSession(context.Background(), backend, notifier, navigator, 7)
	if err != nil {
		t.Fatalf("LoadEditSession failed: %v", err)
	}
	return &sessionFixture{
		backend:   backend,
		notifier:  notifier,
		navigator: navigator,
		session:   session,
	}
}

package planner

import (
	"context"
	"errors"
	"testing"
)

func newGatewayFixture(t *testing.T) (*sessionFixture, *UserEventGateway) {
	t.Helper()
	f := newSessionFixture(t, sampleSchedule())
	return f, NewUserEventGateway(f.backend, f.session, f.notifier, f.navigator)
}

func TestCreateEvent_NormalizesBlanksAndLandsInPool(t *testing.T) {
	f, gw := newGatewayFixture(t)
	f.backend.createID = 21

	ev, err := gw.CreateEvent(context.Background(), EventFields{
		Name:        "  Cooking class ",
		Description: "   ",
		City:        "Lisbon",
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	sent := f.backend.created[0]
	if sent.Name != "Cooking class" {
		t.Errorf("name not trimmed: %q", sent.Name)
	}
	if sent.Description != "" {
		t.Errorf("whitespace-only description sent as %q, want absent", sent.Description)
	}

	if ev.ID != 21 || !ev.UserCreated {
		t.Errorf("created event = %+v, want server id and user_created", ev)
	}
	if !f.session.Working().PoolHas(21) {
		t.Error("created event not in the unassigned pool")
	}
	for i, day := range f.session.Working().Days {
		if len(day.Morning)+len(day.Afternoon)+len(day.Evening) != len(sampleSchedule().Days[i].Morning)+len(sampleSchedule().Days[i].Afternoon)+len(sampleSchedule().Days[i].Evening) {
			t.Error("created event was auto-placed into a block")
		}
	}
	if !f.session.Dirty() {
		t.Error("create did not mark session dirty")
	}
}

func TestCreateEvent_FailureLeavesWorkingUntouched(t *testing.T) {
	f, gw := newGatewayFixture(t)
	f.backend.createErr = &APIError{Status: 500}
	poolBefore := len(f.session.Working().Unassigned)

	if _, err := gw.CreateEvent(context.Background(), EventFields{Name: "X"}); err == nil {
		t.Fatal("CreateEvent succeeded despite backend failure")
	}
	if len(f.session.Working().Unassigned) != poolBefore {
		t.Error("failed create mutated the pool")
	}
	if f.session.Dirty() {
		t.Error("failed create marked session dirty")
	}
	if len(f.notifier.messages) != 1 {
		t.Error("failure not reported")
	}
}

func TestCreateEvent_UnauthenticatedRequestsLogin(t *testing.T) {
	f, gw := newGatewayFixture(t)
	f.backend.createErr = &APIError{Status: 401}

	_, err := gw.CreateEvent(context.Background(), EventFields{Name: "X"})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want 401 match", err)
	}
	if f.navigator.loginRequests != 1 {
		t.Error("401 did not request login navigation")
	}
}

func TestSearch_CaptionStates(t *testing.T) {
	t.Run("no matches", func(t *testing.T) {
		f, gw := newGatewayFixture(t)
		f.backend.searchEvents = nil

		res, err := gw.Search(context.Background(), SearchFilters{Name: "nothing"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if res.Outcome != SearchNoMatches || len(res.Events) != 0 {
			t.Errorf("result = %+v, want no matches", res)
		}
		if res.Caption() != "No events matched your search." {
			t.Errorf("caption = %q", res.Caption())
		}
	})

	t.Run("all already present", func(t *testing.T) {
		f, gw := newGatewayFixture(t)
		// Event 4 is already in the pool.
		f.backend.searchEvents = []Event{{ID: 4, Name: "Spa"}}

		res, err := gw.Search(context.Background(), SearchFilters{Name: "Spa"})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if res.Outcome != SearchAllPresent || len(res.Events) != 0 {
			t.Errorf("result = %+v, want all-present", res)
		}
	})

	t.Run("matches available", func(t *testing.T) {
		f, gw := newGatewayFixture(t)
		f.backend.searchEvents = []Event{{ID: 4, Name: "Spa"}, {ID: 8, Name: "Tram tour"}}

		res, err := gw.Search(context.Background(), SearchFilters{})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if res.Outcome != SearchHasResults {
			t.Errorf("outcome = %v, want has-results", res.Outcome)
		}
		if len(res.Events) != 1 || res.Events[0].ID != 8 {
			t.Errorf("pool member not filtered out: %+v", res.Events)
		}
	})
}

func TestDeleteEvent_RejectsNonUserCreated(t *testing.T) {
	f, gw := newGatewayFixture(t)

	// Event 1 (Museum) is not user-created.
	err := gw.DeleteEvent(context.Background(), 1)
	if !errors.Is(err, ErrNotUserEvent) {
		t.Fatalf("err = %v, want ErrNotUserEvent", err)
	}
	if len(f.backend.deleted) != 0 {
		t.Error("backend delete was called for a non-user event")
	}
	if _, ok := f.session.Working().FindEvent(0, 1); !ok {
		t.Error("rejected delete removed the event")
	}
}

func TestDeleteEvent_RemovesFromCurrentLocation(t *testing.T) {
	f, gw := newGatewayFixture(t)
	engine := NewDragMoveEngine(NewConstraintValidator(), f.notifier)

	// Move the user-created Spa event out of the pool first; delete must
	// find it wherever it lives now.
	if err := engine.Apply(f.session, MoveCommand{EventID: 4, FromSlot: PoolSlot}, SlotMorning); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	if err := gw.DeleteEvent(context.Background(), 4); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	if len(f.backend.deleted) != 1 || f.backend.deleted[0] != 4 {
		t.Error("backend delete not called with the event id")
	}
	if _, ok := f.session.Working().FindEvent(0, 4); ok {
		t.Error("event still present after delete")
	}
}

func TestDeleteEvent_BackendFailurePreservesEvent(t *testing.T) {
	f, gw := newGatewayFixture(t)
	f.backend.deleteErr = &APIError{Status: 503}

	if err := gw.DeleteEvent(context.Background(), 4); err == nil {
		t.Fatal("DeleteEvent succeeded despite backend failure")
	}
	if !f.session.Working().PoolHas(4) {
		t.Error("failed delete removed the event locally")
	}
}

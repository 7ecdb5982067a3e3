package planner

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestLoadEditSession_WorkingIsIndependentOfSnapshot(t *testing.T) {
	f := newSessionFixture(t, sampleSchedule())

	f.session.Working().Days[0].Morning[0].Name = "changed"

	snap := f.session.Snapshot()
	if snap.Days[0].Morning[0].Name != "Museum" {
		t.Error("mutating working copy leaked into snapshot")
	}
	if f.session.Dirty() {
		t.Error("session dirty before any tracked mutation")
	}
}

func TestCancel_RestoresSnapshotAfterMoves(t *testing.T) {
	f := newSessionFixture(t, sampleSchedule())
	engine := NewDragMoveEngine(NewConstraintValidator(), f.notifier)

	before := f.session.Snapshot()

	// Museum from morning to pool, Spa from pool to afternoon.
	if err := engine.Apply(f.session, MoveCommand{EventID: 1, FromSlot: SlotMorning}, PoolSlot); err != nil {
		t.Fatalf("move 1 failed: %v", err)
	}
	if err := engine.Apply(f.session, MoveCommand{EventID: 4, FromSlot: PoolSlot}, SlotAfternoon); err != nil {
		t.Fatalf("move 2 failed: %v", err)
	}
	if !f.session.Dirty() {
		t.Fatal("session not dirty after moves")
	}

	f.session.Cancel()

	if f.session.Dirty() {
		t.Error("session still dirty after Cancel")
	}
	if !reflect.DeepEqual(*f.session.Working(), before) {
		t.Errorf("Cancel did not restore snapshot:\n got %+v\nwant %+v", *f.session.Working(), before)
	}
}

func TestSave_PromotesWorkingToSnapshot(t *testing.T) {
	f := newSessionFixture(t, sampleSchedule())
	engine := NewDragMoveEngine(NewConstraintValidator(), f.notifier)

	if err := engine.Apply(f.session, MoveCommand{EventID: 1, FromSlot: SlotMorning}, PoolSlot); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	if err := f.session.Save(context.Background()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if f.session.Dirty() {
		t.Error("session dirty after successful Save")
	}
	if len(f.backend.saved) != 1 {
		t.Fatalf("backend saw %d saves, want 1", len(f.backend.saved))
	}
	if f.backend.saved[0].ID != 7 || f.backend.saved[0].Title != "Lisbon long weekend" {
		t.Error("save did not preserve itinerary identity")
	}

	// Cancel after a successful Save is a no-op relative to the saved
	// state.
	afterSave := f.session.Working().Clone()
	f.session.Cancel()
	if !reflect.DeepEqual(*f.session.Working(), afterSave) {
		t.Error("Cancel after Save rolled back past the saved state")
	}
}

func TestSave_FailureKeepsWorkingAndDirty(t *testing.T) {
	f := newSessionFixture(t, sampleSchedule())
	engine := NewDragMoveEngine(NewConstraintValidator(), f.notifier)

	if err := engine.Apply(f.session, MoveCommand{EventID: 1, FromSlot: SlotMorning}, PoolSlot); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	edited := f.session.Working().Clone()

	f.backend.saveErr = &APIError{Status: 500, Message: "boom"}
	if err := f.session.Save(context.Background()); err == nil {
		t.Fatal("Save succeeded despite backend failure")
	}

	if !f.session.Dirty() {
		t.Error("failed Save cleared the dirty flag")
	}
	if !reflect.DeepEqual(*f.session.Working(), edited) {
		t.Error("failed Save changed the working copy")
	}
	if len(f.notifier.messages) == 0 {
		t.Error("failure was not reported through the notifier")
	}

	// Retry after the backend recovers.
	f.backend.saveErr = nil
	if err := f.session.Save(context.Background()); err != nil {
		t.Fatalf("retry Save failed: %v", err)
	}
	if f.session.Dirty() {
		t.Error("session dirty after successful retry")
	}
}

func TestSave_UnauthenticatedRequestsLogin(t *testing.T) {
	f := newSessionFixture(t, sampleSchedule())

	f.backend.saveErr = &APIError{Status: 401}
	err := f.session.Save(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated match", err)
	}
	if f.navigator.loginRequests != 1 {
		t.Errorf("login requested %d times, want 1", f.navigator.loginRequests)
	}
	if len(f.notifier.messages) != 0 {
		t.Error("401 should not also raise a notification")
	}
}

// reentrantBackend calls Save again from inside SaveItinerary to prove the
// in-flight guard holds.
type reentrantBackend struct {
	fakeBackend
	session *EditSession
	inner   error
}

func (r *reentrantBackend) SaveItinerary(ctx context.Context, it *Itinerary) (int64, error) {
	r.inner = r.session.Save(ctx)
	return it.ID, nil
}

func TestSave_RejectsReentrantSave(t *testing.T) {
	f := newSessionFixture(t, sampleSchedule())

	wrapped := &reentrantBackend{session: f.session}
	f.session.backend = wrapped

	if err := f.session.Save(context.Background()); err != nil {
		t.Fatalf("outer Save failed: %v", err)
	}
	if !errors.Is(wrapped.inner, ErrSaveInProgress) {
		t.Errorf("inner Save = %v, want ErrSaveInProgress", wrapped.inner)
	}
}

package planner

// MoveCommand is the typed payload captured at drag start: the event's
// identity, enough display fields to synthesize a fallback event if the
// id can no longer be resolved, and the source slot.
type MoveCommand struct {
	EventID     int64
	Name        string
	Description string
	FromSlot    int // block index within the selected day, or PoolSlot
}

// DragMoveEngine applies one drag-and-drop move to a session's working
// copy: resolve the event, gate it through the validator, then
// remove-and-insert. A rejected drop mutates nothing and reports through
// the Notifier.
type DragMoveEngine struct {
	validator *ConstraintValidator
	notifier  Notifier
}

func NewDragMoveEngine(validator *ConstraintValidator, notifier Notifier) *DragMoveEngine {
	return &DragMoveEngine{validator: validator, notifier: notifier}
}

// Apply executes the move against the session's selected day. Returns
// ErrDropRejected when the validator refuses the target; any other
// outcome mutates the working copy and marks the session dirty.
func (e *DragMoveEngine) Apply(sess *EditSession, cmd MoveCommand, targetSlot int) error {
	working := sess.Working()
	dayIndex := sess.SelectedDay()

	ev, ok := working.FindEvent(dayIndex, cmd.EventID)
	if !ok {
		// Stale payload: the id no longer resolves. Drop still succeeds
		// with an event rebuilt from the payload's display fields.
		ev = Event{
			ID:          cmd.EventID,
			Name:        cmd.Name,
			Description: cmd.Description,
		}
	}

	targetDate := ""
	if dayIndex >= 0 && dayIndex < len(working.Days) {
		targetDate = working.Days[dayIndex].Date
	}

	if !e.validator.CanDrop(ev, BlockName(targetSlot), targetDate, targetSlot) {
		if e.notifier != nil {
			e.notifier.Notify(e.validator.DropErrorMessage(ev))
		}
		return ErrDropRejected
	}

	working.RemoveFromSlot(dayIndex, cmd.FromSlot, cmd.EventID)
	working.InsertIntoSlot(dayIndex, targetSlot, ev)
	sess.markDirty()
	return nil
}

package planner

import "fmt"

// ConstraintValidator decides whether an event may occupy a slot. It never
// mutates the schedule or talks to the user; callers surface
// DropErrorMessage when a drop is rejected.
type ConstraintValidator struct{}

func NewConstraintValidator() *ConstraintValidator {
	return &ConstraintValidator{}
}

// CanDrop reports whether the event may be placed at the target address.
// Events without a hard start are flexible and go anywhere. Moving an
// event back to the pool is always allowed, hard start or not. Otherwise
// the target must match the block and date derived from the hard start.
func (v *ConstraintValidator) CanDrop(ev Event, targetBlock Block, targetDate string, targetSlot int) bool {
	if ev.HardStart == "" {
		return true
	}
	if targetSlot == PoolSlot {
		return true
	}
	return BlockOf(ev.HardStart) == targetBlock && DateOf(ev.HardStart) == targetDate
}

// DropErrorMessage names the slot the event is pinned to, or returns ""
// for flexible events.
func (v *ConstraintValidator) DropErrorMessage(ev Event) string {
	if ev.HardStart == "" {
		return ""
	}
	return fmt.Sprintf("%q has a fixed start time and must be placed in the %s block on %s.",
		ev.Name, BlockOf(ev.HardStart), DateOf(ev.HardStart))
}

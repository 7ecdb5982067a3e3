package planner

// PoolSlot is the slot index addressing the unassigned pool instead of a
// block of the selected day.
const PoolSlot = -1

// Block indexes within a day. Slot indexes >= 0 address these blocks.
const (
	SlotMorning = iota
	SlotAfternoon
	SlotEvening
	slotCount
)

// Event is the wire model shared with the backend. Optional fields are
// empty strings when absent; ID is 0 until the server has assigned one.
type Event struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	UserCreated   bool   `json:"user_created"`
	HardStart     string `json:"hard_start,omitempty"`
	HardEnd       string `json:"hard_end,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
}

// Day owns exactly three blocks, serialized as explicit per-block arrays.
type Day struct {
	Date      string  `json:"date"` // YYYY-MM-DD, destination-local
	Morning   []Event `json:"morning"`
	Afternoon []Event `json:"afternoon"`
	Evening   []Event `json:"evening"`
}

// Schedule is the day/block/pool structure one edit session works on.
// The pool is itinerary-wide, not per-day.
type Schedule struct {
	Days       []Day   `json:"days"`
	Unassigned []Event `json:"unassigned"`
}

// Itinerary is the persisted wire shape, §6 style: identity plus the full
// materialized schedule.
type Itinerary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	ChatSessionID string `json:"chat_session_id,omitempty"`
	Schedule
}

// BlockName maps a non-pool slot index to its block name.
func BlockName(slot int) Block {
	switch slot {
	case SlotMorning:
		return BlockMorning
	case SlotAfternoon:
		return BlockAfternoon
	case SlotEvening:
		return BlockEvening
	}
	return BlockNone
}

// BlockSlot maps a block name back to its slot index, PoolSlot if unknown.
func BlockSlot(name Block) int {
	switch name {
	case BlockMorning:
		return SlotMorning
	case BlockAfternoon:
		return SlotAfternoon
	case BlockEvening:
		return SlotEvening
	}
	return PoolSlot
}

// slotEvents resolves a (day, slot) address to the backing slice, nil if
// the address is out of range.
func (s *Schedule) slotEvents(dayIndex, slot int) *[]Event {
	if slot == PoolSlot {
		return &s.Unassigned
	}
	if dayIndex < 0 || dayIndex >= len(s.Days) {
		return nil
	}
	day := &s.Days[dayIndex]
	switch slot {
	case SlotMorning:
		return &day.Morning
	case SlotAfternoon:
		return &day.Afternoon
	case SlotEvening:
		return &day.Evening
	}
	return nil
}

// RemoveFromSlot removes the event with the given id from one slot.
// Missing events and bad addresses are a no-op.
func (s *Schedule) RemoveFromSlot(dayIndex, slot int, eventID int64) {
	events := s.slotEvents(dayIndex, slot)
	if events == nil {
		return
	}
	for i, ev := range *events {
		if ev.ID == eventID {
			*events = append((*events)[:i], (*events)[i+1:]...)
			return
		}
	}
}

// InsertIntoSlot appends the event to a slot unless an event with the same
// id is already there, which keeps repeated drops idempotent.
func (s *Schedule) InsertIntoSlot(dayIndex, slot int, ev Event) {
	events := s.slotEvents(dayIndex, slot)
	if events == nil {
		return
	}
	for _, existing := range *events {
		if existing.ID == ev.ID {
			return
		}
	}
	*events = append(*events, ev)
}

// FindEvent looks the event up in the selected day's blocks first, then
// the unassigned pool.
func (s *Schedule) FindEvent(dayIndex int, eventID int64) (Event, bool) {
	for slot := SlotMorning; slot < slotCount; slot++ {
		events := s.slotEvents(dayIndex, slot)
		if events == nil {
			continue
		}
		for _, ev := range *events {
			if ev.ID == eventID {
				return ev, true
			}
		}
	}
	for _, ev := range s.Unassigned {
		if ev.ID == eventID {
			return ev, true
		}
	}
	return Event{}, false
}

// RemoveEvent removes the event from whichever slot of the selected day,
// or the pool, currently holds it.
func (s *Schedule) RemoveEvent(dayIndex int, eventID int64) {
	for slot := SlotMorning; slot < slotCount; slot++ {
		s.RemoveFromSlot(dayIndex, slot, eventID)
	}
	s.RemoveFromSlot(dayIndex, PoolSlot, eventID)
}

// PoolHas reports whether the pool already holds an event with this id.
func (s *Schedule) PoolHas(eventID int64) bool {
	for _, ev := range s.Unassigned {
		if ev.ID == eventID {
			return true
		}
	}
	return false
}

func cloneEvents(events []Event) []Event {
	if events == nil {
		return nil
	}
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// Clone returns a structurally independent copy; mutating the copy never
// touches the original.
func (d Day) Clone() Day {
	return Day{
		Date:      d.Date,
		Morning:   cloneEvents(d.Morning),
		Afternoon: cloneEvents(d.Afternoon),
		Evening:   cloneEvents(d.Evening),
	}
}

// Clone returns a structurally independent copy of the whole schedule.
func (s Schedule) Clone() Schedule {
	out := Schedule{Unassigned: cloneEvents(s.Unassigned)}
	if s.Days != nil {
		out.Days = make([]Day, len(s.Days))
		for i, d := range s.Days {
			out.Days[i] = d.Clone()
		}
	}
	return out
}

package db_models

// Placement materializes one event's position in the schedule: either a
// (day, block, position) triple, or the unassigned pool when DayID is
// NULL.
type Placement struct {
	BaseModel
	ItineraryID int64
	DayID       *int64
	Block       string // Morning, Afternoon, Evening; empty for the pool
	Position    int
	EventID     int64

	Event Event
}

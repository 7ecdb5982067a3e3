package db_models

import (
	"sort"

	"wander/internal/planner"
)

// EventWire maps a stored event to the wire model.
func EventWire(e Event) planner.Event {
	return planner.Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Type:          e.Type,
		StreetAddress: e.StreetAddress,
		City:          e.City,
		Country:       e.Country,
		PostalCode:    e.PostalCode,
		UserCreated:   e.UserCreated,
		HardStart:     e.HardStart,
		HardEnd:       e.HardEnd,
		Timezone:      e.Timezone,
	}
}

// BuildItineraryWire assembles the §6 wire shape from a fully preloaded
// itinerary: days in chronological order, explicit per-block event arrays
// ordered by position, and the itinerary-wide unassigned pool.
func BuildItineraryWire(it *Itinerary) *planner.Itinerary {
	out := &planner.Itinerary{
		ID:            it.ID,
		Title:         it.Title,
		StartDate:     it.StartDate,
		EndDate:       it.EndDate,
		ChatSessionID: it.ChatSessionID,
	}

	days := make([]ItineraryDay, len(it.Days))
	copy(days, it.Days)
	sort.Slice(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })

	out.Days = make([]planner.Day, 0, len(days))
	for _, day := range days {
		placements := make([]Placement, len(day.Placements))
		copy(placements, day.Placements)
		sort.Slice(placements, func(i, j int) bool { return placements[i].Position < placements[j].Position })

		wireDay := planner.Day{Date: day.Date}
		for _, p := range placements {
			ev := EventWire(p.Event)
			switch planner.Block(p.Block) {
			case planner.BlockMorning:
				wireDay.Morning = append(wireDay.Morning, ev)
			case planner.BlockAfternoon:
				wireDay.Afternoon = append(wireDay.Afternoon, ev)
			case planner.BlockEvening:
				wireDay.Evening = append(wireDay.Evening, ev)
			}
		}
		out.Days = append(out.Days, wireDay)
	}

	pool := make([]Placement, 0)
	for _, p := range it.Placements {
		if p.DayID == nil {
			pool = append(pool, p)
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].Position < pool[j].Position })
	for _, p := range pool {
		out.Unassigned = append(out.Unassigned, EventWire(p.Event))
	}

	return out
}

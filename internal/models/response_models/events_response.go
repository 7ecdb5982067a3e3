package response_models

import "wander/internal/planner"

type CreatedEventResponse struct {
	ID int64 `json:"id"`
}

type SearchEventsResponse struct {
	Events []planner.Event `json:"events"`
}

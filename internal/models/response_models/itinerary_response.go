package response_models

// SavedItineraryResponse acknowledges a save with the persisted id, which
// differs from the submitted one only when the save created the
// itinerary.
type SavedItineraryResponse struct {
	ID int64 `json:"id"`
}

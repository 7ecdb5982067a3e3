package db_models

type Itinerary struct {
	BaseModel
	Title     string
	StartDate string `gorm:"type:date"`
	EndDate   string `gorm:"type:date"`

	// ChatSessionID links back to the planning conversation that produced
	// the initial schedule; empty when the itinerary was built by hand.
	ChatSessionID string

	Days       []ItineraryDay
	Placements []Placement
}

type ItineraryDay struct {
	BaseModel
	ItineraryID int64
	Date        string `gorm:"type:date"`
	DayNumber   int

	Placements []Placement `gorm:"foreignKey:DayID"`
}

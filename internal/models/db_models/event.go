package db_models

type Event struct {
	BaseModel
	Name          string
	Description   string
	Type          string
	StreetAddress string
	City          string
	Country       string
	PostalCode    string

	// Only user-created events may be edited or deleted.
	UserCreated bool

	// HardStart/HardEnd are stored as the ISO-8601 strings the client
	// sent, offset included; classification happens in the event's own
	// clock time, so normalizing to a server zone would lose information.
	HardStart string
	HardEnd   string
	Timezone  string

	Placements []Placement
}

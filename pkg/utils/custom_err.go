package utils

import "errors"

var (
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrNotUserEvent      = errors.New("event is not user-created")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDatabaseError     = errors.New("database error")
)

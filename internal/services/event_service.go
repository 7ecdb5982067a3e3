package services

import (
	"context"
	"log"
	"time"

	dbm "wander/internal/models/db_models"
	"wander/internal/planner"
	"wander/internal/repositories"
	"wander/pkg/cache"
	"wander/pkg/utils"
)

const searchCacheTTL = 5 * time.Minute

type EventServiceInterface interface {
	CreateUserEvent(ctx context.Context, fields planner.EventFields) (int64, error)
	SearchEvents(ctx context.Context, filters planner.SearchFilters) ([]planner.Event, error)
	DeleteUserEvent(ctx context.Context, eventID int64) error
}

type EventService struct {
	eventRepo   repositories.EventRepository
	searchCache cache.SearchCache
}

func NewEventService(eventRepo repositories.EventRepository, searchCache cache.SearchCache) EventServiceInterface {
	return &EventService{
		eventRepo:   eventRepo,
		searchCache: searchCache,
	}
}

func (s *EventService) CreateUserEvent(ctx context.Context, fields planner.EventFields) (int64, error) {

	if fields.Name == "" {
		return 0, utils.ErrInvalidInput
	}

	event := dbm.Event{
		Name:          fields.Name,
		Description:   fields.Description,
		Type:          fields.Type,
		StreetAddress: fields.StreetAddress,
		City:          fields.City,
		Country:       fields.Country,
		PostalCode:    fields.PostalCode,
		UserCreated:   true,
		HardStart:     fields.HardStart,
		HardEnd:       fields.HardEnd,
		Timezone:      fields.Timezone,
	}

	if err := s.eventRepo.CreateEvent(ctx, &event); err != nil {
		log.Printf("Error creating user event: %v", err)
		return 0, utils.ErrDatabaseError
	}

	return event.ID, nil
}

func (s *EventService) SearchEvents(ctx context.Context, filters planner.SearchFilters) ([]planner.Event, error) {

	key := cache.FilterKey(filters)
	if s.searchCache != nil {
		if cached, ok := s.searchCache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	events, err := s.eventRepo.SearchEvents(ctx, filters)
	if err != nil {
		log.Printf("Error searching events: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]planner.Event, 0, len(events))
	for _, event := range events {
		out = append(out, dbm.EventWire(event))
	}

	if s.searchCache != nil {
		s.searchCache.Set(ctx, key, out, searchCacheTTL)
	}

	return out, nil
}

func (s *EventService) DeleteUserEvent(ctx context.Context, eventID int64) error {

	event, err := s.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		log.Printf("Error fetching event %d: %v", eventID, err)
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}
	if !event.UserCreated {
		return utils.ErrNotUserEvent
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		log.Printf("Error deleting event %d: %v", eventID, err)
		return utils.ErrDatabaseError
	}

	return nil
}

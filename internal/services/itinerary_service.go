package services

import (
	"context"
	"log"

	dbm "wander/internal/models/db_models"
	"wander/internal/planner"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetItineraryByID(ctx context.Context, itineraryID int64) (*planner.Itinerary, error)
	SaveItinerary(ctx context.Context, in *planner.Itinerary) (int64, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, itineraryID int64) (*planner.Itinerary, error) {

	itinerary, err := s.itineraryRepo.GetItineraryByID(ctx, itineraryID)
	if err != nil {
		log.Printf("Error fetching itinerary %d: %v", itineraryID, err)
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	return dbm.BuildItineraryWire(itinerary), nil
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, in *planner.Itinerary) (int64, error) {

	if in.Title == "" {
		return 0, utils.ErrInvalidInput
	}

	id, err := s.itineraryRepo.ReplaceSchedule(ctx, in)
	if err != nil {
		log.Printf("Error saving itinerary %d: %v", in.ID, err)
		return 0, utils.ErrDatabaseError
	}

	return id, nil
}

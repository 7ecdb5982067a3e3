package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
	"wander/internal/planner"
)

const searchResultLimit = 50

type EventRepository interface {
	CreateEvent(ctx context.Context, event *dbm.Event) error
	GetEventByID(ctx context.Context, id int64) (*dbm.Event, error)
	SearchEvents(ctx context.Context, filters planner.SearchFilters) ([]dbm.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event *dbm.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetEventByID(ctx context.Context, id int64) (*dbm.Event, error) {

	var event dbm.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

// SearchEvents applies every non-zero filter. Hard start/end windows
// compare the stored ISO-8601 strings lexicographically, which orders
// correctly for same-format timestamps.
func (r *eventRepository) SearchEvents(ctx context.Context, filters planner.SearchFilters) ([]dbm.Event, error) {

	query := r.db.WithContext(ctx).Model(&dbm.Event{})

	if filters.ID != 0 {
		query = query.Where("id = ?", filters.ID)
	}
	if filters.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Name+"%")
	}
	if filters.Type != "" {
		query = query.Where("type ILIKE ?", "%"+filters.Type+"%")
	}
	if filters.StreetAddress != "" {
		query = query.Where("street_address ILIKE ?", "%"+filters.StreetAddress+"%")
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", "%"+filters.City+"%")
	}
	if filters.Country != "" {
		query = query.Where("country ILIKE ?", "%"+filters.Country+"%")
	}
	if filters.PostalCode != "" {
		query = query.Where("postal_code = ?", filters.PostalCode)
	}
	if filters.StartAfter != "" {
		query = query.Where("hard_start <> '' AND hard_start >= ?", filters.StartAfter)
	}
	if filters.StartBefore != "" {
		query = query.Where("hard_start <> '' AND hard_start <= ?", filters.StartBefore)
	}
	if filters.EndAfter != "" {
		query = query.Where("hard_end <> '' AND hard_end >= ?", filters.EndAfter)
	}
	if filters.EndBefore != "" {
		query = query.Where("hard_end <> '' AND hard_end <= ?", filters.EndBefore)
	}

	var events []dbm.Event
	if err := query.Limit(searchResultLimit).Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

// DeleteEvent removes the event and every placement that referenced it,
// in any itinerary.
func (r *eventRepository) DeleteEvent(ctx context.Context, id int64) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).
			Delete(&dbm.Placement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbm.Event{}, "id = ?", id).Error
	})
}

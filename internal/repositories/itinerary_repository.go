package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wander/internal/models/db_models"
	"wander/internal/planner"
)

type ItineraryRepository interface {
	GetItineraryByID(ctx context.Context, id int64) (*dbm.Itinerary, error)
	ReplaceSchedule(ctx context.Context, in *planner.Itinerary) (int64, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) GetItineraryByID(ctx context.Context, id int64) (*dbm.Itinerary, error) {

	var itinerary dbm.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Days").
		Preload("Days.Placements").
		Preload("Days.Placements.Event").
		Preload("Placements", "day_id IS NULL").
		Preload("Placements.Event").
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

// ReplaceSchedule persists the full wire shape in one transaction: the
// previous materialized days and placements are wiped and rebuilt from
// the payload. Saves are last-write-wins; there is no conflict token.
func (r *itineraryRepository) ReplaceSchedule(ctx context.Context, in *planner.Itinerary) (int64, error) {

	var outID int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it dbm.Itinerary
		needCreate := false

		if in.ID == 0 {
			needCreate = true
		} else {
			if err := tx.First(&it, "id = ?", in.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					needCreate = true
				} else {
					return err
				}
			}
		}

		if needCreate {
			it = dbm.Itinerary{
				Title:         in.Title,
				StartDate:     in.StartDate,
				EndDate:       in.EndDate,
				ChatSessionID: in.ChatSessionID,
			}
			if err := tx.Create(&it).Error; err != nil {
				return err
			}
		} else {
			it.Title = in.Title
			it.StartDate = in.StartDate
			it.EndDate = in.EndDate
			it.ChatSessionID = in.ChatSessionID
			if err := tx.Save(&it).Error; err != nil {
				return err
			}
		}

		outID = it.ID

		// 1) Wipe previous materialized data
		if err := tx.Where("itinerary_id = ?", it.ID).
			Delete(&dbm.Placement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", it.ID).
			Delete(&dbm.ItineraryDay{}).Error; err != nil {
			return err
		}

		// 2) Recreate days + placements
		for i, day := range in.Days {
			jd := dbm.ItineraryDay{
				ItineraryID: it.ID,
				Date:        day.Date,
				DayNumber:   i + 1,
			}
			if err := tx.Create(&jd).Error; err != nil {
				return err
			}

			blocks := []struct {
				name   planner.Block
				events []planner.Event
			}{
				{planner.BlockMorning, day.Morning},
				{planner.BlockAfternoon, day.Afternoon},
				{planner.BlockEvening, day.Evening},
			}

			placements := make([]dbm.Placement, 0)
			for _, block := range blocks {
				for pos, ev := range block.events {
					if ev.ID == 0 {
						continue
					}
					dayID := jd.ID
					placements = append(placements, dbm.Placement{
						ItineraryID: it.ID,
						DayID:       &dayID,
						Block:       string(block.name),
						Position:    pos,
						EventID:     ev.ID,
					})
				}
			}
			if len(placements) > 0 {
				if err := tx.Create(&placements).Error; err != nil {
					return err
				}
			}
		}

		pool := make([]dbm.Placement, 0, len(in.Unassigned))
		for pos, ev := range in.Unassigned {
			if ev.ID == 0 {
				continue
			}
			pool = append(pool, dbm.Placement{
				ItineraryID: it.ID,
				Position:    pos,
				EventID:     ev.ID,
			})
		}
		if len(pool) > 0 {
			if err := tx.Create(&pool).Error; err != nil {
				return err
			}
		}

		return nil
	})

	return outID, err
}

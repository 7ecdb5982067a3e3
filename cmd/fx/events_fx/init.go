package events_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wander/internal/repositories"
	"wander/internal/services"
	"wander/pkg/cache"
)

var Module = fx.Provide(provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, searchCache cache.SearchCache) services.EventServiceInterface {
	return services.NewEventService(eventRepo, searchCache)
}

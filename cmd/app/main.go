package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wander/cmd/fx/cache_fx"
	"wander/cmd/fx/controllers_fx"
	"wander/cmd/fx/db_fx"
	"wander/cmd/fx/events_fx"
	"wander/cmd/fx/itinerary_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		itinerary_fx.Module,
		events_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	eventsController *controllers.EventsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, eventsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	eventsController *controllers.EventsController) {

	itineraries := r.Group("/itineraries")
	itineraries.Use(middleware.JWTAuthMiddleware())
	itineraries.GET("/:itineraryId", itineraryController.GetItineraryByID)
	itineraries.PUT("/save", itineraryController.SaveItinerary)

	events := r.Group("/events")
	events.Use(middleware.JWTAuthMiddleware())
	events.POST("/user-events", eventsController.CreateUserEvent)
	events.POST("/search", eventsController.SearchEvents)
	events.DELETE("/user-events/:eventId", eventsController.DeleteUserEvent)
}

package main

import (
	"log"

	"github.com/courtside/courtside/config"
	"github.com/courtside/courtside/internal/cache"
	"github.com/courtside/courtside/internal/consumer"
	"github.com/courtside/courtside/internal/handler"
	"github.com/courtside/courtside/internal/middleware"
	"github.com/courtside/courtside/internal/repository"
	"github.com/courtside/courtside/internal/service"
	"github.com/courtside/courtside/pkg/database"
	"github.com/courtside/courtside/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	courtRepo := repository.NewCourtRepository(db)
	gameRepo := repository.NewGameRepository(db)
	joinRepo := repository.NewJoinRequestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	avCache := cache.NewAvailabilityCache(cache.NewRedisClient(cfg.RedisAddr))
	courtSvc := service.NewCourtService(courtRepo, avCache)
	gameSvc := service.NewGameService(gameRepo, joinRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, courtRepo, publisher)

	// RabbitMQ consumer: organizer decisions on pending join requests
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ consumer: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	consumer.NewDecisionConsumer(gameSvc).Start(msgs)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "courtside"})
	})

	handler.NewCourtHandler(courtSvc).RegisterRoutes(e)
	handler.NewGameHandler(gameSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)

	log.Printf("Courtside API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

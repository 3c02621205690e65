package main

import (
	"log"

	"shareit/config"
	"shareit/internal/handler"
	"shareit/internal/middleware"
	"shareit/internal/repository"
	"shareit/internal/service"
	"shareit/internal/validation"
	"shareit/pkg/database"
	"shareit/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ publisher: booking lifecycle events, optional
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		mq, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mq.Close()
		publisher = mq
	} else {
		log.Println("RABBITMQ_URL not set, booking events disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	requestRepo := repository.NewItemRequestRepository(db)

	// Services
	userSvc := service.NewUserService(userRepo)
	bookingSvc := service.NewBookingService(bookingRepo, itemRepo, userRepo, publisher)
	itemSvc := service.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo)
	commentSvc := service.NewCommentService(commentRepo, itemRepo, userRepo, bookingSvc)
	requestSvc := service.NewItemRequestService(requestRepo, itemRepo, userRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
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
		return c.JSON(200, map[string]string{"status": "ok", "service": "shareit"})
	})

	handler.NewUserHandler(userSvc).RegisterRoutes(e)
	handler.NewItemHandler(itemSvc, commentSvc).RegisterRoutes(e)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e)
	handler.NewItemRequestHandler(requestSvc).RegisterRoutes(e)

	log.Printf("ShareIt starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// @title Campus Connect API
// @version 1.0
// @description REST backend for the campus community portal: auth, events, clubs, notices, and notes.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"time"

	_ "campus-connect/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	"campus-connect/bootstrap"
	"campus-connect/config"
	"campus-connect/database"
	"campus-connect/internal/logger"
	"campus-connect/internal/repository"
	"campus-connect/internal/routes"
	"campus-connect/internal/services"
)

func main() {
	log := logger.New()

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer client.Disconnect(context.Background())
	log.WithField("db", cfg.MongoDB).Info("connected to mongodb")

	if err := bootstrap.EnsureRegistrationIndexes(db); err != nil {
		log.Fatalf("ensure registration indexes failed: %v", err)
	}
	if err := bootstrap.EnsureAuthIndexes(db); err != nil {
		log.Fatalf("ensure auth indexes failed: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	eventRepo := repository.NewEventRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	clubRepo := repository.NewClubRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, adminRepo, cfg.JWTSecret, log)
	eventSvc := services.NewEventService(eventRepo, regRepo, log)
	clubSvc := services.NewClubService(clubRepo, log)
	noticeSvc := services.NewNoticeService(noticeRepo)
	noteSvc := services.NewNoteService(noteRepo)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(log),
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Routes
	routes.SetupRoutesAuth(app, authSvc, cfg.JWTSecret, adminRepo)
	routes.SetupRoutesEvent(app, eventSvc, cfg.JWTSecret, adminRepo)
	routes.SetupRoutesClub(app, clubSvc, cfg.JWTSecret, adminRepo)
	routes.SetupRoutesNotice(app, noticeSvc, cfg.JWTSecret, adminRepo)
	routes.SetupRoutesNote(app, noteSvc, cfg.JWTSecret)

	// RUN SERVER
	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler renders fiber errors as the portal's JSON error envelope and
// hides everything else behind a generic 500, logging it for operators.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

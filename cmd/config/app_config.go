package config

import (
	"SmartMenza-Backend/internal/api/handlers"
	"SmartMenza-Backend/internal/api/routes"
	"SmartMenza-Backend/internal/middleware"
	"SmartMenza-Backend/internal/utils"
	"SmartMenza-Backend/internal/utils/storage"
	"SmartMenza-Backend/pkg/favorite"
	"SmartMenza-Backend/pkg/goal"
	"SmartMenza-Backend/pkg/jwt"
	"SmartMenza-Backend/pkg/menu"
	"SmartMenza-Backend/pkg/rating"
	"SmartMenza-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Belgrade",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	goalRepository := goal.NewGoalRepository(db)
	ratingRepository := rating.NewRatingRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3)
	favoriteService := favorite.NewFavoriteService(favoriteRepository)
	goalService := goal.NewGoalService(goalRepository)
	ratingService := rating.NewRatingService(ratingRepository)

	// Handler
	authHandler := handlers.NewAuthHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	goalHandler := handlers.NewGoalHandler(goalService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		AuthHandler:     authHandler,
		MenuHandler:     menuHandler,
		FavoriteHandler: favoriteHandler,
		GoalHandler:     goalHandler,
		RatingHandler:   ratingHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

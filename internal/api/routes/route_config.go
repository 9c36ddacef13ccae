package routes

import (
	"SmartMenza-Backend/domain"
	"SmartMenza-Backend/internal/api/handlers"
	"SmartMenza-Backend/internal/middleware"
	"SmartMenza-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	AuthHandler     handlers.AuthHandler
	MenuHandler     handlers.MenuHandler
	FavoriteHandler handlers.FavoriteHandler
	GoalHandler     handlers.GoalHandler
	RatingHandler   handlers.RatingHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Menu()
	c.Favorites()
	c.Goals()
	c.Ratings()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/Auth")
	{
		auth.Post("/registration", c.AuthHandler.Register)
		auth.Post("/login", c.AuthHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Me)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/menu")
	menu.Get("", c.MenuHandler.GetMenuByDate)
	menu.Get("/all", c.MenuHandler.GetMenusByDate)

	// content management, admin only
	admin := menu.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.RequireRoles(domain.RoleAdmin))
	admin.Post("", c.MenuHandler.CreateMenu)
	admin.Post("/meals", c.MenuHandler.CreateMeal)
	admin.Post("/meals/image", c.MenuHandler.UploadMealImage)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	favorites.Post("/toggle", c.FavoriteHandler.ToggleFavorite)
	favorites.Get("", c.FavoriteHandler.ListFavorites)
}

func (c *Config) Goals() {
	goals := c.App.Group("/api/goals", c.Middleware.AuthMiddleware(c.JWTService))
	goals.Post("", c.GoalHandler.CreateGoal)
	goals.Get("", c.GoalHandler.GetGoal)
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/ratings")
	ratings.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RatingHandler.SubmitRating)
	ratings.Put("", c.Middleware.AuthMiddleware(c.JWTService), c.RatingHandler.UpdateRating)
	ratings.Get("/summary", c.RatingHandler.GetMealRatingSummary)

	c.App.Get("/api/stats/overall", c.RatingHandler.GetOverallStats)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

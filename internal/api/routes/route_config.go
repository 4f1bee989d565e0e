package routes

import (
	"Yoriview-Backend/internal/api/handlers"
	"Yoriview-Backend/internal/middleware"
	"Yoriview-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

const Version = "1.0.0"

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	RestaurantHandler  handlers.RestaurantHandler
	ReviewHandler      handlers.ReviewHandler
	ReviewStyleHandler handlers.ReviewStyleHandler
	FavoriteHandler    handlers.FavoriteHandler
	VisitHandler       handlers.VisitHandler
	StatisticsHandler  handlers.StatisticsHandler
	ReceiptHandler     handlers.ReceiptHandler
	OcrHandler         handlers.OcrHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Restaurants()
	c.Reviews()
	c.ReviewStyles()
	c.Favorites()
	c.Visits()
	c.Statistics()
	c.Receipts()
	c.Ocr()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"message": "Yoriview backend is running",
			"version": Version,
		})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Put("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateMe)
		user.Put("/password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ChangePassword)
	}
}

func (c *Config) Restaurants() {
	restaurants := c.App.Group("/api/restaurants", c.Middleware.AuthMiddleware(c.JWTService))
	restaurants.Post("", c.RestaurantHandler.CreateRestaurant)
	restaurants.Get("", c.RestaurantHandler.GetRestaurants)
	restaurants.Get("/locations", c.RestaurantHandler.GetLocations)
	restaurants.Get("/visited", c.RestaurantHandler.GetVisitedRestaurants)
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/reviews", c.Middleware.AuthMiddleware(c.JWTService))
	reviews.Post("", c.ReviewHandler.CreateReview)
	reviews.Get("", c.ReviewHandler.GetReviews)
	reviews.Post("/complete", c.ReviewHandler.SubmitCompleteReview)
	reviews.Get("/me", c.ReviewHandler.GetMyReviews)
	reviews.Get("/me/detailed", c.ReviewHandler.GetMyReviewDetails)
	reviews.Get("/user/:userId", c.ReviewHandler.GetReviewsByUser)
	reviews.Put("/:id", c.ReviewHandler.UpdateReview)
	reviews.Delete("/:id", c.ReviewHandler.DeleteReview)
}

func (c *Config) ReviewStyles() {
	styles := c.App.Group("/api/review-styles", c.Middleware.AuthMiddleware(c.JWTService))
	styles.Post("", c.ReviewStyleHandler.CreateReviewStyle)
	styles.Get("", c.ReviewStyleHandler.GetReviewStyles)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	favorites.Get("/me", c.FavoriteHandler.GetMyFavorites)
	favorites.Get("/me/:restaurantId", c.FavoriteHandler.IsFavorite)
	favorites.Post("/:restaurantId", c.FavoriteHandler.AddFavorite)
	favorites.Delete("/:restaurantId", c.FavoriteHandler.RemoveFavorite)
}

func (c *Config) Visits() {
	visits := c.App.Group("/api/visits", c.Middleware.AuthMiddleware(c.JWTService))
	visits.Get("/me", c.VisitHandler.GetMyVisits)
	visits.Get("/me/:restaurantId/count", c.VisitHandler.CountMyVisits)
	visits.Post("/:restaurantId", c.VisitHandler.RecordVisit)
}

func (c *Config) Statistics() {
	c.App.Get("/api/statistics/me", c.Middleware.AuthMiddleware(c.JWTService), c.StatisticsHandler.GetMyStatistics)
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/receipts", c.Middleware.AuthMiddleware(c.JWTService))
	receipts.Post("", c.ReceiptHandler.SaveReceipt)
	receipts.Get("", c.ReceiptHandler.GetMyReceipts)
}

func (c *Config) Ocr() {
	ocr := c.App.Group("/api/ocr")
	ocr.Get("/health", c.OcrHandler.Health)
	ocr.Post("/process", c.Middleware.AuthMiddleware(c.JWTService), c.OcrHandler.ProcessReceipt)
}

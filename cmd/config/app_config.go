package config

import (
	"Yoriview-Backend/internal/api/handlers"
	"Yoriview-Backend/internal/api/routes"
	"Yoriview-Backend/internal/middleware"
	"Yoriview-Backend/internal/utils"
	"Yoriview-Backend/internal/utils/mailing"
	"Yoriview-Backend/internal/utils/storage"
	"Yoriview-Backend/pkg/favorite"
	"Yoriview-Backend/pkg/jwt"
	"Yoriview-Backend/pkg/ocr"
	"Yoriview-Backend/pkg/receipt"
	"Yoriview-Backend/pkg/restaurant"
	"Yoriview-Backend/pkg/review"
	"Yoriview-Backend/pkg/statistics"
	"Yoriview-Backend/pkg/user"
	"Yoriview-Backend/pkg/visit"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

const maxUploadSize = 10 * 1024 * 1024

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:   "Yoriview",
		BodyLimit: maxUploadSize,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

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
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())
	images := receipt.NewImageStore(s3)
	if s3 == nil {
		log.Info("AWS_S3_BUCKET is empty, receipt images are stored inline")
	}
	if mailer == nil {
		log.Info("SMTP_HOST is empty, notification mail is disabled")
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	receiptRepository := receipt.NewReceiptRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	reviewStyleRepository := review.NewReviewStyleRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	visitRepository := visit.NewVisitRepository(db)

	// Service
	jwtService := jwt.NewJWTService(
		utils.GetConfig("JWT_SECRET"),
		time.Duration(utils.GetConfigInt("JWT_TTL_HOURS", 24))*time.Hour,
	)
	ocrService := ocr.NewOcrService(ocr.Config{
		Python:        utils.GetConfig("OCR_PYTHON"),
		Script:        utils.GetConfig("OCR_SCRIPT"),
		Timeout:       time.Duration(utils.GetConfigInt("OCR_TIMEOUT_SECONDS", 30)) * time.Second,
		WorkDir:       utils.GetConfig("OCR_WORK_DIR"),
		MaxConcurrent: int64(utils.GetConfigInt("OCR_MAX_CONCURRENT", 4)),
	})
	userService := user.NewUserService(userRepository, jwtService, mailer)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository)
	receiptService := receipt.NewReceiptService(receiptRepository, images)
	reviewService := review.NewReviewService(reviewRepository)
	completeReviewService := review.NewCompleteReviewService(db, images, ocrService)
	reviewStyleService := review.NewReviewStyleService(reviewStyleRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository)
	visitService := visit.NewVisitService(visitRepository)
	statisticsService := statistics.NewStatisticsService(reviewRepository, visitRepository, restaurantRepository)

	// Handler
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        handlers.NewUserHandler(userService, validator),
		RestaurantHandler:  handlers.NewRestaurantHandler(restaurantService, validator),
		ReviewHandler:      handlers.NewReviewHandler(reviewService, completeReviewService, validator),
		ReviewStyleHandler: handlers.NewReviewStyleHandler(reviewStyleService, validator),
		FavoriteHandler:    handlers.NewFavoriteHandler(favoriteService),
		VisitHandler:       handlers.NewVisitHandler(visitService),
		StatisticsHandler:  handlers.NewStatisticsHandler(statisticsService),
		ReceiptHandler:     handlers.NewReceiptHandler(receiptService, validator),
		OcrHandler:         handlers.NewOcrHandler(ocrService, maxUploadSize),
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessCreateReview    = "review created successfully"
	MessageSuccessUpdateReview    = "review updated successfully"
	MessageSuccessDeleteReview    = "review deleted successfully"
	MessageSuccessGetReviews      = "reviews retrieved successfully"
	MessageSuccessCompleteReview  = "review saved successfully"
	MessageSuccessCreateStyle     = "review style created successfully"
	MessageSuccessGetReviewStyles = "review styles retrieved successfully"

	MessageFailedCreateReview    = "failed to create review"
	MessageFailedUpdateReview    = "failed to update review"
	MessageFailedDeleteReview    = "failed to delete review"
	MessageFailedGetReviews      = "failed to retrieve reviews"
	MessageFailedCompleteReview  = "failed to save review"
	MessageFailedCreateStyle     = "failed to create review style"
	MessageFailedGetReviewStyles = "failed to retrieve review styles"

	ErrReviewNotFound        = fmt.Errorf("%w: review not found", ErrNotFound)
	ErrUnauthorizedReview    = fmt.Errorf("%w: review belongs to another user", ErrForbidden)
	ErrEmptyReviewContent    = fmt.Errorf("%w: review content must not be empty", ErrValidation)
	ErrInvalidRating         = fmt.Errorf("%w: rating must be between 0.5 and 5.0", ErrValidation)
	ErrMissingReviewRef      = fmt.Errorf("%w: receipt, style, restaurant and location ids are required", ErrValidation)
	ErrInvalidOrder          = fmt.Errorf("%w: order must be latest or oldest", ErrValidation)
	ErrReviewStyleExists     = fmt.Errorf("%w: review style id already in use", ErrConflict)
	ErrEmptyReviewStyleField = fmt.Errorf("%w: review style id and name are required", ErrValidation)
)

const (
	MinRating = 0.5
	MaxRating = 5.0
)

type (
	CreateReviewRequest struct {
		ReceiptID    string  `json:"receipt_id" validate:"required,max=36"`
		StyleID      string  `json:"style_id" validate:"required,max=20"`
		RestaurantID string  `json:"restaurant_id" validate:"required,max=36"`
		LocationID   string  `json:"location_id" validate:"required,max=10"`
		Content      string  `json:"content" validate:"required"`
		Rating       float64 `json:"rating" validate:"gte=0.5,lte=5"`
	}

	UpdateReviewRequest struct {
		StyleID    string  `json:"style_id" validate:"omitempty,max=20"`
		LocationID string  `json:"location_id" validate:"omitempty,max=10"`
		Content    string  `json:"content" validate:"required"`
		Rating     float64 `json:"rating" validate:"gte=0.5,lte=5"`
	}

	ReviewResponse struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		ReceiptID    string    `json:"receipt_id"`
		StyleID      string    `json:"style_id"`
		RestaurantID string    `json:"restaurant_id"`
		LocationID   string    `json:"location_id"`
		Content      string    `json:"content"`
		Rating       float64   `json:"rating"`
		CreatedAt    time.Time `json:"created_at"`
	}

	ReviewDetailResponse struct {
		ReviewResponse
		RestaurantName     string     `json:"restaurant_name"`
		RestaurantAddress  string     `json:"restaurant_address"`
		RestaurantCategory string     `json:"restaurant_category"`
		OriginalImg        string     `json:"original_img"`
		ReceiptDate        *time.Time `json:"receipt_date"`
	}

	OcrMenuItemRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Price    int    `json:"price" validate:"gte=0"`
		Quantity int    `json:"quantity" validate:"gte=0"`
	}

	CompleteReviewRequest struct {
		// receipt data as extracted by OCR
		ScanID            string               `json:"scan_id" validate:"omitempty,uuid"`
		OcrRestaurantName string               `json:"ocr_restaurant_name" validate:"omitempty,max=100"`
		OcrAddress        string               `json:"ocr_address" validate:"omitempty,max=255"`
		OriginalImg       string               `json:"original_img"`
		ReceiptDate       string               `json:"receipt_date"`
		OcrMenuItems      []OcrMenuItemRequest `json:"ocr_menu_items" validate:"dive"`

		// canonical restaurant, confirmed by the user
		RestaurantName     string `json:"restaurant_name" validate:"required,max=100"`
		RestaurantCategory string `json:"restaurant_category" validate:"omitempty,max=50"`
		RestaurantAddress  string `json:"restaurant_address" validate:"omitempty,max=255"`
		LocationID         string `json:"location_id" validate:"omitempty,max=10"`

		StyleID       string  `json:"style_id" validate:"omitempty,max=20"`
		ReviewContent string  `json:"review_content" validate:"required"`
		Rating        float64 `json:"rating" validate:"gte=0.5,lte=5"`
	}

	CompleteReviewResponse struct {
		ReviewID     string `json:"review_id"`
		ReceiptID    string `json:"receipt_id"`
		RestaurantID string `json:"restaurant_id"`
		Message      string `json:"message"`
		Success      bool   `json:"success"`
	}

	CreateReviewStyleRequest struct {
		ID          string `json:"id" validate:"required,max=20"`
		Name        string `json:"name" validate:"required,max=50"`
		Description string `json:"description" validate:"omitempty,max=255"`
	}

	ReviewStyleResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
)

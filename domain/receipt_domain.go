package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessSaveReceipt = "receipt saved successfully"
	MessageSuccessGetReceipts = "receipts retrieved successfully"

	MessageFailedSaveReceipt = "failed to save receipt"
	MessageFailedGetReceipts = "failed to retrieve receipts"

	ErrInvalidReceiptDate = fmt.Errorf("%w: receipt date must be formatted as yyyy-MM-dd", ErrValidation)
	ErrInvalidItemPrice   = fmt.Errorf("%w: item price must not be negative", ErrValidation)
)

const ReceiptDateLayout = "2006-01-02"

type (
	ReceiptItemRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Price    int    `json:"price" validate:"gte=0"`
		Quantity int    `json:"quantity" validate:"gte=0"`
	}

	SaveReceiptRequest struct {
		RestaurantID   string               `json:"restaurant_id" validate:"omitempty,max=36"`
		RestaurantName string               `json:"restaurant_name" validate:"omitempty,max=100"`
		ReceiptAddress string               `json:"receipt_address" validate:"omitempty,max=255"`
		ReceiptDate    string               `json:"receipt_date" validate:"omitempty"`
		OriginalImg    string               `json:"original_img"`
		Items          []ReceiptItemRequest `json:"items" validate:"dive"`
	}

	ReceiptItemResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Price    int    `json:"price"`
		Quantity int    `json:"quantity"`
	}

	ReceiptResponse struct {
		ID             string                `json:"id"`
		UserID         string                `json:"user_id"`
		RestaurantID   string                `json:"restaurant_id"`
		RestaurantName string                `json:"restaurant_name"`
		ReceiptAddress string                `json:"receipt_address"`
		ReceiptDate    *time.Time            `json:"receipt_date"`
		OriginalImg    string                `json:"original_img"`
		UploadedAt     time.Time             `json:"uploaded_at"`
		Items          []ReceiptItemResponse `json:"items"`
	}
)

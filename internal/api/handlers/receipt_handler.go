package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/receipt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReceiptHandler interface {
		SaveReceipt(c *fiber.Ctx) error
		GetMyReceipts(c *fiber.Ctx) error
	}

	receiptHandler struct {
		receiptService receipt.ReceiptService
		validator      *validator.Validate
	}
)

func NewReceiptHandler(receiptService receipt.ReceiptService, validator *validator.Validate) ReceiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
		validator:      validator,
	}
}

func (h *receiptHandler) SaveReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveReceiptRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveReceipt, err)
	}

	res, err := h.receiptService.SaveReceipt(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedSaveReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveReceipt)
}

func (h *receiptHandler) GetMyReceipts(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.receiptService.GetMyReceipts(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetReceipts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReceipts)
}

package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/review"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewStyleHandler interface {
		CreateReviewStyle(c *fiber.Ctx) error
		GetReviewStyles(c *fiber.Ctx) error
	}

	reviewStyleHandler struct {
		reviewStyleService review.ReviewStyleService
		validator          *validator.Validate
	}
)

func NewReviewStyleHandler(reviewStyleService review.ReviewStyleService, validator *validator.Validate) ReviewStyleHandler {
	return &reviewStyleHandler{
		reviewStyleService: reviewStyleService,
		validator:          validator,
	}
}

func (h *reviewStyleHandler) CreateReviewStyle(c *fiber.Ctx) error {
	req := new(domain.CreateReviewStyleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStyle, err)
	}

	res, err := h.reviewStyleService.CreateReviewStyle(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateStyle, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStyle)
}

func (h *reviewStyleHandler) GetReviewStyles(c *fiber.Ctx) error {
	res, err := h.reviewStyleService.GetReviewStyles(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetReviewStyles, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviewStyles)
}

package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/review"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		CreateReview(c *fiber.Ctx) error
		UpdateReview(c *fiber.Ctx) error
		DeleteReview(c *fiber.Ctx) error
		GetReviews(c *fiber.Ctx) error
		GetReviewsByUser(c *fiber.Ctx) error
		GetMyReviews(c *fiber.Ctx) error
		GetMyReviewDetails(c *fiber.Ctx) error
		SubmitCompleteReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService         review.ReviewService
		completeReviewService review.CompleteReviewService
		validator             *validator.Validate
	}
)

func NewReviewHandler(
	reviewService review.ReviewService,
	completeReviewService review.CompleteReviewService,
	validator *validator.Validate,
) ReviewHandler {
	return &reviewHandler{
		reviewService:         reviewService,
		completeReviewService: completeReviewService,
		validator:             validator,
	}
}

func (h *reviewHandler) CreateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReview, err)
	}

	res, err := h.reviewService.CreateReview(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateReview)
}

func (h *reviewHandler) UpdateReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	reviewID := c.Params("id")
	req := new(domain.UpdateReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateReview, err)
	}

	res, err := h.reviewService.UpdateReview(c.Context(), userID, reviewID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedUpdateReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateReview)
}

func (h *reviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.reviewService.DeleteReview(c.Context(), userID, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedDeleteReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReview)
}

func (h *reviewHandler) GetReviews(c *fiber.Ctx) error {
	res, err := h.reviewService.GetReviews(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetReviewsByUser(c *fiber.Ctx) error {
	res, err := h.reviewService.GetReviewsByUser(c.Context(), c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetMyReviews(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reviewService.GetMyReviews(c.Context(), userID, c.Query("order", domain.OrderLatest))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetMyReviewDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reviewService.GetMyReviewDetails(c.Context(), userID, c.Query("order", domain.OrderLatest))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

// SubmitCompleteReview answers with the bare ids object rather than the envelope.
func (h *reviewHandler) SubmitCompleteReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CompleteReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteReview, err)
	}

	res, err := h.completeReviewService.SubmitCompleteReview(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCompleteReview, err)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

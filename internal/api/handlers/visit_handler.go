package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/visit"
	"github.com/gofiber/fiber/v2"
)

type (
	VisitHandler interface {
		RecordVisit(c *fiber.Ctx) error
		GetMyVisits(c *fiber.Ctx) error
		CountMyVisits(c *fiber.Ctx) error
	}

	visitHandler struct {
		visitService visit.VisitService
	}
)

func NewVisitHandler(visitService visit.VisitService) VisitHandler {
	return &visitHandler{visitService: visitService}
}

func (h *visitHandler) RecordVisit(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.visitService.RecordVisit(c.Context(), userID, c.Params("restaurantId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRecordVisit, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordVisit)
}

func (h *visitHandler) GetMyVisits(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.visitService.GetMyVisits(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetVisits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVisits)
}

func (h *visitHandler) CountMyVisits(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.visitService.CountMyVisits(c.Context(), userID, c.Params("restaurantId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCountVisits, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCountVisits)
}

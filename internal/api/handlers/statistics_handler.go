package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/statistics"
	"github.com/gofiber/fiber/v2"
)

type (
	StatisticsHandler interface {
		GetMyStatistics(c *fiber.Ctx) error
	}

	statisticsHandler struct {
		statisticsService statistics.StatisticsService
	}
)

func NewStatisticsHandler(statisticsService statistics.StatisticsService) StatisticsHandler {
	return &statisticsHandler{statisticsService: statisticsService}
}

func (h *statisticsHandler) GetMyStatistics(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statisticsService.GetUserStatistics(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetStatistics, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStatistics)
}

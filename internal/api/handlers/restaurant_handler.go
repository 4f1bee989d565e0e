package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/restaurant"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RestaurantHandler interface {
		CreateRestaurant(c *fiber.Ctx) error
		GetRestaurants(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		GetVisitedRestaurants(c *fiber.Ctx) error
	}

	restaurantHandler struct {
		restaurantService restaurant.RestaurantService
		validator         *validator.Validate
	}
)

func NewRestaurantHandler(restaurantService restaurant.RestaurantService, validator *validator.Validate) RestaurantHandler {
	return &restaurantHandler{
		restaurantService: restaurantService,
		validator:         validator,
	}
}

func (h *restaurantHandler) CreateRestaurant(c *fiber.Ctx) error {
	req := new(domain.CreateRestaurantRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRestaurant, err)
	}

	res, err := h.restaurantService.CreateRestaurant(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateRestaurant, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRestaurant)
}

func (h *restaurantHandler) GetRestaurants(c *fiber.Ctx) error {
	res, err := h.restaurantService.GetRestaurants(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRestaurants)
}

func (h *restaurantHandler) GetLocations(c *fiber.Ctx) error {
	res, err := h.restaurantService.GetLocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetLocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *restaurantHandler) GetVisitedRestaurants(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.restaurantService.GetVisitedRestaurants(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetVisitedRestaurants, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVisitedRestaurants)
}

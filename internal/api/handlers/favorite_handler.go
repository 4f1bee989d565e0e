package handlers

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/api/presenters"
	"Yoriview-Backend/pkg/favorite"
	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetMyFavorites(c *fiber.Ctx) error
		IsFavorite(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService) FavoriteHandler {
	return &favoriteHandler{favoriteService: favoriteService}
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.favoriteService.AddFavorite(c.Context(), userID, c.Params("restaurantId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.favoriteService.RemoveFavorite(c.Context(), userID, c.Params("restaurantId")); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *favoriteHandler) GetMyFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.favoriteService.GetMyFavorites(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *favoriteHandler) IsFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.favoriteService.IsFavorite(c.Context(), userID, c.Params("restaurantId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCheckFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckFavorite)
}

package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessAddFavorite    = "restaurant added to favorites"
	MessageSuccessRemoveFavorite = "restaurant removed from favorites"
	MessageSuccessGetFavorites   = "favorites retrieved successfully"
	MessageSuccessCheckFavorite  = "favorite status retrieved successfully"

	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to retrieve favorites"
	MessageFailedCheckFavorite  = "failed to check favorite"

	ErrFavoriteAlreadyExists = fmt.Errorf("%w: restaurant already favorited", ErrConflict)
	ErrEmptyRestaurantID     = fmt.Errorf("%w: restaurant id is required", ErrValidation)
)

type (
	FavoriteResponse struct {
		ID                 string    `json:"id"`
		RestaurantID       string    `json:"restaurant_id"`
		RestaurantName     string    `json:"restaurant_name"`
		RestaurantCategory string    `json:"restaurant_category"`
		RestaurantAddress  string    `json:"restaurant_address"`
		CreatedAt          time.Time `json:"created_at"`
	}

	FavoriteStatusResponse struct {
		RestaurantID string `json:"restaurant_id"`
		Favorited    bool   `json:"favorited"`
	}
)

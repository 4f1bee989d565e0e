package domain

import "fmt"

var (
	MessageSuccessCreateRestaurant      = "restaurant created successfully"
	MessageSuccessGetRestaurants        = "restaurants retrieved successfully"
	MessageSuccessGetLocations          = "locations retrieved successfully"
	MessageSuccessGetVisitedRestaurants = "visited restaurants retrieved successfully"

	MessageFailedCreateRestaurant      = "failed to create restaurant"
	MessageFailedGetRestaurants        = "failed to retrieve restaurants"
	MessageFailedGetLocations          = "failed to retrieve locations"
	MessageFailedGetVisitedRestaurants = "failed to retrieve visited restaurants"

	ErrRestaurantNotFound  = fmt.Errorf("%w: restaurant not found", ErrNotFound)
	ErrEmptyRestaurantName = fmt.Errorf("%w: restaurant name must not be empty", ErrValidation)
)

type (
	CreateRestaurantRequest struct {
		Name       string `json:"name" validate:"required,max=100"`
		Category   string `json:"category" validate:"omitempty,max=50"`
		Address    string `json:"address" validate:"omitempty,max=255"`
		LocationID string `json:"location_id" validate:"omitempty,max=10"`
	}

	RestaurantResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Category   string `json:"category"`
		Address    string `json:"address"`
		LocationID string `json:"location_id"`
	}

	LocationResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

package domain

import "time"

var (
	MessageSuccessRecordVisit = "visit recorded successfully"
	MessageSuccessGetVisits   = "visits retrieved successfully"
	MessageSuccessCountVisits = "visit count retrieved successfully"

	MessageFailedRecordVisit = "failed to record visit"
	MessageFailedGetVisits   = "failed to retrieve visits"
	MessageFailedCountVisits = "failed to count visits"
)

type (
	VisitResponse struct {
		ID           string    `json:"id"`
		RestaurantID string    `json:"restaurant_id"`
		VisitedAt    time.Time `json:"visited_at"`
	}

	VisitCountResponse struct {
		RestaurantID string `json:"restaurant_id"`
		Count        int64  `json:"count"`
	}
)

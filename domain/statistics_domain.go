package domain

var (
	MessageSuccessGetStatistics = "statistics retrieved successfully"
	MessageFailedGetStatistics  = "failed to retrieve statistics"
)

const (
	MonthKeyLayout     = "2006-01"
	TopVisitedCapacity = 3
)

type (
	TopVisitedRestaurant struct {
		RestaurantID string `json:"restaurant_id"`
		Name         string `json:"name"`
		Category     string `json:"category"`
		VisitCount   int    `json:"visit_count"`
	}

	UserStatisticsResponse struct {
		TotalReviewCount      int                    `json:"total_review_count"`
		AvgRating             float64                `json:"avg_rating"`
		ThisMonthReviewCount  int                    `json:"this_month_review_count"`
		MonthlyReviewCount    map[string]int         `json:"monthly_review_count"`
		RatingDistribution    map[string]int         `json:"rating_distribution"`
		CategoryDistribution  map[string]int         `json:"category_distribution"`
		TopVisitedRestaurants []TopVisitedRestaurant `json:"top_visited_restaurants"`
	}
)

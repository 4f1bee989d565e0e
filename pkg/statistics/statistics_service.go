package statistics

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"Yoriview-Backend/pkg/restaurant"
	"Yoriview-Backend/pkg/review"
	"Yoriview-Backend/pkg/visit"
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

const uncategorized = "uncategorized"

type (
	StatisticsService interface {
		GetUserStatistics(ctx context.Context, userID string) (domain.UserStatisticsResponse, error)
	}

	statisticsService struct {
		reviewRepository     review.ReviewRepository
		visitRepository      visit.VisitRepository
		restaurantRepository restaurant.RestaurantRepository
		now                  func() time.Time
	}
)

func NewStatisticsService(
	reviewRepository review.ReviewRepository,
	visitRepository visit.VisitRepository,
	restaurantRepository restaurant.RestaurantRepository,
) StatisticsService {
	return &statisticsService{
		reviewRepository:     reviewRepository,
		visitRepository:      visitRepository,
		restaurantRepository: restaurantRepository,
		now:                  time.Now,
	}
}

// GetUserStatistics recomputes everything from the user's reviews and visits.
func (s *statisticsService) GetUserStatistics(ctx context.Context, userID string) (domain.UserStatisticsResponse, error) {
	reviews, err := s.reviewRepository.GetReviewsByUser(ctx, userID, true)
	if err != nil {
		return domain.UserStatisticsResponse{}, err
	}
	visits, err := s.visitRepository.GetVisitsByUser(ctx, userID)
	if err != nil {
		return domain.UserStatisticsResponse{}, err
	}

	seen := map[string]bool{}
	var ids []string
	for _, r := range reviews {
		if !seen[r.RestaurantID] {
			seen[r.RestaurantID] = true
			ids = append(ids, r.RestaurantID)
		}
	}
	for _, v := range visits {
		if !seen[v.RestaurantID] {
			seen[v.RestaurantID] = true
			ids = append(ids, v.RestaurantID)
		}
	}
	restaurants, err := s.restaurantRepository.GetRestaurantsByIDs(ctx, ids)
	if err != nil {
		return domain.UserStatisticsResponse{}, err
	}
	byID := make(map[string]*entities.Restaurant, len(restaurants))
	for _, r := range restaurants {
		byID[r.ID] = r
	}

	return Aggregate(reviews, visits, byID, s.now()), nil
}

// Aggregate groups reviews and visits. Reviews or visits whose restaurant is
// not in restaurants are left out of the category and top-visited figures.
func Aggregate(reviews []*entities.Review, visits []*entities.VisitLog, restaurants map[string]*entities.Restaurant, now time.Time) domain.UserStatisticsResponse {
	res := domain.UserStatisticsResponse{
		TotalReviewCount:      len(reviews),
		MonthlyReviewCount:    map[string]int{},
		RatingDistribution:    map[string]int{},
		CategoryDistribution:  map[string]int{},
		TopVisitedRestaurants: []domain.TopVisitedRestaurant{},
	}

	thisMonth := now.Format(domain.MonthKeyLayout)
	var ratingSum float64
	for _, r := range reviews {
		ratingSum += r.Rating

		month := r.CreatedAt.In(now.Location()).Format(domain.MonthKeyLayout)
		res.MonthlyReviewCount[month]++
		if month == thisMonth {
			res.ThisMonthReviewCount++
		}

		res.RatingDistribution[fmt.Sprintf("%.1f", math.Round(r.Rating*10)/10)]++

		if rest, ok := restaurants[r.RestaurantID]; ok {
			category := rest.Category
			if category == "" {
				category = uncategorized
			}
			res.CategoryDistribution[category]++
		}
	}
	if len(reviews) > 0 {
		res.AvgRating = math.Round(ratingSum/float64(len(reviews))*10) / 10
	}

	res.TopVisitedRestaurants = topVisited(visits, restaurants)
	return res
}

func topVisited(visits []*entities.VisitLog, restaurants map[string]*entities.Restaurant) []domain.TopVisitedRestaurant {
	counts := map[string]int{}
	var order []string
	for _, v := range visits {
		if _, ok := restaurants[v.RestaurantID]; !ok {
			continue
		}
		if counts[v.RestaurantID] == 0 {
			order = append(order, v.RestaurantID)
		}
		counts[v.RestaurantID]++
	}

	// stable: equal counts keep the order of each restaurant's first visit
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > domain.TopVisitedCapacity {
		order = order[:domain.TopVisitedCapacity]
	}

	top := make([]domain.TopVisitedRestaurant, 0, len(order))
	for _, id := range order {
		rest := restaurants[id]
		top = append(top, domain.TopVisitedRestaurant{
			RestaurantID: id,
			Name:         rest.Name,
			Category:     rest.Category,
			VisitCount:   counts[id],
		})
	}
	return top
}

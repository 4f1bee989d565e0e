package review

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
	"math"
	"strings"
)

type (
	ReviewService interface {
		CreateReview(ctx context.Context, userID string, req domain.CreateReviewRequest) (domain.ReviewResponse, error)
		UpdateReview(ctx context.Context, userID string, reviewID string, req domain.UpdateReviewRequest) (domain.ReviewResponse, error)
		DeleteReview(ctx context.Context, userID string, reviewID string) error
		GetReviews(ctx context.Context) ([]domain.ReviewResponse, error)
		GetReviewsByUser(ctx context.Context, userID string) ([]domain.ReviewResponse, error)
		GetMyReviews(ctx context.Context, userID string, order string) ([]domain.ReviewResponse, error)
		GetMyReviewDetails(ctx context.Context, userID string, order string) ([]domain.ReviewDetailResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
	}
)

func NewReviewService(reviewRepository ReviewRepository) ReviewService {
	return &reviewService{reviewRepository: reviewRepository}
}

// ValidateReview checks the user-authored part of a review and returns the
// rating rounded to one decimal.
func ValidateReview(content string, rating float64) (float64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, domain.ErrEmptyReviewContent
	}
	if math.IsNaN(rating) || rating < domain.MinRating || rating > domain.MaxRating {
		return 0, domain.ErrInvalidRating
	}
	return math.Round(rating*10) / 10, nil
}

// ParseOrder maps the order query parameter to ascending creation time.
func ParseOrder(order string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", domain.OrderLatest:
		return false, nil
	case domain.OrderOldest:
		return true, nil
	default:
		return false, domain.ErrInvalidOrder
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req domain.CreateReviewRequest) (domain.ReviewResponse, error) {
	rating, err := ValidateReview(req.Content, req.Rating)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if req.ReceiptID == "" || req.StyleID == "" || req.RestaurantID == "" || req.LocationID == "" {
		return domain.ReviewResponse{}, domain.ErrMissingReviewRef
	}

	review := &entities.Review{
		UserID:       userID,
		ReceiptID:    req.ReceiptID,
		StyleID:      req.StyleID,
		RestaurantID: req.RestaurantID,
		LocationID:   req.LocationID,
		Content:      strings.TrimSpace(req.Content),
		Rating:       rating,
	}
	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}
	return ToReviewResponse(review), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, userID string, reviewID string, req domain.UpdateReviewRequest) (domain.ReviewResponse, error) {
	review, err := s.getOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}

	rating, err := ValidateReview(req.Content, req.Rating)
	if err != nil {
		return domain.ReviewResponse{}, err
	}

	review.Content = strings.TrimSpace(req.Content)
	review.Rating = rating
	review.StyleID = req.StyleID
	review.LocationID = req.LocationID

	if err := s.reviewRepository.UpdateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}
	return ToReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, userID string, reviewID string) error {
	if _, err := s.getOwnedReview(ctx, userID, reviewID); err != nil {
		return err
	}
	return s.reviewRepository.DeleteReview(ctx, reviewID)
}

func (s *reviewService) GetReviews(ctx context.Context) ([]domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.GetReviews(ctx, false)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewService) GetReviewsByUser(ctx context.Context, userID string) ([]domain.ReviewResponse, error) {
	reviews, err := s.reviewRepository.GetReviewsByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewService) GetMyReviews(ctx context.Context, userID string, order string) ([]domain.ReviewResponse, error) {
	ascending, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepository.GetReviewsByUser(ctx, userID, ascending)
	if err != nil {
		return nil, err
	}
	return toReviewResponses(reviews), nil
}

func (s *reviewService) GetMyReviewDetails(ctx context.Context, userID string, order string) ([]domain.ReviewDetailResponse, error) {
	ascending, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}
	details, err := s.reviewRepository.GetReviewDetailsByUser(ctx, userID, ascending)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReviewDetailResponse, 0, len(details))
	for _, d := range details {
		res = append(res, domain.ReviewDetailResponse{
			ReviewResponse:     ToReviewResponse(&d.Review),
			RestaurantName:     deref(d.RestaurantName),
			RestaurantAddress:  deref(d.RestaurantAddress),
			RestaurantCategory: deref(d.RestaurantCategory),
			OriginalImg:        deref(d.OriginalImg),
			ReceiptDate:        d.ReceiptDate,
		})
	}
	return res, nil
}

func (s *reviewService) getOwnedReview(ctx context.Context, userID string, reviewID string) (*entities.Review, error) {
	review, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, domain.ErrUnauthorizedReview
	}
	return review, nil
}

func ToReviewResponse(r *entities.Review) domain.ReviewResponse {
	return domain.ReviewResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		ReceiptID:    r.ReceiptID,
		StyleID:      r.StyleID,
		RestaurantID: r.RestaurantID,
		LocationID:   r.LocationID,
		Content:      r.Content,
		Rating:       r.Rating,
		CreatedAt:    r.CreatedAt,
	}
}

func toReviewResponses(reviews []*entities.Review) []domain.ReviewResponse {
	res := make([]domain.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		res = append(res, ToReviewResponse(r))
	}
	return res
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

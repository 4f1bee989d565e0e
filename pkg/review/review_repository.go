package review

import (
	"Yoriview-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByID(ctx context.Context, id string) (*entities.Review, error)
		UpdateReview(ctx context.Context, review *entities.Review) error
		DeleteReview(ctx context.Context, id string) error
		GetReviews(ctx context.Context, ascending bool) ([]*entities.Review, error)
		GetReviewsByUser(ctx context.Context, userID string, ascending bool) ([]*entities.Review, error)
		GetReviewDetailsByUser(ctx context.Context, userID string, ascending bool) ([]*ReviewDetail, error)
	}

	// ReviewDetail is a review joined with its restaurant and receipt.
	// The joined columns are nil when the referenced row is gone.
	ReviewDetail struct {
		entities.Review
		RestaurantName     *string
		RestaurantAddress  *string
		RestaurantCategory *string
		OriginalImg        *string
		ReceiptDate        *time.Time
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func createdOrder(ascending bool) string {
	if ascending {
		return "reviews.created_at asc"
	}
	return "reviews.created_at desc"
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Model(review).Select("content", "rating", "style_id", "location_id").Updates(review).Error
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Review{}).Error
}

func (r *reviewRepository) GetReviews(ctx context.Context, ascending bool) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).Order(createdOrder(ascending)).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetReviewsByUser(ctx context.Context, userID string, ascending bool) ([]*entities.Review, error) {
	var reviews []*entities.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(createdOrder(ascending)).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetReviewDetailsByUser(ctx context.Context, userID string, ascending bool) ([]*ReviewDetail, error) {
	var details []*ReviewDetail
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select(`reviews.*,
			restaurants.name AS restaurant_name,
			restaurants.address AS restaurant_address,
			restaurants.category AS restaurant_category,
			receipts.original_img AS original_img,
			receipts.receipt_date AS receipt_date`).
		Joins("LEFT JOIN restaurants ON restaurants.id = reviews.restaurant_id").
		Joins("LEFT JOIN receipts ON receipts.id = reviews.receipt_id").
		Where("reviews.user_id = ?", userID).
		Order(createdOrder(ascending)).
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

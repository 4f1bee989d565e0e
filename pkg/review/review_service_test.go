package review_test

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"Yoriview-Backend/internal/testutil"
	"Yoriview-Backend/pkg/review"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"testing"
	"time"
)

func newReviewService(t *testing.T) (review.ReviewService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return review.NewReviewService(review.NewReviewRepository(db)), db
}

func validCreate() domain.CreateReviewRequest {
	return domain.CreateReviewRequest{
		ReceiptID:    "receipt-1",
		StyleID:      "FRIENDLY",
		RestaurantID: "restaurant-1",
		LocationID:   "GN",
		Content:      "Great noodles",
		Rating:       4.5,
	}
}

func TestValidateReview(t *testing.T) {
	cases := []struct {
		content string
		rating  float64
		want    float64
		err     error
	}{
		{"ok", 0.5, 0.5, nil},
		{"ok", 5.0, 5.0, nil},
		{"ok", 3.14, 3.1, nil},
		{"ok", 0.4, 0, domain.ErrInvalidRating},
		{"ok", 0.45, 0, domain.ErrInvalidRating},
		{"ok", 5.04, 0, domain.ErrInvalidRating},
		{"ok", 5.1, 0, domain.ErrInvalidRating},
		{"ok", -1, 0, domain.ErrInvalidRating},
		{"   ", 3, 0, domain.ErrEmptyReviewContent},
	}
	for _, c := range cases {
		got, err := review.ValidateReview(c.content, c.rating)
		if c.err != nil {
			assert.ErrorIs(t, err, c.err, "rating %v", c.rating)
			assert.ErrorIs(t, err, domain.ErrValidation)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-9)
	}
}

func TestCreateReviewRequiresReferences(t *testing.T) {
	svc, _ := newReviewService(t)
	req := validCreate()
	req.LocationID = ""

	_, err := svc.CreateReview(context.Background(), "owner", req)
	assert.ErrorIs(t, err, domain.ErrMissingReviewRef)
}

func TestNonOwnerCannotEditOrDelete(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, "owner", validCreate())
	require.NoError(t, err)

	_, err = svc.UpdateReview(ctx, "intruder", created.ID, domain.UpdateReviewRequest{Content: "hacked", Rating: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedReview)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = svc.DeleteReview(ctx, "intruder", created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	mine, err := svc.GetMyReviews(ctx, "owner", "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Great noodles", mine[0].Content)
	assert.Equal(t, 4.5, mine[0].Rating)
}

func TestOwnerEditReplacesMutableFieldsOnly(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, "owner", validCreate())
	require.NoError(t, err)

	updated, err := svc.UpdateReview(ctx, "owner", created.ID, domain.UpdateReviewRequest{
		StyleID:    "EXPERT",
		LocationID: "MP",
		Content:    "Even better the second time",
		Rating:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, "EXPERT", updated.StyleID)

	mine, err := svc.GetMyReviews(ctx, "owner", domain.OrderLatest)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	got := mine[0]
	assert.Equal(t, "Even better the second time", got.Content)
	assert.Equal(t, 5.0, got.Rating)
	assert.Equal(t, "EXPERT", got.StyleID)
	assert.Equal(t, "MP", got.LocationID)
	assert.Equal(t, "receipt-1", got.ReceiptID)
	assert.Equal(t, "restaurant-1", got.RestaurantID)

	_, err = svc.UpdateReview(ctx, "owner", created.ID, domain.UpdateReviewRequest{Content: "x", Rating: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestDeleteReview(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	created, err := svc.CreateReview(ctx, "owner", validCreate())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteReview(ctx, "owner", created.ID))

	err = svc.DeleteReview(ctx, "owner", created.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestListOrdering(t *testing.T) {
	svc, db := newReviewService(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, content := range []string{"first", "second", "third"} {
		r := &entities.Review{UserID: "owner", Content: content, Rating: 3}
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, db.Create(r).Error)
	}
	require.NoError(t, db.Create(&entities.Review{UserID: "other", Content: "theirs", Rating: 2}).Error)

	latest, err := svc.GetMyReviews(ctx, "owner", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "second", "first"}, contents(latest))

	oldest, err := svc.GetMyReviews(ctx, "owner", domain.OrderOldest)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, contents(oldest))

	_, err = svc.GetMyReviews(ctx, "owner", "random")
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)

	all, err := svc.GetReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byUser, err := svc.GetReviewsByUser(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, []string{"theirs"}, contents(byUser))
}

func TestMyReviewDetailsJoinRestaurantAndReceipt(t *testing.T) {
	svc, db := newReviewService(t)
	ctx := context.Background()

	rest := &entities.Restaurant{Name: "Noodle House", Address: "1 Main St", Category: "Korean"}
	require.NoError(t, db.Create(rest).Error)
	rec := &entities.Receipt{UserID: "owner", RestaurantID: rest.ID, OriginalImg: "img-ref"}
	require.NoError(t, db.Create(rec).Error)
	require.NoError(t, db.Create(&entities.Review{UserID: "owner", ReceiptID: rec.ID, RestaurantID: rest.ID, Content: "joined", Rating: 4}).Error)
	require.NoError(t, db.Create(&entities.Review{UserID: "owner", ReceiptID: "gone", RestaurantID: "gone", Content: "dangling", Rating: 2}).Error)

	details, err := svc.GetMyReviewDetails(ctx, "owner", domain.OrderOldest)
	require.NoError(t, err)
	require.Len(t, details, 2)

	byContent := map[string]domain.ReviewDetailResponse{}
	for _, d := range details {
		byContent[d.Content] = d
	}
	assert.Equal(t, "Noodle House", byContent["joined"].RestaurantName)
	assert.Equal(t, "Korean", byContent["joined"].RestaurantCategory)
	assert.Equal(t, "img-ref", byContent["joined"].OriginalImg)
	assert.Empty(t, byContent["dangling"].RestaurantName)
}

func TestReviewStyles(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := review.NewReviewStyleService(review.NewReviewStyleRepository(db))
	ctx := context.Background()

	created, err := svc.CreateReviewStyle(ctx, domain.CreateReviewStyleRequest{ID: "friendly", Name: "Friendly"})
	require.NoError(t, err)
	assert.Equal(t, "FRIENDLY", created.ID)

	_, err = svc.CreateReviewStyle(ctx, domain.CreateReviewStyleRequest{ID: "FRIENDLY", Name: "Again"})
	assert.ErrorIs(t, err, domain.ErrReviewStyleExists)

	styles, err := svc.GetReviewStyles(ctx)
	require.NoError(t, err)
	assert.Len(t, styles, 1)
}

func contents(reviews []domain.ReviewResponse) []string {
	out := make([]string, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, r.Content)
	}
	return out
}

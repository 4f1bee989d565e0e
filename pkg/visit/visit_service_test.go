package visit_test

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/testutil"
	"Yoriview-Backend/pkg/visit"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRecordListAndCountVisits(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := visit.NewVisitService(visit.NewVisitRepository(db))
	ctx := context.Background()

	for _, restaurantID := range []string{"rest-1", "rest-2", "rest-1"} {
		_, err := svc.RecordVisit(ctx, "user-1", restaurantID)
		require.NoError(t, err)
	}
	_, err := svc.RecordVisit(ctx, "user-2", "rest-1")
	require.NoError(t, err)

	visits, err := svc.GetMyVisits(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, "rest-1", visits[0].RestaurantID)
	assert.Equal(t, "rest-2", visits[1].RestaurantID)

	count, err := svc.CountMyVisits(ctx, "user-1", "rest-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count.Count)

	count, err = svc.CountMyVisits(ctx, "user-1", "rest-9")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count.Count)
}

func TestRecordVisitRequiresRestaurant(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := visit.NewVisitService(visit.NewVisitRepository(db))

	_, err := svc.RecordVisit(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, domain.ErrEmptyRestaurantID)
}

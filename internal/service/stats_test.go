package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/mocks"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

func TestGetStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newService := func() (*service.StatsService, *mocks.MockPostRepositoryIface, *mocks.MockSubunitRepositoryIface) {
		postRepo := mocks.NewMockPostRepositoryIface(ctrl)
		subunitRepo := mocks.NewMockSubunitRepositoryIface(ctrl)
		return service.NewStatsService(postRepo, subunitRepo), postRepo, subunitRepo
	}

	alice := model.Employee{ID: uuid.New(), FullName: "Alice Adams"}
	bob := model.Employee{ID: uuid.New(), FullName: "Bob Brown"}
	carol := model.Employee{ID: uuid.New(), FullName: "Carol Clark"}

	subunits := []*model.Subunit{
		{ID: uuid.New(), Name: "Engineering", Employees: []model.Employee{alice, bob}},
		{ID: uuid.New(), Name: "Sales", Employees: []model.Employee{carol}},
	}

	publishedAt := func(year int, month time.Month) *time.Time {
		ts := time.Date(year, month, 10, 12, 0, 0, 0, time.UTC)
		return &ts
	}

	t.Run("dense matrix across a year rollover", func(t *testing.T) {
		svc, postRepo, subunitRepo := newService()

		subunitRepo.EXPECT().FindAll(gomock.Any()).Return(subunits, nil)

		start := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		postRepo.EXPECT().
			FindPublishedBetween(gomock.Any(), start, end,
				[]model.PostStatus{model.StatusPosted, model.StatusArchived}).
			Return([]*model.Post{
				{AuthorID: alice.ID, PublishedOn: publishedAt(2025, time.November)},
				{AuthorID: alice.ID, PublishedOn: publishedAt(2025, time.November)},
				{AuthorID: carol.ID, PublishedOn: publishedAt(2026, time.January)},
				// Unknown author: not on any roster, silently skipped.
				{AuthorID: uuid.New(), PublishedOn: publishedAt(2026, time.February)},
			}, nil)

		stats, err := svc.GetStatistics(context.Background(), 2025, 11, 2026, 2)
		require.NoError(t, err)

		// Four months, each with every subunit and every employee.
		require.Len(t, stats, 4)
		for _, label := range []string{"2025-11", "2025-12", "2026-01", "2026-02"} {
			require.Contains(t, stats, label)
			require.Len(t, stats[label], 2)
			assert.Len(t, stats[label]["Engineering"], 2)
			assert.Len(t, stats[label]["Sales"], 1)
		}

		assert.Equal(t, 2, stats["2025-11"]["Engineering"]["Alice Adams"])
		assert.Equal(t, 0, stats["2025-11"]["Engineering"]["Bob Brown"])
		assert.Equal(t, 1, stats["2026-01"]["Sales"]["Carol Clark"])
		assert.Equal(t, 0, stats["2026-02"]["Sales"]["Carol Clark"])
	})

	t.Run("single month period", func(t *testing.T) {
		svc, postRepo, subunitRepo := newService()

		subunitRepo.EXPECT().FindAll(gomock.Any()).Return(subunits, nil)
		postRepo.EXPECT().
			FindPublishedBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		stats, err := svc.GetStatistics(context.Background(), 2026, 7, 2026, 7)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Contains(t, stats, "2026-07")
	})

	t.Run("month out of range", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.GetStatistics(context.Background(), 2026, 13, 2026, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, _, _ := newService()

		_, err := svc.GetStatistics(context.Background(), 2026, 5, 2026, 2)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	})
}

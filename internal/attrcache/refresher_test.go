package attrcache_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/bottrack/internal/attrcache"
	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/mocks"
	"github.com/trackforge/bottrack/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestFetchDetails_DedupesIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	details := mocks.NewMockAttrDetailSource(ctrl)
	clock := mocks.NewMockClock(ctrl)
	refresher := attrcache.NewRefresher(mockStore, details, clock)

	details.EXPECT().
		EntityDetailsByIDs(gomock.Any(), []string{"bot-a", "bot-b"}).
		Return([]domain.EntityDetail{{EntityID: "bot-a"}, {EntityID: "bot-b"}}, nil)

	got, err := refresher.FetchDetails(context.Background(), []string{"bot-a", "bot-b", "bot-a", ""})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFetchDetails_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refresher := attrcache.NewRefresher(
		mocks.NewMockStore(ctrl),
		mocks.NewMockAttrDetailSource(ctrl),
		mocks.NewMockClock(ctrl),
	)

	got, err := refresher.FetchDetails(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, got, "no lookup for an empty id set")
}

func TestRefreshTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	refresher := attrcache.NewRefresher(mockStore, mocks.NewMockAttrDetailSource(ctrl), clock)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	mockStore.EXPECT().
		UpsertTags(gomock.Any(), map[string][]string{
			"bot-a": {"anime", "fantasy"},
			"bot-b": nil,
		}, now).
		Return(nil)

	n, err := refresher.RefreshTags(context.Background(), []domain.EntityDetail{
		{EntityID: "bot-a", Tags: []string{"anime", "fantasy"}},
		{EntityID: "bot-b"},
		{EntityID: "", Tags: []string{"dropped"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRefreshRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	refresher := attrcache.NewRefresher(mockStore, mocks.NewMockAttrDetailSource(ctrl), clock)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	period := domain.Period("2025-03-01")
	clock.EXPECT().Now().Return(now)
	mockStore.EXPECT().
		UpsertRatings(gomock.Any(), gomock.Any(), now).
		DoAndReturn(func(_ context.Context, ratings map[string]*float64, _ time.Time) error {
			require.Len(t, ratings, 2)
			require.NotNil(t, ratings["bot-a"])
			assert.Equal(t, 4.5, *ratings["bot-a"])
			assert.Nil(t, ratings["bot-b"], "missing rating is cached as null")
			return nil
		})
	mockStore.EXPECT().
		ReplaceRatingHistoryForPeriod(gomock.Any(), period, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Period, rows []schema.RatingHistory) error {
			require.Len(t, rows, 2)
			assert.Equal(t, period, rows[0].Period)
			return nil
		})

	n, err := refresher.RefreshRatings(context.Background(), period, []domain.EntityDetail{
		{EntityID: "bot-a", Rating: floatPtr(4.5)},
		{EntityID: "bot-b"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRefreshRatings_UpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	refresher := attrcache.NewRefresher(mockStore, mocks.NewMockAttrDetailSource(ctrl), clock)

	clock.EXPECT().Now().Return(time.Now())
	mockStore.EXPECT().
		UpsertRatings(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	n, err := refresher.RefreshRatings(context.Background(), "2025-03-01", []domain.EntityDetail{
		{EntityID: "bot-a"},
	})

	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

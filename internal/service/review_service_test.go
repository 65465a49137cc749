package service_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"foodigo/internal/domain"
	"foodigo/internal/mocks"
	"foodigo/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewService_Add(t *testing.T) {
	tests := []struct {
		name      string
		review    domain.Review
		setup     func(*mocks.ReviewRepository, *mocks.UserRepository, *mocks.ReviewCache, *mocks.EventPublisher)
		wantErr   error
		wantValid bool
	}{
		{
			name:   "stored and published",
			review: domain.Review{FoodID: "f1", UserID: "u1", Rating: 5, Comment: "Great"},
			setup: func(repo *mocks.ReviewRepository, users *mocks.UserRepository, cache *mocks.ReviewCache, pub *mocks.EventPublisher) {
				users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ada"}, nil).Once()
				cache.On("ReviewMarkerKey", "f1", "u1").Return("review:f1:u1").Once()
				cache.On("Exists", mock.Anything, "review:f1:u1").Return(false, nil).Once()
				repo.On("InsertReview", mock.Anything, mock.MatchedBy(func(r *domain.Review) bool {
					return r.UserName == "Ada" && r.ID != ""
				})).Return(nil).Once()
				cache.On("SetMarker", mock.Anything, "review:f1:u1").Return(nil).Once()
				pub.On("Publish", mock.Anything, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventNewReview && e.FoodID == "f1" && e.Rating == 5
				})).Return(errors.New("kafka down")).Once()
			},
		},
		{
			name:   "duplicate within marker ttl",
			review: domain.Review{FoodID: "f1", UserID: "u1", Rating: 4, Comment: "Again"},
			setup: func(repo *mocks.ReviewRepository, users *mocks.UserRepository, cache *mocks.ReviewCache, pub *mocks.EventPublisher) {
				users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ada"}, nil).Once()
				cache.On("ReviewMarkerKey", "f1", "u1").Return("review:f1:u1").Once()
				cache.On("Exists", mock.Anything, "review:f1:u1").Return(true, nil).Once()
			},
			wantErr: service.ErrDuplicateReview,
		},
		{
			name:      "rating out of range",
			review:    domain.Review{FoodID: "f1", UserID: "u1", Rating: 6, Comment: "Wow"},
			setup:     func(*mocks.ReviewRepository, *mocks.UserRepository, *mocks.ReviewCache, *mocks.EventPublisher) {},
			wantValid: true,
		},
		{
			name:      "missing comment",
			review:    domain.Review{FoodID: "f1", UserID: "u1", Rating: 3},
			setup:     func(*mocks.ReviewRepository, *mocks.UserRepository, *mocks.ReviewCache, *mocks.EventPublisher) {},
			wantValid: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewReviewRepository(t)
			users := mocks.NewUserRepository(t)
			cache := mocks.NewReviewCache(t)
			pub := mocks.NewEventPublisher(t)
			testCase.setup(repo, users, cache, pub)
			svc := service.NewReviewService(repo, users, cache, pub)

			review := testCase.review
			err := svc.Add(context.Background(), &review)
			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
				repo.AssertNotCalled(t, "InsertReview", mock.Anything, mock.Anything)
			case testCase.wantValid:
				assert.True(t, service.IsValidation(err), "got %v", err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestReviewService_Add_CacheDownStillStores(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	repo := mocks.NewReviewRepository(t)
	users := mocks.NewUserRepository(t)
	cache := mocks.NewReviewCache(t)
	users.On("GetUser", mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Ada"}, nil).Once()
	cache.On("ReviewMarkerKey", "f1", "u1").Return("review:f1:u1").Once()
	cache.On("Exists", mock.Anything, "review:f1:u1").Return(false, errors.New("redis: connection refused")).Once()
	repo.On("InsertReview", mock.Anything, mock.Anything).Return(nil).Once()
	cache.On("SetMarker", mock.Anything, "review:f1:u1").Return(errors.New("redis: connection refused")).Once()

	review := domain.Review{FoodID: "f1", UserID: "u1", Rating: 4, Comment: "Fine"}
	err := service.NewReviewService(repo, users, cache, nil).Add(context.Background(), &review)

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "review marker lookup review:f1:u1")
	assert.Contains(t, logs.String(), "failed to cache review marker review:f1:u1")
}

func TestReviewService_Stats(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		repo := mocks.NewReviewRepository(t)
		cache := mocks.NewReviewCache(t)
		cache.On("FoodStats", mock.Anything, "f1").Return(&domain.FoodStats{FoodID: "f1", AvgRating: 4.5, ReviewCount: 2}, nil).Once()

		stats, err := service.NewReviewService(repo, nil, cache, nil).Stats(context.Background(), "f1")
		require.NoError(t, err)
		assert.Equal(t, 4.5, stats.AvgRating)
	})

	t.Run("falls back to database", func(t *testing.T) {
		repo := mocks.NewReviewRepository(t)
		cache := mocks.NewReviewCache(t)
		cache.On("FoodStats", mock.Anything, "f1").Return(nil, nil).Once()
		repo.On("FoodStats", mock.Anything, "f1").Return(&domain.FoodStats{FoodID: "f1", AvgRating: 3, ReviewCount: 1}, nil).Once()

		stats, err := service.NewReviewService(repo, nil, cache, nil).Stats(context.Background(), "f1")
		require.NoError(t, err)
		assert.Equal(t, 1, stats.ReviewCount)
	})
}

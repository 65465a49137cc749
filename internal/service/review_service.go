package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"foodigo/internal/domain"

	"github.com/google/uuid"
)

type ReviewService struct {
	repository ReviewRepository
	users      UserRepository
	cache      ReviewCache
	publisher  EventPublisher
}

func NewReviewService(repository ReviewRepository, users UserRepository, cache ReviewCache, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		users:      users,
		cache:      cache,
		publisher:  publisher,
	}
}

// Add stores a review by review.UserID. The same user cannot review the same
// food again while the cache marker lives.
func (s *ReviewService) Add(ctx context.Context, review *domain.Review) error {
	if review.FoodID == "" || review.Comment == "" {
		return invalid("Missing required fields or authentication failed.")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return invalid("Rating must be between 1 and 5")
	}

	user, err := loadUser(ctx, s.users, review.UserID)
	if err != nil {
		return err
	}

	cacheKey := s.cache.ReviewMarkerKey(review.FoodID, review.UserID)
	exists, err := s.cache.Exists(ctx, cacheKey)
	if err != nil {
		log.Printf("[store-svc] review marker lookup %s: %v", cacheKey, err)
	}
	if exists {
		return ErrDuplicateReview
	}

	review.ID = uuid.NewString()
	review.UserName = user.Name
	review.CreatedAt = time.Now()
	if err := s.repository.InsertReview(ctx, review); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}

	if err := s.cache.SetMarker(ctx, cacheKey); err != nil {
		log.Printf("[store-svc] failed to cache review marker %s: %v", cacheKey, err)
	}

	if s.publisher != nil {
		err := s.publisher.Publish(ctx, domain.Event{
			Type:      domain.EventNewReview,
			FoodID:    review.FoodID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Timestamp: review.CreatedAt,
		})
		if err != nil {
			log.Printf("[store-svc] failed to publish %s: %v", domain.EventNewReview, err)
		}
	}
	return nil
}

func (s *ReviewService) List(ctx context.Context, foodID string) ([]domain.Review, error) {
	if foodID == "" {
		return nil, invalid("Food ID is required.")
	}
	return s.repository.ListFoodReviews(ctx, foodID)
}

// Stats prefers the aggregate the worker mirrored into the cache.
func (s *ReviewService) Stats(ctx context.Context, foodID string) (*domain.FoodStats, error) {
	if stats, err := s.cache.FoodStats(ctx, foodID); err == nil && stats != nil {
		return stats, nil
	}
	return s.repository.FoodStats(ctx, foodID)
}

var _ ReviewServiceInterface = (*ReviewService)(nil)

package service

import (
	"context"
	"fmt"
	"log"

	"moviereviews/internal/model"
	"moviereviews/internal/queue"
	"moviereviews/internal/repository"
)

// ReviewService handles review reads and authenticated mutation. Creating
// a review runs the referential check against the movie catalog first, and
// on success emits an analytics event to the stream. The event is
// fire-and-forget: once the insert commits the request has succeeded, and
// a publish failure is logged, never surfaced.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  repository.MovieRepository
	publisher  queue.Publisher
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	movieRepo repository.MovieRepository,
	publisher queue.Publisher,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
		publisher:  publisher,
	}
}

// ListAll returns every review.
func (s *ReviewService) ListAll(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.ListAll(ctx)
}

// Create validates the payload, verifies the referenced movie exists and
// persists the review under the authenticated username.
func (s *ReviewService) Create(ctx context.Context, username string, req *model.ReviewRequest) (*model.Review, error) {
	if req.MovieID == nil || req.Review == "" || req.Rating == nil {
		return nil, model.ErrReviewFieldsMissing
	}

	// Referential check: the movie must exist right now. No review row is
	// written when it doesn't.
	movie, err := s.movieRepo.GetByID(ctx, *req.MovieID)
	if err != nil {
		return nil, err
	}

	review := &model.Review{
		MovieID:  movie.ID,
		Username: username,
		Review:   req.Review,
		Rating:   *req.Rating,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	// Persisted: the request is a success from here on. Publish the
	// analytics event and only log when the stream is down.
	event := queue.NewReviewCreatedEvent(movie.ID, movie.Title, movie.Genre, username, review.Rating)
	msgID, err := s.publisher.Publish(ctx, queue.StreamAnalytics, event)
	if err != nil {
		log.Printf("[ReviewService] Failed to publish ReviewCreated event: review=%d err=%v", review.ID, err)
	} else {
		log.Printf("[ReviewService] Published ReviewCreated: review=%d msgID=%s", review.ID, msgID)
	}

	return review, nil
}

// DeleteByID removes a review by identity key.
func (s *ReviewService) DeleteByID(ctx context.Context, id int64) error {
	return s.reviewRepo.DeleteByID(ctx, id)
}

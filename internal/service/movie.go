package service

import (
	"context"
	"fmt"
	"strings"

	"moviereviews/internal/aggregate"
	"moviereviews/internal/model"
	"moviereviews/internal/repository"
)

// MovieService handles catalog reads and writes plus the review-augmented
// views. Validation runs here, before anything touches the repository, so
// an invalid payload never persists a document.
type MovieService struct {
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
}

func NewMovieService(movieRepo repository.MovieRepository, reviewRepo repository.ReviewRepository) *MovieService {
	return &MovieService{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
	}
}

// ValidateMovie checks a create/replace payload against the catalog rules:
// title present, release year within [1900, 2100], genre in the fixed
// list, at least three complete actor entries.
func ValidateMovie(req *model.MovieRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return model.ErrTitleRequired
	}
	if req.ReleaseDate < model.MinReleaseYear || req.ReleaseDate > model.MaxReleaseYear {
		return model.ErrYearOutOfRange
	}
	if !model.ValidGenre(req.Genre) {
		return model.ErrGenreInvalid
	}
	if len(req.Actors) < model.MinActors {
		return model.ErrTooFewActors
	}
	for _, a := range req.Actors {
		if strings.TrimSpace(a.ActorName) == "" || strings.TrimSpace(a.CharacterName) == "" {
			return model.ErrActorIncomplete
		}
	}
	return nil
}

// ListAll returns the plain movie collection in listing order.
func (s *MovieService) ListAll(ctx context.Context) ([]model.Movie, error) {
	return s.movieRepo.ListAll(ctx)
}

// ListAllWithReviews returns every movie joined with its reviews, ordered
// by average rating descending. Both collections are read in full and the
// join happens in memory, so the ordering rules are the aggregate
// package's and not a storage dialect's.
func (s *MovieService) ListAllWithReviews(ctx context.Context) ([]model.MovieWithReviews, error) {
	movies, err := s.movieRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	reviews, err := s.reviewRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return aggregate.List(movies, reviews), nil
}

// GetByTitle returns a single movie looked up by exact title.
func (s *MovieService) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	return s.movieRepo.GetByTitle(ctx, title)
}

// GetByID returns a single movie looked up by identity key.
func (s *MovieService) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}

// GetWithReviews augments a single movie with its reviews and average
// rating, under the same rules the collection view uses.
func (s *MovieService) GetWithReviews(ctx context.Context, movie *model.Movie) (*model.MovieWithReviews, error) {
	reviews, err := s.reviewRepo.ListByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for movie: %w", err)
	}

	augmented := aggregate.One(*movie, reviews)
	return &augmented, nil
}

// Create validates and persists a new movie.
func (s *MovieService) Create(ctx context.Context, req *model.MovieRequest) (*model.Movie, error) {
	if err := ValidateMovie(req); err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		ImageURL:    req.ImageURL,
		Genre:       req.Genre,
		Actors:      req.Actors,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	return movie, nil
}

// Replace validates the payload and swaps every stored field of the movie
// identified by title, cast list included.
func (s *MovieService) Replace(ctx context.Context, title string, req *model.MovieRequest) (*model.Movie, error) {
	if err := ValidateMovie(req); err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		ImageURL:    req.ImageURL,
		Genre:       req.Genre,
		Actors:      req.Actors,
	}

	if err := s.movieRepo.Replace(ctx, title, movie); err != nil {
		return nil, err
	}

	return movie, nil
}

// Delete removes a movie by title.
func (s *MovieService) Delete(ctx context.Context, title string) error {
	return s.movieRepo.Delete(ctx, title)
}

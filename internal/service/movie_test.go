package service

import (
	"context"
	"errors"
	"testing"

	"moviereviews/internal/model"
)

type mockMovieRepository struct {
	listAllFn    func(ctx context.Context) ([]model.Movie, error)
	getByTitleFn func(ctx context.Context, title string) (*model.Movie, error)
	getByIDFn    func(ctx context.Context, id int64) (*model.Movie, error)
	createFn     func(ctx context.Context, movie *model.Movie) error
	replaceFn    func(ctx context.Context, title string, movie *model.Movie) error
	deleteFn     func(ctx context.Context, title string) error

	createCalls  int
	replaceCalls int
}

func (m *mockMovieRepository) ListAll(ctx context.Context) ([]model.Movie, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockMovieRepository) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	if m.getByTitleFn != nil {
		return m.getByTitleFn(ctx, title)
	}
	return nil, model.ErrMovieNotFound
}

func (m *mockMovieRepository) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrMovieNotFound
}

func (m *mockMovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, movie)
	}
	return nil
}

func (m *mockMovieRepository) Replace(ctx context.Context, title string, movie *model.Movie) error {
	m.replaceCalls++
	if m.replaceFn != nil {
		return m.replaceFn(ctx, title, movie)
	}
	return nil
}

func (m *mockMovieRepository) Delete(ctx context.Context, title string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, title)
	}
	return nil
}

type mockReviewRepository struct {
	listAllFn       func(ctx context.Context) ([]model.Review, error)
	listByMovieIDFn func(ctx context.Context, movieID int64) ([]model.Review, error)
	createFn        func(ctx context.Context, review *model.Review) error
	deleteByIDFn    func(ctx context.Context, id int64) error

	createCalls int
}

func (m *mockReviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}

func (m *mockReviewRepository) ListByMovieID(ctx context.Context, movieID int64) ([]model.Review, error) {
	if m.listByMovieIDFn != nil {
		return m.listByMovieIDFn(ctx, movieID)
	}
	return nil, nil
}

func (m *mockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) DeleteByID(ctx context.Context, id int64) error {
	if m.deleteByIDFn != nil {
		return m.deleteByIDFn(ctx, id)
	}
	return nil
}

func validMovieRequest() *model.MovieRequest {
	return &model.MovieRequest{
		Title:       "Heat",
		ReleaseDate: 1995,
		Genre:       "Action",
		Actors: []model.Actor{
			{ActorName: "Al Pacino", CharacterName: "Vincent Hanna"},
			{ActorName: "Robert De Niro", CharacterName: "Neil McCauley"},
			{ActorName: "Val Kilmer", CharacterName: "Chris Shiherlis"},
		},
	}
}

func TestMovieService_Create_Success(t *testing.T) {
	movieRepo := &mockMovieRepository{
		createFn: func(ctx context.Context, movie *model.Movie) error {
			movie.ID = 1
			return nil
		},
	}
	svc := NewMovieService(movieRepo, &mockReviewRepository{})

	req := validMovieRequest()
	movie, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if movie.Title != req.Title || movie.Genre != req.Genre || movie.ReleaseDate != req.ReleaseDate {
		t.Errorf("created movie fields do not match input: %+v", movie)
	}
	if len(movie.Actors) != 3 {
		t.Errorf("actors = %d, want 3", len(movie.Actors))
	}
}

func TestMovieService_Create_ValidationRejectsWithoutPersisting(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.MovieRequest)
		wantErr error
	}{
		{
			name:    "missing title",
			mutate:  func(r *model.MovieRequest) { r.Title = "" },
			wantErr: model.ErrTitleRequired,
		},
		{
			name:    "blank title",
			mutate:  func(r *model.MovieRequest) { r.Title = "   " },
			wantErr: model.ErrTitleRequired,
		},
		{
			name:    "year too early",
			mutate:  func(r *model.MovieRequest) { r.ReleaseDate = 1899 },
			wantErr: model.ErrYearOutOfRange,
		},
		{
			name:    "year too late",
			mutate:  func(r *model.MovieRequest) { r.ReleaseDate = 2101 },
			wantErr: model.ErrYearOutOfRange,
		},
		{
			name:    "genre outside the list",
			mutate:  func(r *model.MovieRequest) { r.Genre = "Romance" },
			wantErr: model.ErrGenreInvalid,
		},
		{
			name:    "genre wrong case",
			mutate:  func(r *model.MovieRequest) { r.Genre = "action" },
			wantErr: model.ErrGenreInvalid,
		},
		{
			name:    "two actors",
			mutate:  func(r *model.MovieRequest) { r.Actors = r.Actors[:2] },
			wantErr: model.ErrTooFewActors,
		},
		{
			name: "actor missing character name",
			mutate: func(r *model.MovieRequest) {
				r.Actors[1].CharacterName = ""
			},
			wantErr: model.ErrActorIncomplete,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			movieRepo := &mockMovieRepository{}
			svc := NewMovieService(movieRepo, &mockReviewRepository{})

			req := validMovieRequest()
			tc.mutate(req)

			_, err := svc.Create(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if movieRepo.createCalls != 0 {
				t.Errorf("no document may be persisted on validation failure, got %d create calls", movieRepo.createCalls)
			}
		})
	}
}

func TestMovieService_Create_BoundaryYearsAccepted(t *testing.T) {
	for _, year := range []int{1900, 2100} {
		movieRepo := &mockMovieRepository{}
		svc := NewMovieService(movieRepo, &mockReviewRepository{})

		req := validMovieRequest()
		req.ReleaseDate = year

		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Errorf("year %d should be accepted, got %v", year, err)
		}
	}
}

func TestMovieService_Replace_ValidatesBeforeLookup(t *testing.T) {
	movieRepo := &mockMovieRepository{}
	svc := NewMovieService(movieRepo, &mockReviewRepository{})

	req := validMovieRequest()
	req.Actors = req.Actors[:1]

	_, err := svc.Replace(context.Background(), "Heat", req)
	if !errors.Is(err, model.ErrTooFewActors) {
		t.Fatalf("expected ErrTooFewActors, got %v", err)
	}
	if movieRepo.replaceCalls != 0 {
		t.Error("invalid payload must not reach the repository")
	}
}

func TestMovieService_Replace_UnknownMovie(t *testing.T) {
	movieRepo := &mockMovieRepository{
		replaceFn: func(ctx context.Context, title string, movie *model.Movie) error {
			return model.ErrMovieNotFound
		},
	}
	svc := NewMovieService(movieRepo, &mockReviewRepository{})

	_, err := svc.Replace(context.Background(), "Nope", validMovieRequest())
	if !errors.Is(err, model.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieService_ListAllWithReviews_SortedAndAugmented(t *testing.T) {
	movieRepo := &mockMovieRepository{
		listAllFn: func(ctx context.Context) ([]model.Movie, error) {
			return []model.Movie{
				{ID: 1, Title: "Quiet"},
				{ID: 2, Title: "Loved"},
			}, nil
		},
	}
	reviewRepo := &mockReviewRepository{
		listAllFn: func(ctx context.Context) ([]model.Review, error) {
			return []model.Review{
				{ID: 1, MovieID: 2, Rating: 5},
				{ID: 2, MovieID: 2, Rating: 4},
			}, nil
		},
	}
	svc := NewMovieService(movieRepo, reviewRepo)

	got, err := svc.ListAllWithReviews(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(got))
	}
	if got[0].Title != "Loved" {
		t.Errorf("rated movie should sort first, got %q", got[0].Title)
	}
	if got[0].AvgRating == nil || *got[0].AvgRating != 4.5 {
		t.Errorf("avgRating = %v, want 4.5", got[0].AvgRating)
	}
	if got[1].AvgRating != nil {
		t.Errorf("movie without reviews must have nil avgRating, got %v", *got[1].AvgRating)
	}
}

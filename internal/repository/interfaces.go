package repository

import (
	"context"

	"moviereviews/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type MovieRepository interface {
	ListAll(ctx context.Context) ([]model.Movie, error)
	GetByTitle(ctx context.Context, title string) (*model.Movie, error)
	GetByID(ctx context.Context, id int64) (*model.Movie, error)
	Create(ctx context.Context, movie *model.Movie) error
	// Replace swaps out every stored field of the movie identified by
	// title, cast list included. Returns model.ErrMovieNotFound when no
	// such movie exists.
	Replace(ctx context.Context, title string, movie *model.Movie) error
	Delete(ctx context.Context, title string) error
}

type ReviewRepository interface {
	ListAll(ctx context.Context) ([]model.Review, error)
	ListByMovieID(ctx context.Context, movieID int64) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	DeleteByID(ctx context.Context, id int64) error
}

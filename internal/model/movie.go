package model

import (
	"errors"
	"time"
)

// Movie represents a catalog entry with its ordered cast list.
type Movie struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	ReleaseDate int       `db:"release_date" json:"releaseDate"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	Genre       string    `db:"genre" json:"genre"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	// Joined field (movie_actors table), ordered by position.
	Actors []Actor `json:"actors"`
}

// Actor is a single cast entry: who played whom.
type Actor struct {
	ID            int64  `db:"id" json:"-"`
	MovieID       int64  `db:"movie_id" json:"-"`
	ActorName     string `db:"actor_name" json:"actorName"`
	CharacterName string `db:"character_name" json:"characterName"`
	Position      int    `db:"position" json:"-"`
}

// MovieRequest is the request body for creating or replacing a movie.
type MovieRequest struct {
	Title       string  `json:"title"`
	ReleaseDate int     `json:"releaseDate"`
	ImageURL    *string `json:"imageUrl"`
	Genre       string  `json:"genre"`
	Actors      []Actor `json:"actors"`
}

// MovieWithReviews is a movie augmented with its reviews and their mean
// rating. It is computed on read and never persisted. AvgRating is nil
// when the movie has no reviews; it is never reported as zero.
type MovieWithReviews struct {
	Movie
	MovieReviews []Review `json:"movieReviews"`
	AvgRating    *float64 `json:"avgRating"`
}

// Genres is the fixed set of accepted movie genres.
var Genres = []string{
	"Action", "Adventure", "Comedy", "Drama", "Fantasy",
	"Horror", "Mystery", "Thriller", "Western", "Science Fiction",
}

// ValidGenre reports whether g is one of the accepted genres (exact match).
func ValidGenre(g string) bool {
	for _, genre := range Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Movie constraints
const (
	MinActors      = 3
	MinReleaseYear = 1900
	MaxReleaseYear = 2100
)

// Movie errors
var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrTitleRequired   = errors.New("movie title is required")
	ErrGenreInvalid    = errors.New("genre is not in the accepted list")
	ErrYearOutOfRange  = errors.New("release date out of range")
	ErrTooFewActors    = errors.New("at least three actors are required")
	ErrActorIncomplete = errors.New("actor entries need both actorName and characterName")
)

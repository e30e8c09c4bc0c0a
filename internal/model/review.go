package model

import (
	"errors"
	"time"
)

// Review is a user-submitted rating for a movie. MovieID must reference an
// existing movie when the review is created; the check happens in the
// service layer, not the database, so reviews of a later-deleted movie may
// remain (matching the document-store behavior this API started from).
type Review struct {
	ID        int64     `db:"id" json:"id"`
	MovieID   int64     `db:"movie_id" json:"movieId"`
	Username  string    `db:"username" json:"username"`
	Review    string    `db:"review" json:"review"`
	Rating    float64   `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReviewRequest is the request body for creating a review. MovieID and
// Rating are pointers so that "field absent" can be told apart from the
// zero value; a rating of 0 is a legal rating.
type ReviewRequest struct {
	MovieID *int64   `json:"movieId"`
	Review  string   `json:"review"`
	Rating  *float64 `json:"rating"`
}

// Review errors
var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewFieldsMissing = errors.New("movieId, review and rating are required")
)

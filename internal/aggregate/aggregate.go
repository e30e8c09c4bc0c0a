// Package aggregate joins reviews onto movies and computes per-movie mean
// ratings. It works on plain slices so the same rules apply whether the
// caller aggregates one movie or the whole catalog, and nothing here knows
// about the storage layer.
package aggregate

import (
	"sort"

	"moviereviews/internal/model"
)

// One augments a single movie with the reviews that reference it and their
// mean rating. Reviews pointing at other movies are ignored. A movie with
// no reviews gets an empty (non-nil) review list and a nil AvgRating;
// the mean of an empty set is not zero.
func One(movie model.Movie, reviews []model.Review) model.MovieWithReviews {
	matched := make([]model.Review, 0)
	for _, rv := range reviews {
		if rv.MovieID == movie.ID {
			matched = append(matched, rv)
		}
	}

	return model.MovieWithReviews{
		Movie:        movie,
		MovieReviews: matched,
		AvgRating:    mean(matched),
	}
}

// List augments every movie the same way One does and orders the result by
// AvgRating descending. Movies without reviews rank below every rated
// movie. The sort is stable: equal averages, including the all-unrated
// case, keep the incoming listing order.
func List(movies []model.Movie, reviews []model.Review) []model.MovieWithReviews {
	byMovie := make(map[int64][]model.Review, len(movies))
	for _, rv := range reviews {
		byMovie[rv.MovieID] = append(byMovie[rv.MovieID], rv)
	}

	out := make([]model.MovieWithReviews, len(movies))
	for i, m := range movies {
		matched := byMovie[m.ID]
		if matched == nil {
			matched = make([]model.Review, 0)
		}
		out[i] = model.MovieWithReviews{
			Movie:        m,
			MovieReviews: matched,
			AvgRating:    mean(matched),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return ratingLess(out[j].AvgRating, out[i].AvgRating)
	})

	return out
}

// ratingLess orders nil (unrated) below any real average.
func ratingLess(a, b *float64) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	default:
		return *a < *b
	}
}

func mean(reviews []model.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum float64
	for _, rv := range reviews {
		sum += rv.Rating
	}
	avg := sum / float64(len(reviews))
	return &avg
}

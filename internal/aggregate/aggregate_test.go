package aggregate

import (
	"reflect"
	"testing"

	"moviereviews/internal/model"
)

func movie(id int64, title string) model.Movie {
	return model.Movie{ID: id, Title: title, Genre: "Action"}
}

func review(id, movieID int64, rating float64) model.Review {
	return model.Review{ID: id, MovieID: movieID, Username: "alice", Review: "ok", Rating: rating}
}

func titles(list []model.MovieWithReviews) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.Title
	}
	return out
}

func TestOne_MeanIsExact(t *testing.T) {
	m := movie(1, "Heat")
	reviews := []model.Review{
		review(1, 1, 3),
		review(2, 1, 4),
		review(3, 2, 0), // different movie, must be ignored
	}

	got := One(m, reviews)

	if len(got.MovieReviews) != 2 {
		t.Fatalf("expected 2 matched reviews, got %d", len(got.MovieReviews))
	}
	if got.AvgRating == nil {
		t.Fatal("expected avgRating, got nil")
	}
	if *got.AvgRating != 3.5 {
		t.Errorf("avgRating = %v, want 3.5", *got.AvgRating)
	}
}

func TestOne_NoReviewsYieldsNilNotZero(t *testing.T) {
	got := One(movie(1, "Heat"), nil)

	if got.AvgRating != nil {
		t.Errorf("avgRating = %v, want nil for a movie with no reviews", *got.AvgRating)
	}
	if got.MovieReviews == nil {
		t.Error("expected empty review list, got nil (would serialize as null)")
	}
	if len(got.MovieReviews) != 0 {
		t.Errorf("expected no reviews, got %d", len(got.MovieReviews))
	}
}

func TestOne_RoundTripPreservesReviewFields(t *testing.T) {
	rv := model.Review{ID: 7, MovieID: 1, Username: "bob", Review: "a classic", Rating: 5}

	got := One(movie(1, "Heat"), []model.Review{rv})

	if len(got.MovieReviews) != 1 {
		t.Fatalf("expected the review exactly once, got %d entries", len(got.MovieReviews))
	}
	if !reflect.DeepEqual(got.MovieReviews[0], rv) {
		t.Errorf("review fields changed: got %+v, want %+v", got.MovieReviews[0], rv)
	}
}

func TestList_SortsByAvgRatingDescending(t *testing.T) {
	movies := []model.Movie{movie(1, "Low"), movie(2, "High"), movie(3, "Mid")}
	reviews := []model.Review{
		review(1, 1, 1),
		review(2, 2, 5),
		review(3, 3, 3),
	}

	got := List(movies, reviews)

	want := []string{"High", "Mid", "Low"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("order = %v, want %v", titles(got), want)
	}
}

func TestList_UnratedMoviesSortLast(t *testing.T) {
	movies := []model.Movie{movie(1, "Unrated"), movie(2, "Rated")}
	reviews := []model.Review{review(1, 2, 2)}

	got := List(movies, reviews)

	if got[0].Title != "Rated" {
		t.Errorf("rated movie should outrank an unrated one, got order %v", titles(got))
	}
	if got[1].AvgRating != nil {
		t.Errorf("unrated movie avgRating = %v, want nil", *got[1].AvgRating)
	}
}

func TestList_TiesKeepListingOrder(t *testing.T) {
	movies := []model.Movie{movie(1, "A"), movie(2, "B"), movie(3, "C")}
	reviews := []model.Review{
		review(1, 1, 4),
		review(2, 2, 4),
		review(3, 3, 4),
	}

	got := List(movies, reviews)

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("tied averages should keep listing order, got %v", titles(got))
	}
}

func TestList_AllUnratedKeepsListingOrder(t *testing.T) {
	movies := []model.Movie{movie(1, "A"), movie(2, "B"), movie(3, "C")}

	got := List(movies, nil)

	want := []string{"A", "B", "C"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("all-unrated collection should keep listing order, got %v", titles(got))
	}
}

func TestList_Idempotent(t *testing.T) {
	movies := []model.Movie{movie(1, "A"), movie(2, "B"), movie(3, "C"), movie(4, "D")}
	reviews := []model.Review{
		review(1, 2, 5),
		review(2, 3, 5),
		review(3, 1, 2),
	}

	first := List(movies, reviews)
	second := List(movies, reviews)

	if !reflect.DeepEqual(titles(first), titles(second)) {
		t.Errorf("same input produced different orders: %v vs %v", titles(first), titles(second))
	}
}

func TestList_SingleAndCollectionAgree(t *testing.T) {
	movies := []model.Movie{movie(1, "A"), movie(2, "B")}
	reviews := []model.Review{
		review(1, 1, 2),
		review(2, 1, 4),
		review(3, 2, 5),
	}

	list := List(movies, reviews)
	for _, item := range list {
		single := One(item.Movie, reviews)
		if !reflect.DeepEqual(single.MovieReviews, item.MovieReviews) {
			t.Errorf("movie %q: review sets differ between One and List", item.Title)
		}
		if (single.AvgRating == nil) != (item.AvgRating == nil) {
			t.Fatalf("movie %q: avgRating presence differs", item.Title)
		}
		if single.AvgRating != nil && *single.AvgRating != *item.AvgRating {
			t.Errorf("movie %q: avgRating %v vs %v", item.Title, *single.AvgRating, *item.AvgRating)
		}
	}
}

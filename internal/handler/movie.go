package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"moviereviews/internal/httputil"
	"moviereviews/internal/model"
	"moviereviews/internal/service"
)

// MovieHandler groups the movie catalog endpoints. All of them sit behind
// the auth middleware, so by the time a handler runs the caller is known.
type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{movieService: movieService}
}

// wantsReviews reports whether the request asked for the review-augmented
// view via ?reviews=true.
func wantsReviews(r *http.Request) bool {
	return r.URL.Query().Get("reviews") == "true"
}

// List handles GET /movies
// Returns the plain collection, or the aggregate view sorted by average
// rating descending when ?reviews=true.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	if wantsReviews(r) {
		movies, err := h.movieService.ListAllWithReviews(r.Context())
		if err != nil {
			log.Printf("[ERROR] List movies with reviews: %v", err)
			httputil.WriteInternalError(w, "Error fetching movies.")
			return
		}
		httputil.WriteJSON(w, http.StatusOK, movies)
		return
	}

	movies, err := h.movieService.ListAll(r.Context())
	if err != nil {
		log.Printf("[ERROR] List movies: %v", err)
		httputil.WriteInternalError(w, "Error fetching movies.")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, movies)
}

// Create handles POST /movies
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body.")
		return
	}

	movie, err := h.movieService.Create(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			httputil.WriteBadRequest(w, "Missing required movie fields or less than 3 actors.")
			return
		}
		log.Printf("[ERROR] Create movie: %v", err)
		httputil.WriteInternalError(w, "Error saving movie.")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Movie added successfully.",
		"movie":   movie,
	})
}

// GetByTitle handles GET /movies/{title}
func (h *MovieHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	movie, err := h.movieService.GetByTitle(r.Context(), title)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	h.respondMovie(w, r, movie)
}

// GetByID handles GET /movie/{id}
// A syntactically invalid id is a 400, an unknown one a 404.
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteBadRequest(w, "Invalid movie ID.")
		return
	}

	movie, err := h.movieService.GetByID(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	h.respondMovie(w, r, movie)
}

// Update handles PUT /movies/{title}
// Full-field replace: the stored movie ends up with exactly the payload's
// fields, validated the same way as creation.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	var req model.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body.")
		return
	}

	movie, err := h.movieService.Replace(r.Context(), title, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMovieNotFound):
			httputil.WriteNotFoundMsg(w, "Movie not found.")
		case isValidationError(err):
			httputil.WriteBadRequest(w, "Missing required movie fields or less than 3 actors.")
		default:
			log.Printf("[ERROR] Update movie %q: %v", title, err)
			httputil.WriteInternalError(w, "Error updating movie.")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Movie updated successfully.",
		"movie":   movie,
	})
}

// Delete handles DELETE /movies/{title}
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	if err := h.movieService.Delete(r.Context(), title); err != nil {
		if errors.Is(err, model.ErrMovieNotFound) {
			httputil.WriteNotFoundMsg(w, "Movie not found.")
			return
		}
		log.Printf("[ERROR] Delete movie %q: %v", title, err)
		httputil.WriteInternalError(w, "Error deleting movie.")
		return
	}

	httputil.WriteMessage(w, http.StatusOK, true, "Movie deleted successfully.")
}

// respondMovie writes the single-movie response, with the aggregate view
// when ?reviews=true.
func (h *MovieHandler) respondMovie(w http.ResponseWriter, r *http.Request, movie *model.Movie) {
	if wantsReviews(r) {
		augmented, err := h.movieService.GetWithReviews(r.Context(), movie)
		if err != nil {
			log.Printf("[ERROR] Aggregate movie %q: %v", movie.Title, err)
			httputil.WriteInternalError(w, "Error retrieving movie.")
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"movie":   augmented,
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"movie":   movie,
	})
}

func (h *MovieHandler) respondLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrMovieNotFound) {
		httputil.WriteNotFoundMsg(w, "Movie not found.")
		return
	}
	log.Printf("[ERROR] Get movie: %v", err)
	httputil.WriteInternalError(w, "Error retrieving movie.")
}

func isValidationError(err error) bool {
	return errors.Is(err, model.ErrTitleRequired) ||
		errors.Is(err, model.ErrYearOutOfRange) ||
		errors.Is(err, model.ErrGenreInvalid) ||
		errors.Is(err, model.ErrTooFewActors) ||
		errors.Is(err, model.ErrActorIncomplete)
}

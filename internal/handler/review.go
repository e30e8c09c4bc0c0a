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
	"moviereviews/internal/transport/http/middleware"
)

// ReviewHandler groups the review endpoints. List is deliberately open;
// the create and delete routes sit behind the auth middleware.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List handles GET /reviews
// No authentication required.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListAll(r.Context())
	if err != nil {
		log.Printf("[ERROR] List reviews: %v", err)
		httputil.WriteInternalError(w, "Error fetching reviews.")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, reviews)
}

// Create handles POST /reviews
// The review is recorded under the authenticated user's username; the
// movieId must reference an existing movie.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Authentication required.")
		return
	}

	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, false, "Invalid request body.")
		return
	}

	_, err := h.reviewService.Create(r.Context(), user.Username, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrReviewFieldsMissing):
			httputil.WriteMessage(w, http.StatusBadRequest, false, "Missing required fields.")
		case errors.Is(err, model.ErrMovieNotFound):
			httputil.WriteNotFoundMessage(w, "Movie not found.")
		default:
			log.Printf("[ERROR] Create review: user=%s err=%v", user.Username, err)
			httputil.WriteInternalError(w, "Error saving review.")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "Review created!",
	})
}

// Delete handles DELETE /reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteMessage(w, http.StatusBadRequest, false, "Invalid review ID.")
		return
	}

	if err := h.reviewService.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			httputil.WriteJSON(w, http.StatusNotFound, map[string]string{
				"message": "Review not found.",
			})
			return
		}
		log.Printf("[ERROR] Delete review %d: %v", id, err)
		httputil.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error deleting review.",
		})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Review deleted.",
	})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"moviereviews/internal/httputil"
	"moviereviews/internal/model"
	"moviereviews/internal/service"
)

// AuthHandler groups the signup and signin endpoints.
type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

// Signup handles account creation
// POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body.")
		return
	}

	if req.Username == "" || req.Password == "" {
		httputil.WriteBadRequest(w, "Please include both username and password to signup.")
		return
	}

	_, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			httputil.WriteConflict(w, "A user with that username already exists.")
			return
		}
		httputil.WriteInternalError(w, "Error creating user.")
		return
	}

	httputil.WriteMsg(w, http.StatusOK, true, "Successfully created new user.")
}

// Signin handles authentication and token issuance
// POST /signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req model.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body.")
		return
	}

	user, err := h.userService.Signin(r.Context(), &req)
	if err != nil {
		// Unknown user and wrong password answer identically.
		if errors.Is(err, model.ErrInvalidCredentials) {
			httputil.WriteUnauthorized(w, "Authentication failed.")
			return
		}
		httputil.WriteInternalError(w, "Error signing in.")
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		httputil.WriteInternalError(w, "Error signing in.")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   service.TokenScheme + " " + token,
	})
}

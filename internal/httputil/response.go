package httputil

import (
	"encoding/json"
	"net/http"
)

// StatusResponse is the envelope most endpoints answer with. The reference
// API used "msg" on some routes and "message" on others; both fields are
// kept so clients written against it keep working. Exactly one is set per
// response.
type StatusResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already sent; nothing more we can do here.
			return
		}
	}
}

// WriteMsg writes {"success": ..., "msg": ...} with the given status.
func WriteMsg(w http.ResponseWriter, status int, success bool, msg string) {
	WriteJSON(w, status, StatusResponse{Success: success, Msg: msg})
}

// WriteMessage writes {"success": ..., "message": ...} with the given status.
func WriteMessage(w http.ResponseWriter, status int, success bool, message string) {
	WriteJSON(w, status, StatusResponse{Success: success, Message: message})
}

// WriteBadRequest writes a 400 with a msg field.
func WriteBadRequest(w http.ResponseWriter, msg string) {
	WriteMsg(w, http.StatusBadRequest, false, msg)
}

// WriteUnauthorized writes a 401 with a msg field.
func WriteUnauthorized(w http.ResponseWriter, msg string) {
	WriteMsg(w, http.StatusUnauthorized, false, msg)
}

// WriteNotFoundMsg writes a 404 with a msg field.
func WriteNotFoundMsg(w http.ResponseWriter, msg string) {
	WriteMsg(w, http.StatusNotFound, false, msg)
}

// WriteNotFoundMessage writes a 404 with a message field.
func WriteNotFoundMessage(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusNotFound, false, message)
}

// WriteConflict writes a 409 with a message field.
func WriteConflict(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusConflict, false, message)
}

// WriteInternalError writes a 500 with a generic message, never the
// underlying storage error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteMessage(w, http.StatusInternalServerError, false, message)
}

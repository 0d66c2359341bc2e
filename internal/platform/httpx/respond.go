// Package httpx provides JSON request/response utilities.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Message is the plain {"message": ...} envelope used by the API.
type Message struct {
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Msg sends a {"message": ...} response with the given status code.
func Msg(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Message{Message: message})
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}

package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the standard JSON response structure for every API endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes the envelope with the given status code.
func JSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// OK writes a successful response with optional data.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, Envelope{Success: true, Data: data})
}

// OKWithToken writes a successful response carrying data and a session token.
func OKWithToken(w http.ResponseWriter, status int, data any, token string) {
	JSON(w, status, Envelope{Success: true, Data: data, Token: token})
}

// Message writes a successful response carrying only a message.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: true, Message: message})
}

// Fail writes a failed response with a stable client-facing message.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

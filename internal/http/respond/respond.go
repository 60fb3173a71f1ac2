package respond

import (
	"encoding/json"
	"net/http"
)

// JSON writes payload with the given status. Encoding failures are ignored
// here; the header has already been written and there is nothing useful left
// to tell the client.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes the flat {"error": message} body used across the API.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fittrack/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse serializes an error as {"error": {"message", "cause"}}
// with the given status and logs it. An empty cause is reported as
// "No cause provided", matching the historical contract.
func WriteErrorResponse(w http.ResponseWriter, status int, message, cause string) {
	if cause == "" {
		cause = "No cause provided"
	}

	slog.Error("request failed",
		"status", status,
		"message", message,
		"cause", cause)

	WriteJSONResponse(w, status, dto.ErrorResponse{
		Error: dto.ErrorDetail{Message: message, Cause: cause},
	})
}

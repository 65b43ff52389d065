package response

import (
	"encoding/json"
	"net/http"
)

// Error categories carried by every error body.
const (
	CategoryValidation   = "validation_error"
	CategoryConflict     = "conflict"
	CategoryNotFound     = "not_found"
	CategoryUnauthorized = "unauthorized"
	CategoryForbidden    = "forbidden"
	CategoryStore        = "store_error"
	CategoryInternal     = "internal_error"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Field   string            `json:"field,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func Error(w http.ResponseWriter, statusCode int, category, message string) {
	JSON(w, statusCode, ErrorResponse{
		Error:   category,
		Message: message,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, CategoryValidation, message)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   CategoryValidation,
		Message: "Validation failed",
		Details: details,
	})
}

// Conflict reports a uniqueness violation on field.
func Conflict(w http.ResponseWriter, field, message string) {
	JSON(w, http.StatusConflict, ErrorResponse{
		Error:   CategoryConflict,
		Message: message,
		Field:   field,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, CategoryUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, CategoryNotFound, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, CategoryForbidden, message)
}

// StoreError hides the underlying persistence failure behind a generic message.
func StoreError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, CategoryStore, "Database error")
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, CategoryInternal, message)
}

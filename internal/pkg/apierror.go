package pkg

import "net/http"

// APIError carries a stable error code alongside the HTTP status it maps to.
// Services return these directly for expected failures; anything else
// collapses to ErrInternal at the handler boundary.
type APIError struct {
	Code    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

// Is matches by code so errors.Is works against the sentinel values below
// regardless of the attached message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of the error with a more specific message.
func (e *APIError) WithMessage(msg string) *APIError {
	return &APIError{Code: e.Code, Status: e.Status, Message: msg}
}

var (
	ErrValidation         = &APIError{Code: "VALIDATION", Status: http.StatusBadRequest, Message: "invalid request"}
	ErrNotFound           = &APIError{Code: "NOT_FOUND", Status: http.StatusNotFound, Message: "resource not found"}
	ErrNotAllowedAccess   = &APIError{Code: "NOT_ALLOWED_ACCESS", Status: http.StatusForbidden, Message: "not allowed to perform this action"}
	ErrInvalidRole        = &APIError{Code: "INVALID_ROLE", Status: http.StatusBadRequest, Message: "role not found"}
	ErrInvalidCredentials = &APIError{Code: "INVALID_CREDENTIALS", Status: http.StatusUnauthorized, Message: "invalid credentials"}
	ErrUnauthenticated    = &APIError{Code: "UNAUTHENTICATED", Status: http.StatusUnauthorized, Message: "missing or invalid token"}
	ErrResourceExists     = &APIError{Code: "RESOURCE_EXISTS", Status: http.StatusBadRequest, Message: "resource already exists"}
	ErrInternal           = &APIError{Code: "INTERNAL", Status: http.StatusInternalServerError, Message: "internal error"}
)

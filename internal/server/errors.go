package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrEmailDelivery indicates the transactional email provider rejected or
// failed the send
type ErrEmailDelivery struct {
	Cause error
}

func (e *ErrEmailDelivery) Error() string {
	return fmt.Sprintf("email delivery failed: %v", e.Cause)
}

func (e *ErrEmailDelivery) Unwrap() error {
	return e.Cause
}

// ErrEmailUnavailable indicates email sending is not configured
type ErrEmailUnavailable struct{}

func (e *ErrEmailUnavailable) Error() string {
	return "email service not configured"
}

// ErrLeadStorage indicates the lead could not be persisted
type ErrLeadStorage struct {
	Cause error
}

func (e *ErrLeadStorage) Error() string {
	return fmt.Sprintf("lead storage failed: %v", e.Cause)
}

func (e *ErrLeadStorage) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrEmailDelivery:
		return http.StatusBadGateway
	case *ErrEmailUnavailable:
		return http.StatusServiceUnavailable
	case *ErrLeadStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

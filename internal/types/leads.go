// Package types provides the request payloads and validation for the
// lead-capture API.
package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports failing fields by their json tag name, so 400 details
// carry the wire keys the caller actually sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SelectedProcess is the catalog summary a visitor attaches to a contact
// request. Only display fields travel over the wire; the server re-resolves
// anything it needs from the catalog by id.
type SelectedProcess struct {
	ID              string `json:"id" validate:"required"`
	Codigo          string `json:"codigo" validate:"required"`
	Nombre          string `json:"nombre" validate:"required"`
	CategoriaNombre string `json:"categoriaNombre"`
	Tagline         string `json:"tagline"`
}

// ContactRequest is the payload of POST /send-contact-email.
type ContactRequest struct {
	Nombre            string            `json:"nombre" validate:"required,min=2,max=100"`
	Email             string            `json:"email" validate:"required,email"`
	Empresa           string            `json:"empresa" validate:"required,min=2,max=200"`
	Comentario        string            `json:"comentario" validate:"max=2000"`
	SelectedProcesses []SelectedProcess `json:"selectedProcesses" validate:"required,min=1,max=50,dive"`
}

// LeadRequest is the payload of POST /submit-onboarding-lead. Answers is kept
// schemaless on purpose: the questionnaire grows ad hoc keys (free-text
// "other" fields, platform selections) and the endpoint must accept them all.
type LeadRequest struct {
	Nombre   string         `json:"nombre" validate:"required,min=2,max=100"`
	Email    string         `json:"email" validate:"required,email"`
	Telefono string         `json:"telefono,omitempty" validate:"omitempty,max=50"`
	Answers  map[string]any `json:"answers" validate:"required"`
}

// FieldError is one entry of the "details" array in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate validates the ContactRequest using the validator.
func (r *ContactRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the LeadRequest using the validator.
func (r *LeadRequest) Validate() error {
	return validate.Struct(r)
}

// FieldErrors converts validator errors into field-keyed messages suitable
// for a 400 response body. Non-validator errors produce a single generic
// entry.
func FieldErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(validationErrors))
	for _, ve := range validationErrors {
		out = append(out, FieldError{
			Field:   ve.Field(),
			Message: fmt.Sprintf("failed on %s", ve.Tag()),
		})
	}
	return out
}

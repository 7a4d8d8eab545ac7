package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/immoralia/process-catalog/internal/db"
	"github.com/immoralia/process-catalog/internal/mailer"
	"github.com/immoralia/process-catalog/internal/taskboard"
	"github.com/immoralia/process-catalog/internal/types"
)

// handleSubmitOnboardingLead receives a completed questionnaire. The
// database insert is the one step that must succeed; the notification email
// and the board card are best-effort and never fail the request.
func (s *Server) handleSubmitOnboardingLead(w http.ResponseWriter, r *http.Request) {
	var req types.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{
			"error":   "validation_error",
			"details": types.FieldErrors(err),
		})
		return
	}

	id, err := s.store.SaveOnboardingLead(r.Context(), &db.OnboardingLeadInput{
		Nombre:    req.Nombre,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Answers:   req.Answers,
		IPAddress: s.clientIP(r),
	})
	if err != nil {
		storageErr := &ErrLeadStorage{Cause: err}
		log.Printf("onboarding: %v", storageErr)
		s.errorResponse(w, HTTPStatus(storageErr), "Failed to save lead")
		return
	}

	if err := s.mail.Send(r.Context(), mailer.LeadNotificationEmail(s.mailFrom, s.mailTo, &req)); err != nil {
		if !errors.Is(err, mailer.ErrDisabled) {
			log.Printf("onboarding: lead notification email failed: %v", err)
		}
	}

	if err := s.board.CreateTask(r.Context(), leadTask(&req)); err != nil {
		if !errors.Is(err, taskboard.ErrDisabled) {
			log.Printf("onboarding: board card creation failed: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// leadTask builds the board card for a new lead.
func leadTask(req *types.LeadRequest) *taskboard.Task {
	sector, _ := req.Answers["sector"].(string)
	description := fmt.Sprintf("Email: %s", req.Email)
	if req.Telefono != "" {
		description += fmt.Sprintf("\nTeléfono: %s", req.Telefono)
	}
	if sector != "" {
		description += fmt.Sprintf("\nSector: %s", sector)
	}

	return &taskboard.Task{
		Name:        fmt.Sprintf("Lead: %s", req.Nombre),
		Description: description,
		Status:      "nuevo lead",
		Tags:        []string{"onboarding"},
	}
}

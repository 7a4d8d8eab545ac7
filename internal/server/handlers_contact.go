package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/immoralia/process-catalog/internal/db"
	"github.com/immoralia/process-catalog/internal/mailer"
	"github.com/immoralia/process-catalog/internal/pricing"
	"github.com/immoralia/process-catalog/internal/types"
)

// handleSendContactEmail receives a contact request with the visitor's
// process selection, persists it and sends the notification pair. Both the
// internal notification and the visitor confirmation must go out for the
// request to succeed.
func (s *Server) handleSendContactEmail(w http.ResponseWriter, r *http.Request) {
	var req types.ContactRequest
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

	ip := s.clientIP(r)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	allowed, info := s.rateLimiter.Allow(ip, email)
	if !allowed {
		s.rateLimitResponse(w, info)
		return
	}

	price := pricing.Calculate(len(req.SelectedProcesses))

	// Persistence is best-effort here: the notification email is the
	// channel the team actually works from.
	var estimated *int
	if price != nil && !price.IsCustom {
		estimated = &price.Price
	}
	if _, err := s.store.SaveContactLead(r.Context(), &db.ContactLeadInput{
		Nombre:            req.Nombre,
		Email:             req.Email,
		Empresa:           req.Empresa,
		Comentario:        req.Comentario,
		SelectedProcesses: req.SelectedProcesses,
		EstimatedPrice:    estimated,
		IPAddress:         ip,
	}); err != nil {
		log.Printf("contact: failed to persist request: %v", err)
	}

	if !s.mail.Enabled() {
		err := &ErrEmailUnavailable{}
		log.Printf("contact: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Email service not configured")
		return
	}

	data := &mailer.ContactData{Request: &req, Price: price}
	business := mailer.BusinessContactEmail(s.mailFrom, s.mailTo, data)
	confirmation := mailer.ClientContactEmail(s.mailFrom, data)

	if err := mailer.SendPair(r.Context(), s.mail, business, confirmation); err != nil {
		deliveryErr := &ErrEmailDelivery{Cause: err}
		log.Printf("contact: %v", deliveryErr)
		s.errorResponse(w, HTTPStatus(deliveryErr), "Failed to send email")
		return
	}

	// Only completed submissions consume rate-limit quota.
	s.rateLimiter.Record(ip, email)

	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true})
}

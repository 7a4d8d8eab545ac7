package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OnboardingLead is a row of the onboarding_leads table. Answers holds the
// questionnaire payload verbatim as JSONB.
type OnboardingLead struct {
	ID        uuid.UUID      `json:"id"`
	Nombre    string         `json:"nombre"`
	Email     string         `json:"email"`
	Telefono  string         `json:"telefono,omitempty"`
	Answers   map[string]any `json:"answers"`
	IPAddress string         `json:"ip_address,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// OnboardingLeadInput is the data needed to record a new onboarding lead.
type OnboardingLeadInput struct {
	Nombre    string
	Email     string
	Telefono  string
	Answers   map[string]any
	IPAddress string
}

// SaveOnboardingLead inserts an onboarding lead and returns its ID.
func (db *DB) SaveOnboardingLead(ctx context.Context, input *OnboardingLeadInput) (uuid.UUID, error) {
	answersJSON, err := json.Marshal(input.Answers)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal answers: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO onboarding_leads (nombre, email, telefono, answers, ip_address)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.Nombre, input.Email, input.Telefono, answersJSON, input.IPAddress,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save onboarding lead: %w", err)
	}
	return id, nil
}

// GetOnboardingLead retrieves a lead by ID. Returns nil when no row matches.
func (db *DB) GetOnboardingLead(ctx context.Context, id uuid.UUID) (*OnboardingLead, error) {
	var lead OnboardingLead
	var answersJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, nombre, email, COALESCE(telefono, ''), answers, COALESCE(ip_address, ''), created_at
		 FROM onboarding_leads WHERE id = $1`,
		id,
	).Scan(&lead.ID, &lead.Nombre, &lead.Email, &lead.Telefono, &answersJSON, &lead.IPAddress, &lead.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get onboarding lead: %w", err)
	}

	if answersJSON != nil {
		_ = json.Unmarshal(answersJSON, &lead.Answers)
	}
	return &lead, nil
}

// ListOnboardingLeads retrieves the most recent leads, newest first.
func (db *DB) ListOnboardingLeads(ctx context.Context, limit int) ([]OnboardingLead, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, nombre, email, COALESCE(telefono, ''), answers, COALESCE(ip_address, ''), created_at
		 FROM onboarding_leads ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding leads: %w", err)
	}
	defer rows.Close()

	var leads []OnboardingLead
	for rows.Next() {
		var lead OnboardingLead
		var answersJSON []byte
		if err := rows.Scan(&lead.ID, &lead.Nombre, &lead.Email, &lead.Telefono, &answersJSON, &lead.IPAddress, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan onboarding lead: %w", err)
		}
		if answersJSON != nil {
			_ = json.Unmarshal(answersJSON, &lead.Answers)
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

// ContactLead is a row of the contact_requests table. SelectedProcesses
// keeps the catalog summaries the visitor attached, as JSONB.
type ContactLead struct {
	ID                uuid.UUID `json:"id"`
	Nombre            string    `json:"nombre"`
	Email             string    `json:"email"`
	Empresa           string    `json:"empresa"`
	Comentario        string    `json:"comentario,omitempty"`
	SelectedProcesses any       `json:"selected_processes"`
	EstimatedPrice    *int      `json:"estimated_price,omitempty"`
	IPAddress         string    `json:"ip_address,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// ContactLeadInput is the data needed to record a contact request.
type ContactLeadInput struct {
	Nombre            string
	Email             string
	Empresa           string
	Comentario        string
	SelectedProcesses any
	EstimatedPrice    *int
	IPAddress         string
}

// SaveContactLead inserts a contact request and returns its ID.
func (db *DB) SaveContactLead(ctx context.Context, input *ContactLeadInput) (uuid.UUID, error) {
	processesJSON, err := json.Marshal(input.SelectedProcesses)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal selected processes: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO contact_requests (nombre, email, empresa, comentario, selected_processes, estimated_price, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		input.Nombre, input.Email, input.Empresa, input.Comentario, processesJSON, input.EstimatedPrice, input.IPAddress,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save contact request: %w", err)
	}
	return id, nil
}

// ListContactLeads retrieves the most recent contact requests, newest first.
func (db *DB) ListContactLeads(ctx context.Context, limit int) ([]ContactLead, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, nombre, email, empresa, COALESCE(comentario, ''), selected_processes, estimated_price, COALESCE(ip_address, ''), created_at
		 FROM contact_requests ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	defer rows.Close()

	var leads []ContactLead
	for rows.Next() {
		var lead ContactLead
		var processesJSON []byte
		if err := rows.Scan(&lead.ID, &lead.Nombre, &lead.Email, &lead.Empresa, &lead.Comentario, &processesJSON, &lead.EstimatedPrice, &lead.IPAddress, &lead.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact request: %w", err)
		}
		if processesJSON != nil {
			var processes any
			if err := json.Unmarshal(processesJSON, &processes); err == nil {
				lead.SelectedProcesses = processes
			}
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

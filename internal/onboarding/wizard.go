package onboarding

import (
	"context"
	"log"
	"strings"
)

// Wizard steps, in order: sector, tools, channels, maturity/AI, pains,
// contact.
const (
	StepSector   = 1
	StepTools    = 2
	StepChannels = 3
	StepMaturity = 4
	StepPains    = 5
	StepContact  = 6
)

// Status is the wizard's lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusSubmitted Status = "submitted"
	StatusSkipped   Status = "skipped"
)

// Submitter sends a completed profile to the lead-capture backend.
type Submitter interface {
	SubmitLead(ctx context.Context, profile *Profile) error
}

// Wizard is the forward-stepping questionnaire with backward navigation.
// "Next" advances only when the current step's required fields are filled;
// "Prev" is always allowed; "Skip" resolves the prompt without answers.
type Wizard struct {
	step      int
	status    Status
	profile   *Profile
	profiles  *ProfileStore
	submitter Submitter
}

// NewWizard starts a wizard at step 1, seeded with initial answers (may be
// nil for a fresh visitor).
func NewWizard(profiles *ProfileStore, submitter Submitter, initial *Profile) *Wizard {
	profile := initial
	if profile == nil {
		profile = &Profile{Maturity: MaturityBasic}
	}
	return &Wizard{
		step:      StepSector,
		status:    StatusActive,
		profile:   profile,
		profiles:  profiles,
		submitter: submitter,
	}
}

// Step returns the current step number.
func (w *Wizard) Step() int {
	return w.step
}

// Status returns the wizard lifecycle state.
func (w *Wizard) Status() Status {
	return w.status
}

// Profile returns the in-progress answer set for mutation by the UI.
func (w *Wizard) Profile() *Profile {
	return w.profile
}

// Next advances to the following step, or submits from the last step.
// Returns false (and stays put) when the current step's required fields are
// missing. A submission attempt always resolves the wizard: backend failure
// is logged and the profile is still persisted locally, never blocking the
// visitor.
func (w *Wizard) Next(ctx context.Context) bool {
	if w.status != StatusActive || !w.stepValid() {
		return false
	}
	if w.step < StepContact {
		w.step++
		return true
	}
	w.finish(ctx)
	return true
}

// Prev returns to the previous step. Always enabled, never validated.
func (w *Wizard) Prev() {
	if w.status == StatusActive && w.step > StepSector {
		w.step--
	}
}

// Skip resolves the wizard without validation and without persisting answer
// content, so the first-visit prompt does not reappear.
func (w *Wizard) Skip() {
	if w.status != StatusActive {
		return
	}
	if err := w.profiles.Skip(); err != nil {
		log.Printf("onboarding: failed to persist skip flag: %v", err)
	}
	w.status = StatusSkipped
}

func (w *Wizard) stepValid() bool {
	switch w.step {
	case StepSector:
		return w.profile.Sector != ""
	case StepTools:
		return len(w.profile.Tools) > 0 || w.profile.OtherTool != ""
	case StepContact:
		return w.profile.Nombre != "" && strings.Contains(w.profile.Email, "@")
	default:
		return true
	}
}

func (w *Wizard) finish(ctx context.Context) {
	if w.submitter != nil {
		if err := w.submitter.SubmitLead(ctx, w.profile); err != nil {
			log.Printf("onboarding: lead submission failed, continuing anyway: %v", err)
		}
	}
	if err := w.profiles.Save(w.profile); err != nil {
		log.Printf("onboarding: failed to persist answers: %v", err)
	}
	w.status = StatusSubmitted
}

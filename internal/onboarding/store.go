package onboarding

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/immoralia/process-catalog/internal/storage"
)

// ProfileStore persists the onboarding profile as one serialized record.
// Absence of the record is meaningful: it triggers the first-visit prompt.
type ProfileStore struct {
	store storage.Store
}

// NewProfileStore wraps the given storage port.
func NewProfileStore(store storage.Store) *ProfileStore {
	return &ProfileStore{store: store}
}

// Save persists the full answer set and marks onboarding as completed.
func (ps *ProfileStore) Save(profile *Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := ps.store.Set(storage.KeyOnboardingCompleted, "true"); err != nil {
		return err
	}
	return ps.store.Set(storage.KeyOnboardingAnswers, string(data))
}

// Get returns the persisted profile, or nil if there is none or it cannot
// be parsed. Read and parse failures are logged, never surfaced.
func (ps *ProfileStore) Get() *Profile {
	raw, err := ps.store.Get(storage.KeyOnboardingAnswers)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("onboarding: failed to read persisted answers: %v", err)
		}
		return nil
	}
	var profile Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("onboarding: failed to parse persisted answers: %v", err)
		return nil
	}
	return &profile
}

// Completed reports whether the questionnaire was completed or skipped.
func (ps *ProfileStore) Completed() bool {
	raw, err := ps.store.Get(storage.KeyOnboardingCompleted)
	return err == nil && raw == "true"
}

// Skip marks onboarding as resolved without persisting answer content, so
// the prompt does not reappear.
func (ps *ProfileStore) Skip() error {
	return ps.store.Set(storage.KeyOnboardingCompleted, "true")
}

// Reset clears both the completion flag and the stored answers.
func (ps *ProfileStore) Reset() error {
	if err := ps.store.Delete(storage.KeyOnboardingCompleted); err != nil {
		return err
	}
	return ps.store.Delete(storage.KeyOnboardingAnswers)
}

// Package storage provides the key-value persistence port used for the
// visitor's on-device state (selection, hosting preference, onboarding
// answers). Callers inject a Store so tests can use the in-memory fake.
package storage

import (
	"errors"
	"sync"
)

// Keys for persisted visitor state. Values are JSON-serialized strings
// unless noted.
const (
	KeySelectedProcesses   = "immoralia_selected_processes"
	KeyHostingPreference   = "immoralia_n8n_hosting_v2" // bare enum value, not JSON
	KeyOnboardingCompleted = "immoralia_onboarding_completed"
	KeyOnboardingAnswers   = "immoralia_onboarding_answers"
)

// ErrNotFound indicates the key has never been written (or was cleared).
var ErrNotFound = errors.New("storage: key not found")

// Store is the on-device key-value port.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is an in-process Store, used as the test fake and as the default
// when no durable store is configured.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Package selection tracks the visitor's in-progress shortlist of catalog
// processes plus the hosting preference, persisting both through the
// injected storage port on every mutation.
package selection

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/immoralia/process-catalog/internal/catalog"
	"github.com/immoralia/process-catalog/internal/storage"
)

// HostingMode is the visitor's n8n hosting preference.
type HostingMode string

const (
	// HostingSetup means we provision and host the automation stack.
	HostingSetup HostingMode = "setup"
	// HostingOwn means the visitor runs it on their own infrastructure.
	HostingOwn HostingMode = "own"
)

// State is the current selection. Membership is unique by process ID;
// toggling re-adds or removes, never duplicates. Not safe for concurrent
// use; the UI is single-threaded and event-driven.
type State struct {
	store   storage.Store
	members map[string]struct{}
	order   []string
	hosting HostingMode
}

// Load initializes selection state from the store. Missing, unparseable or
// non-array persisted data yields an empty selection; identifiers no longer
// present in the catalog are silently dropped. Never fails.
func Load(store storage.Store) *State {
	s := &State{
		store:   store,
		members: make(map[string]struct{}),
		hosting: HostingSetup,
	}

	if raw, err := store.Get(storage.KeySelectedProcesses); err == nil {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			log.Printf("selection: discarding unparseable persisted selection: %v", err)
		} else {
			for _, id := range ids {
				if catalog.Exists(id) {
					s.add(id)
				}
			}
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("selection: failed to read persisted selection: %v", err)
	}

	if raw, err := store.Get(storage.KeyHostingPreference); err == nil {
		if mode := HostingMode(raw); mode == HostingSetup || mode == HostingOwn {
			s.hosting = mode
		}
	}

	return s
}

// Toggle adds id to the selection if absent, removes it if present, and
// persists the updated set. Callers are responsible for only toggling valid
// catalog identifiers.
func (s *State) Toggle(id string) {
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	} else {
		s.add(id)
	}
	s.persistSelection()
}

// Clear empties the selection and persists immediately.
func (s *State) Clear() {
	s.members = make(map[string]struct{})
	s.order = nil
	s.persistSelection()
}

// SetHosting overwrites the hosting preference and persists immediately.
func (s *State) SetHosting(mode HostingMode) {
	s.hosting = mode
	if err := s.store.Set(storage.KeyHostingPreference, string(mode)); err != nil {
		log.Printf("selection: failed to persist hosting preference: %v", err)
	}
}

// Hosting returns the current hosting preference.
func (s *State) Hosting() HostingMode {
	return s.hosting
}

// Has reports whether id is selected.
func (s *State) Has(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Count returns the number of selected processes.
func (s *State) Count() int {
	return len(s.members)
}

// IDs returns the selected identifiers in toggle order.
func (s *State) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Processes returns the selected catalog records in catalog-definition order.
func (s *State) Processes() []catalog.Process {
	var out []catalog.Process
	for _, p := range catalog.All() {
		if s.Has(p.ID) {
			out = append(out, p)
		}
	}
	return out
}

func (s *State) add(id string) {
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *State) persistSelection() {
	ids := s.order
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		log.Printf("selection: failed to marshal selection: %v", err)
		return
	}
	if err := s.store.Set(storage.KeySelectedProcesses, string(data)); err != nil {
		log.Printf("selection: failed to persist selection: %v", err)
	}
}

package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/intervet/internal/assessment"
)

// candidate is one registered profile plus its chosen levels.
type candidate struct {
	ID      string
	Profile assessment.ParsedProfile
	Levels  assessment.LevelChoice
}

// candidateRegistry is the in-memory candidate table. The embedded
// server runs for one local session, so nothing is persisted; ids are
// fresh UUIDs per process.
type candidateRegistry struct {
	mu      sync.RWMutex
	byID    map[string]*candidate
	byEmail map[string]string
}

func newCandidateRegistry() *candidateRegistry {
	return &candidateRegistry{
		byID:    make(map[string]*candidate),
		byEmail: make(map[string]string),
	}
}

// Upsert registers a profile, matching an existing candidate by email
// when present.
func (r *candidateRegistry) Upsert(profile assessment.ParsedProfile) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.Email != "" {
		if id, ok := r.byEmail[profile.Email]; ok {
			r.byID[id].Profile = profile
			return id
		}
	}

	id := uuid.NewString()
	r.byID[id] = &candidate{ID: id, Profile: profile}
	if profile.Email != "" {
		r.byEmail[profile.Email] = id
	}
	return id
}

// Get looks up a candidate by id.
func (r *candidateRegistry) Get(id string) (*candidate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	return c, ok
}

// SaveLevels records the chosen levels for a candidate.
func (r *candidateRegistry) SaveLevels(id string, levels assessment.LevelChoice) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return false
	}
	c.Levels = levels
	return true
}

package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Artifacts holds the three rendered files one simulation run produced, kept
// only long enough for the three download endpoints to retrieve them.
// Persisting per-row results across runs is an explicit Non-goal (see
// SimulationRun's doc comment) — this store exists purely as the handoff
// between the synchronous POST that renders them and the GET that streams
// them back, not as a result archive.
type Artifacts struct {
	ReportXLSX   []byte
	WeekGridXLSX []byte
	SummaryPDF   []byte
}

type artifactEntry struct {
	artifacts Artifacts
	expiresAt time.Time
}

// ArtifactStore is an in-memory, TTL-expiring cache of rendered run
// artifacts, keyed by simulation id. Modeled on the reference system's
// subscriber hub: a mutex-guarded map with no persistence layer underneath.
type ArtifactStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]artifactEntry
	ttl     time.Duration
}

// NewArtifactStore creates a store whose entries expire ttl after being put.
func NewArtifactStore(ttl time.Duration) *ArtifactStore {
	return &ArtifactStore{
		entries: make(map[uuid.UUID]artifactEntry),
		ttl:     ttl,
	}
}

// Put stores id's artifacts, replacing any prior entry.
func (s *ArtifactStore) Put(id uuid.UUID, a Artifacts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = artifactEntry{artifacts: a, expiresAt: time.Now().Add(s.ttl)}
}

// Get returns id's artifacts if present and not yet expired.
func (s *ArtifactStore) Get(id uuid.UUID) (Artifacts, bool) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return Artifacts{}, false
	}
	return entry.artifacts, true
}

// Evict drops every expired entry. It is not invoked automatically, so
// tests stay deterministic; the server does not call it.
func (s *ArtifactStore) Evict() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

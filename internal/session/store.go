// Package session owns the persisted history of completed generations:
// create, list, load, delete, with most-recent-first ordering and
// corruption-tolerant startup.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wassaf/wassaf-cli/internal/content"
)

// Session is one completed primary generation. Immutable once created;
// destroyed only by explicit deletion or a store-wide clear.
type Session struct {
	ID        string                    `json:"id"`
	Timestamp time.Time                 `json:"timestamp"`
	FormData  content.GenerationRequest `json:"formData"`
	Results   content.GenerationResult  `json:"results"`
}

// ErrNotFound is returned by Load for an unknown session id.
var ErrNotFound = errors.New("session not found")

// Store holds the session list in memory and mirrors every mutation to the
// blob. Persistence is best effort: a failed write is logged and the
// in-memory list still reflects the change.
type Store struct {
	mu       sync.Mutex
	blob     Blob
	sessions []Session
}

// New builds a store over blob and loads the persisted history. A corrupt
// blob is discarded with a warning and the history starts empty; corruption
// never surfaces to the caller.
func New(blob Blob) *Store {
	s := &Store{blob: blob}
	s.loadAll()
	return s
}

func (s *Store) loadAll() {
	data, err := s.blob.Read()
	if err != nil {
		if !errors.Is(err, ErrNoBlob) {
			log.Warn().Err(err).Msg("Failed to read session history, starting empty")
		}
		return
	}

	var sessions []Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		log.Warn().Err(err).Msg("Session history is corrupt, discarding it")
		s.sessions = nil
		if werr := s.blob.Write([]byte("[]")); werr != nil {
			log.Warn().Err(werr).Msg("Failed to reset corrupt session history")
		}
		return
	}
	s.sessions = sessions
	log.Debug().Int("count", len(sessions)).Msg("Session history loaded")
}

// persist writes the full list. Callers hold the mutex.
func (s *Store) persist() {
	data, err := json.Marshal(s.sessions)
	if err != nil {
		log.Error().Err(err).Msg("Failed to serialize session history")
		return
	}
	if err := s.blob.Write(data); err != nil {
		log.Error().Err(err).Msg("Failed to persist session history")
	}
}

// newID derives a unique id from the creation time: millisecond timestamp
// plus a random suffix so same-millisecond creations stay distinct.
func newID(now time.Time) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return strconv.FormatInt(now.UnixMilli(), 10)
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}

// Create assigns an id and timestamp, prepends the session, and persists the
// updated list. Returns a copy of the created session.
func (s *Store) Create(formData content.GenerationRequest, results content.GenerationResult) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := Session{
		ID:        newID(now),
		Timestamp: now,
		FormData:  formData,
		Results:   results,
	}
	s.sessions = append([]Session{sess}, s.sessions...)
	s.persist()

	log.Info().Str("session_id", sess.ID).Int("total", len(s.sessions)).Msg("Session created")
	out := sess
	return &out
}

// List returns the sessions most-recent-first. The slice is a copy; sessions
// themselves are immutable.
func (s *Store) List() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Session(nil), s.sessions...)
}

// Len reports the number of stored sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Load returns a copy of the session with the given id, or ErrNotFound.
func (s *Store) Load(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			out := sess
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes the session with the given id, if present, and persists the
// updated list. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0:0]
	for _, sess := range s.sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	if len(kept) == len(s.sessions) {
		return
	}
	s.sessions = kept
	s.persist()
	log.Info().Str("session_id", id).Int("remaining", len(kept)).Msg("Session deleted")
}

// Clear removes every session and persists the empty list.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) == 0 {
		return
	}
	s.sessions = nil
	s.persist()
	log.Info().Msg("Session history cleared")
}

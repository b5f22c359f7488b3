package store

import (
	"github.com/spec-kit/ticketapp/internal/domain"
	"github.com/spec-kit/ticketapp/internal/storage"
)

// SessionStore owns the single active-session record. Last write wins; there
// is no session set, only one slot.
type SessionStore struct {
	kv    storage.KV
	codec Codec
}

// NewSessionStore builds the store over the given substrate.
func NewSessionStore(kv storage.KV) *SessionStore {
	return &SessionStore{kv: kv, codec: JSONCodec{}}
}

// SetCodec swaps the payload codec; call before first use.
func (s *SessionStore) SetCodec(codec Codec) {
	s.codec = codec
}

// Save persists the session, overwriting any prior one.
func (s *SessionStore) Save(session domain.Session) error {
	payload, err := s.codec.Marshal(session)
	if err != nil {
		return err
	}
	return s.kv.Set(storage.KeySession, payload)
}

// Get returns the persisted session, or false when absent. A malformed
// payload is treated as no session, not an error.
func (s *SessionStore) Get() (*domain.Session, bool, error) {
	payload, ok, err := s.kv.Get(storage.KeySession)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var session domain.Session
	if err := s.codec.Unmarshal(payload, &session); err != nil {
		return nil, false, nil
	}
	return &session, true, nil
}

// Clear removes the persisted session; clearing an empty slot is a no-op.
func (s *SessionStore) Clear() error {
	return s.kv.Delete(storage.KeySession)
}

package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrStateNotFound  = errors.New("conversation state not found")
	ErrInvalidSession = errors.New("session id is empty")
)

// Store is the persistence contract used by the orchestrator. Sessions live
// only for the duration of one interactive run, so the shipped implementation
// is in-memory; the interface keeps the seam for anything longer-lived.
type Store interface {
	Load(ctx context.Context, sessionID string) (*ConversationState, error)
	Save(ctx context.Context, st *ConversationState) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore keeps sessions in a process-local map. Values are stored as
// JSON snapshots so callers never share live pointers with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]byte, 4),
	}
}

func (m *MemoryStore) Load(ctx context.Context, sessionID string) (*ConversationState, error) {
	key, err := sessionKey(sessionID)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	raw, ok := m.sessions[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrStateNotFound
	}

	var st ConversationState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("unmarshal conversation state: %w", err)
	}
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state loaded from store: %w", err)
	}
	return &st, nil
}

func (m *MemoryStore) Save(ctx context.Context, st *ConversationState) error {
	if st == nil {
		return ErrNilState
	}
	key, err := sessionKey(st.SessionID)
	if err != nil {
		return err
	}
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now().UTC()
	}

	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal conversation state: %w", err)
	}

	m.mu.Lock()
	m.sessions[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	key, err := sessionKey(sessionID)
	if err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
	return nil
}

func sessionKey(sessionID string) (string, error) {
	trimmed := strings.TrimSpace(sessionID)
	if trimmed == "" {
		return "", ErrInvalidSession
	}
	return trimmed, nil
}

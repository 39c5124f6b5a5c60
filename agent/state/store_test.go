package state

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	st := NewConversationState("session-1", time.Now())
	st.AppendTurn(SpeakerUser, "Paris")

	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.SessionID != "session-1" {
		t.Fatalf("SessionID = %q, want session-1", loaded.SessionID)
	}
	if len(loaded.Transcript) != 1 || loaded.Transcript[0].Text != "Paris" {
		t.Fatalf("unexpected transcript: %#v", loaded.Transcript)
	}
}

func TestMemoryStoreLoadMissing(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	_, err := store.Load(context.Background(), "nope")
	if !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("Load() error = %v, want ErrStateNotFound", err)
	}
}

func TestMemoryStoreSnapshotsState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	st := NewConversationState("session-2", time.Now())
	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the saved pointer must not leak into the stored snapshot.
	st.Preferences.Destination = "Tokyo"

	loaded, err := store.Load(context.Background(), "session-2")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Preferences.Destination != "" {
		t.Fatalf("stored snapshot mutated: destination = %q", loaded.Preferences.Destination)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	st := NewConversationState("session-3", time.Now())
	if err := store.Save(context.Background(), st); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Delete(context.Background(), "session-3"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(context.Background(), "session-3"); !errors.Is(err, ErrStateNotFound) {
		t.Fatalf("Load() after delete error = %v, want ErrStateNotFound", err)
	}
}

func TestMemoryStoreEmptySessionID(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if _, err := store.Load(context.Background(), "  "); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Load() error = %v, want ErrInvalidSession", err)
	}
	if err := store.Save(context.Background(), &ConversationState{Stage: StageCollecting}); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("Save() error = %v, want ErrInvalidSession", err)
	}
}

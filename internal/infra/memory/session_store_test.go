package memory

import (
	"testing"

	"exam-review-service/internal/domain"
	"exam-review-service/internal/game"
)

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	first := newSession(t, "s1")
	store.Put("p1", first)
	if got, ok := store.Get("p1"); !ok || got != first {
		t.Fatalf("expected stored session back")
	}

	// Starting over replaces the previous session.
	second := newSession(t, "s2")
	store.Put("p1", second)
	if got, _ := store.Get("p1"); got != second {
		t.Fatalf("expected replacement session")
	}

	store.Delete("p1")
	if _, ok := store.Get("p1"); ok {
		t.Fatalf("expected session removed")
	}
}

func newSession(t *testing.T, id string) *game.Session {
	t.Helper()
	s, err := game.NewSession(id, []domain.Question{{
		ID:          "q1",
		Text:        "ok?",
		Type:        domain.TrueFalse,
		CorrectBool: true,
	}}, game.SelectionConfig{}, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

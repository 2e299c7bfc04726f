package session

import (
	"context"
	"testing"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &RedisSessionStore{client: client, ttl: time.Hour, lockTTL: 10 * time.Second}, mr
}

func sampleSession() budget.Session {
	state := budget.NewState(entities.Header{
		Kind:        entities.HeaderKindAgendamento,
		PatientID:   "p1",
		PatientName: "Maria",
		InsurerID:   "ins1",
		PlanID:      "plan1",
		RequesterID: "req1",
	})
	return budget.Session{
		ID:               "s1",
		UserID:           "u1",
		DiscountEditable: true,
		State:            state,
		Picker:           budget.NewSlotPicker(),
		CreatedAt:        time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestRedisSessionStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	t.Run("missing session returns zero value", func(t *testing.T) {
		got, err := store.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero session, got %q", got.ID)
		}
	})

	t.Run("save then get", func(t *testing.T) {
		if err := store.Save(ctx, sampleSession()); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "s1" || !got.DiscountEditable || got.State.Header.PlanID != "plan1" {
			t.Fatalf("unexpected session: %+v", got)
		}
		if got.Picker.State != budget.PickerIdle {
			t.Fatalf("expected idle picker, got %s", got.Picker.State)
		}
		if ttl := mr.TTL(sessionKey("s1")); ttl != time.Hour {
			t.Fatalf("expected ttl 1h, got %s", ttl)
		}
	})

	t.Run("session expires", func(t *testing.T) {
		mr.FastForward(2 * time.Hour)
		got, err := store.Get(ctx, "s1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected expired session")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.Save(ctx, sampleSession()); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := store.Delete(ctx, "s1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if mr.Exists(sessionKey("s1")) {
			t.Fatalf("expected key removed")
		}
	})

	t.Run("save without id fails", func(t *testing.T) {
		if err := store.Save(ctx, budget.Session{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRedisSessionStore_Lock(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	token, err := store.Lock(ctx, "s1")
	if err != nil || token == "" {
		t.Fatalf("expected lock, got token=%q err=%v", token, err)
	}

	t.Run("second lock is busy", func(t *testing.T) {
		busy, err := store.Lock(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if busy != "" {
			t.Fatalf("expected empty token while locked")
		}
	})

	t.Run("unlock with foreign token keeps lock", func(t *testing.T) {
		if err := store.Unlock(ctx, "s1", "other"); err != nil {
			t.Fatalf("unlock: %v", err)
		}
		if !mr.Exists(lockKey("s1")) {
			t.Fatalf("lock must survive a foreign unlock")
		}
	})

	t.Run("unlock with own token releases", func(t *testing.T) {
		if err := store.Unlock(ctx, "s1", token); err != nil {
			t.Fatalf("unlock: %v", err)
		}
		again, err := store.Lock(ctx, "s1")
		if err != nil || again == "" {
			t.Fatalf("expected lock after release, got %q err=%v", again, err)
		}
	})

	t.Run("lock expires", func(t *testing.T) {
		mr.FastForward(11 * time.Second)
		again, err := store.Lock(ctx, "s1")
		if err != nil || again == "" {
			t.Fatalf("expected lock after expiry, got %q err=%v", again, err)
		}
	})
}

func TestSessionTTLFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "")
		if got := sessionTTLFromEnv(); got != defaultSessionTTL {
			t.Fatalf("expected %s, got %s", defaultSessionTTL, got)
		}
	})
	t.Run("custom", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "30m")
		if got := sessionTTLFromEnv(); got != 30*time.Minute {
			t.Fatalf("expected 30m, got %s", got)
		}
	})
	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "banana")
		if got := sessionTTLFromEnv(); got != defaultSessionTTL {
			t.Fatalf("expected default, got %s", got)
		}
	})
}

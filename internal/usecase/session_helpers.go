package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/usecase/interfaces"
)

// sessionRunner serializes mutations of one session through the store's busy
// lock: load, mutate, save, release.
type sessionRunner struct {
	store interfaces.ISessionStore
	clock func() time.Time
}

func (r sessionRunner) load(ctx context.Context, id string) (budget.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return budget.Session{}, ErrInvalidSessionID
	}
	sess, err := r.store.Get(ctx, id)
	if err != nil {
		return budget.Session{}, err
	}
	if sess.ID == "" {
		return budget.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

func (r sessionRunner) lock(ctx context.Context, id string) (func(), error) {
	token, err := r.store.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrSessionBusy
	}
	return func() {
		// The request context may already be cancelled; the lock must still go.
		if err := r.store.Unlock(context.WithoutCancel(ctx), id, token); err != nil {
			log.Printf("[budget][session] unlock failed session_id=%s err=%v", id, err)
		}
	}, nil
}

// mutate runs fn on the locked session and saves the result when fn succeeds.
// When fn fails nothing is written.
func (r sessionRunner) mutate(ctx context.Context, id string, fn func(sess *budget.Session) error) (budget.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return budget.Session{}, ErrInvalidSessionID
	}
	release, err := r.lock(ctx, id)
	if err != nil {
		return budget.Session{}, err
	}
	defer release()

	sess, err := r.load(ctx, id)
	if err != nil {
		return budget.Session{}, err
	}
	if err := fn(&sess); err != nil {
		return budget.Session{}, err
	}
	sess.UpdatedAt = r.clock().UTC()
	if err := r.store.Save(ctx, sess); err != nil {
		return budget.Session{}, err
	}
	return sess, nil
}

func lookupFailed(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLookupFailed, what, err)
}

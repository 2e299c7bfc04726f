package interfaces

import (
	"context"
	"laboratorio_xpto/internal/domain/budget"
)

// ISessionStore keeps editing sessions while they are open.
//
// Get returns a zero Session (empty ID) when the session does not exist or
// expired. Lock is a short per-session busy flag: it returns a token when
// acquired and an empty token when another mutation holds it.

type ISessionStore interface {
	Save(ctx context.Context, s budget.Session) error
	Get(ctx context.Context, id string) (budget.Session, error)
	Delete(ctx context.Context, id string) error
	Lock(ctx context.Context, id string) (token string, err error)
	Unlock(ctx context.Context, id, token string) error
}

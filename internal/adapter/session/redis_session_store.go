package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionTTL = 2 * time.Hour
	defaultLockTTL    = 30 * time.Second

	sessionKeyPrefix = "budget:session:"
	lockKeySuffix    = ":lock"
)

// Deletes the lock only if it still holds our token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSessionStore keeps editing sessions as JSON values with a sliding TTL.
//
// Keys:
//   - budget:session:<id>       session JSON
//   - budget:session:<id>:lock  busy flag, SETNX with a random token
type RedisSessionStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{
		client:  client,
		ttl:     sessionTTLFromEnv(),
		lockTTL: defaultLockTTL,
	}
}

func sessionTTLFromEnv() time.Duration {
	v := os.Getenv("SESSION_TTL")
	if v == "" {
		return defaultSessionTTL
	}
	ttl, err := time.ParseDuration(v)
	if err != nil || ttl <= 0 {
		log.Printf("[session][redis] invalid SESSION_TTL=%q, using %s", v, defaultSessionTTL)
		return defaultSessionTTL
	}
	return ttl
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func lockKey(id string) string {
	return sessionKeyPrefix + id + lockKeySuffix
}

// Save writes the session and refreshes its expiry.
func (s *RedisSessionStore) Save(ctx context.Context, sess budget.Session) error {
	if sess.ID == "" {
		return errors.New("session id is required")
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), b, s.ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (budget.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return budget.Session{}, nil
	}
	if err != nil {
		return budget.Session{}, err
	}

	var sess budget.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("[session][redis] corrupt session session_id=%s err=%v", id, err)
		return budget.Session{}, err
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id), lockKey(id)).Err()
}

// Lock returns an empty token when another mutation holds the session.
func (s *RedisSessionStore) Lock(ctx context.Context, id string) (string, error) {
	token := uuid.NewString()
	acquired, err := s.client.SetNX(ctx, lockKey(id), token, s.lockTTL).Result()
	if err != nil {
		return "", err
	}
	if !acquired {
		return "", nil
	}
	return token, nil
}

func (s *RedisSessionStore) Unlock(ctx context.Context, id, token string) error {
	return unlockScript.Run(ctx, s.client, []string{lockKey(id)}, token).Err()
}

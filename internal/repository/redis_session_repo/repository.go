package redis_session_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

const defaultPrefix = "slot:session:"

type repo struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type Option func(*repo)

// WithTTL задаёт срок жизни сессии. 0 - без срока
func WithTTL(ttl time.Duration) Option {
	return func(r *repo) {
		r.ttl = ttl
	}
}

// WithPrefix задаёт префикс ключей сессий
func WithPrefix(prefix string) Option {
	return func(r *repo) {
		r.prefix = prefix
	}
}

func NewSessionRepository(client *redis.Client, opts ...Option) repository.SessionRepository {
	r := &repo{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *repo) key(id string) string {
	return r.prefix + id
}

// CreateSession - сохраняет баланс новой сессии, существующий ключ не перезаписывается
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	ok, err := r.client.SetNX(ctx, r.key(session.ID), session.Balance, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

// GetBalance - баланс сессии
func (r *repo) GetBalance(ctx context.Context, id string) (int, error) {
	balance, err := r.client.Get(ctx, r.key(id)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrSessionNotFound
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// UpdateBalance - обновляет баланс только существующей сессии, срок жизни сохраняется
func (r *repo) UpdateBalance(ctx context.Context, id string, amount int) error {
	err := r.client.SetArgs(ctx, r.key(id), amount, redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrSessionNotFound
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// DeleteSession - удаляет сессию
func (r *repo) DeleteSession(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return model.ErrSessionNotFound
	}
	return nil
}

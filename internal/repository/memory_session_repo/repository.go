package memory_session_repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

type entry struct {
	session   model.Session
	expiresAt time.Time // нулевое значение - без срока
}

type repo struct {
	mtx       sync.Mutex
	sessions  map[string]entry
	ttl       time.Duration
	now       func() time.Time
	onExpire  func(n int)
	nextSweep time.Time
}

type Option func(*repo)

// WithTTL задаёт срок жизни сессии от создания. 0 - без срока
func WithTTL(ttl time.Duration) Option {
	return func(r *repo) {
		r.ttl = ttl
	}
}

// WithOnExpire вызывается с числом удалённых по сроку сессий
func WithOnExpire(fn func(n int)) Option {
	return func(r *repo) {
		r.onExpire = fn
	}
}

// WithClock подменяет текущее время
func WithClock(now func() time.Time) Option {
	return func(r *repo) {
		r.now = now
	}
}

// NewSessionRepository - хранилище сессий в памяти процесса.
// Просроченные сессии удаляются при обращении и периодически при создании новых
func NewSessionRepository(opts ...Option) repository.SessionRepository {
	r := &repo{
		sessions: make(map[string]entry),
		now:      time.Now,
		onExpire: func(int) {},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateSession - сохраняет новую сессию. Повторный ID - ошибка
func (r *repo) CreateSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	now := r.now()
	r.sweep(now)

	if _, ok := r.get(session.ID, now); ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}

	e := entry{session: *session}
	if r.ttl > 0 {
		e.expiresAt = now.Add(r.ttl)
	}
	r.sessions[session.ID] = e
	return nil
}

// GetBalance - баланс сессии по её ID
func (r *repo) GetBalance(_ context.Context, id string) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.get(id, r.now())
	if !ok {
		return 0, model.ErrSessionNotFound
	}
	return e.session.Balance, nil
}

// UpdateBalance - записывает новый баланс, срок жизни не продлевается
func (r *repo) UpdateBalance(_ context.Context, id string, amount int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.get(id, r.now())
	if !ok {
		return model.ErrSessionNotFound
	}
	e.session.Balance = amount
	r.sessions[id] = e
	return nil
}

// DeleteSession - удаляет сессию
func (r *repo) DeleteSession(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.get(id, r.now()); !ok {
		return model.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// get возвращает живую сессию, просроченную удаляет. Вызывается под mtx
func (r *repo) get(id string, now time.Time) (entry, bool) {
	e, ok := r.sessions[id]
	if !ok {
		return entry{}, false
	}
	if e.expired(now) {
		delete(r.sessions, id)
		r.onExpire(1)
		return entry{}, false
	}
	return e, true
}

// sweep удаляет все просроченные сессии не чаще раза в ttl. Вызывается под mtx
func (r *repo) sweep(now time.Time) {
	if r.ttl <= 0 || now.Before(r.nextSweep) {
		return
	}
	r.nextSweep = now.Add(r.ttl)

	expired := 0
	for id, e := range r.sessions {
		if e.expired(now) {
			delete(r.sessions, id)
			expired++
		}
	}
	if expired > 0 {
		r.onExpire(expired)
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

package txlock

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// Manager - trm.Manager для хранилищ без транзакций (память, redis).
// Сериализует блоки Do внутри процесса. Вложенный Do приводит к дедлоку
type Manager struct {
	mtx sync.Mutex
}

var _ trm.Manager = (*Manager)(nil)

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

func (m *Manager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

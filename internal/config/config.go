package config

import (
	"time"

	"github.com/joho/godotenv"

	"slot_backend/internal/model"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type MachineConfig interface {
	Machine() model.MachineConfig
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type RedisConfig interface {
	Address() string
	Password() string
	DB() int
	SessionTTL() time.Duration
}

// StorageConfig - где хранятся сессии: memory, redis или postgres
type StorageConfig interface {
	Driver() string
}

type SessionConfig interface {
	TokenSecretKey() []byte
	TokenDuration() time.Duration
}

type LogConfig interface {
	Level() string
}

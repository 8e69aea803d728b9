package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"slot_backend/internal/config"
)

const (
	redisAddrEnvName       = "REDIS_ADDR"
	redisPasswordEnvName   = "REDIS_PASSWORD"
	redisDBEnvName         = "REDIS_DB"
	redisSessionTTLEnvName = "REDIS_SESSION_TTL"
)

type redisConfig struct {
	addr       string
	password   string
	db         int
	sessionTTL time.Duration
}

func NewRedisConfig() (config.RedisConfig, error) {
	addr := os.Getenv(redisAddrEnvName)
	if len(addr) == 0 {
		return nil, errors.New("redis address not found")
	}

	cfg := &redisConfig{
		addr:     addr,
		password: os.Getenv(redisPasswordEnvName),
	}

	if raw := os.Getenv(redisDBEnvName); len(raw) != 0 {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis db: %w", err)
		}
		cfg.db = db
	}

	// 0 - сессии без срока жизни
	if raw := os.Getenv(redisSessionTTLEnvName); len(raw) != 0 {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid redis session ttl: %w", err)
		}
		cfg.sessionTTL = ttl
	}

	return cfg, nil
}

func (cfg *redisConfig) Address() string {
	return cfg.addr
}

func (cfg *redisConfig) Password() string {
	return cfg.password
}

func (cfg *redisConfig) DB() int {
	return cfg.db
}

func (cfg *redisConfig) SessionTTL() time.Duration {
	return cfg.sessionTTL
}

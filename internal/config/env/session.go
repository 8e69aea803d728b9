package env

import (
	"fmt"
	"os"
	"time"

	"slot_backend/internal/config"
)

const (
	sessionTokenKeyEnvName      = "SESSION_TOKEN_SECRET"
	sessionTokenDurationEnvName = "SESSION_TOKEN_DURATION"

	defaultSessionTokenDuration = 24 * time.Hour
)

type sessionConfig struct {
	tokenSecretKey string
	tokenDuration  time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	secret := os.Getenv(sessionTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	duration := defaultSessionTokenDuration
	if raw := os.Getenv(sessionTokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session token duration: %w", err)
		}
		duration = parsed
	}

	return &sessionConfig{
		tokenSecretKey: secret,
		tokenDuration:  duration,
	}, nil
}

func (s *sessionConfig) TokenSecretKey() []byte {
	return []byte(s.tokenSecretKey)
}

func (s *sessionConfig) TokenDuration() time.Duration {
	return s.tokenDuration
}

package env

import (
	"fmt"
	"os"
	"strings"

	"slot_backend/internal/config"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	logLevelEnvName      = "LOG_LEVEL"

	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type storageConfig struct {
	driver string
}

func NewStorageConfig() (config.StorageConfig, error) {
	driver := strings.ToLower(os.Getenv(storageDriverEnvName))
	switch driver {
	case "":
		driver = StorageMemory
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	return &storageConfig{driver: driver}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	return &logConfig{level: level}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

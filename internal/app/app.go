package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"slot_backend/internal/config"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider

	envPath     string
	machinePath string
}

type Option func(*App)

// WithEnvFile - путь к .env файлу, по умолчанию ".env"
func WithEnvFile(path string) Option {
	return func(a *App) {
		a.envPath = path
	}
}

// WithMachineConfig - путь к YAML конфигурации автомата, пустой путь - встроенная
func WithMachineConfig(path string) Option {
	return func(a *App) {
		a.machinePath = path
	}
}

func NewApp(opts ...Option) *App {
	a := &App{envPath: ".env"}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.machinePath)
}

// Run поднимает HTTP сервер и блокируется до отмены ctx
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(s.envPath)
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	logger := s.ServiceProvider.Logger()
	if envErr != nil {
		logger.Debug("env file not loaded", zap.String("path", s.envPath), zap.Error(envErr))
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("storage", s.ServiceProvider.StorageCfg().Driver()),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
			return srv.Close()
		}
		logger.Info("server stopped")
		return nil
	}
}

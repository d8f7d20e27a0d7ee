// Package server запускает и останавливает HTTP и HTTPS сервер фронт-контроллера.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/InQaaaaGit/gyg.git/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Starter интерфейс для запуска сервера
type Starter interface {
	Start() error
}

// HTTPServer представляет HTTP сервер с общей логикой запуска
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает новый HTTP сервер
func NewHTTPServer(server *http.Server, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		config: cfg,
		logger: logger,
	}
}

// Start запускает HTTP или HTTPS сервер в зависимости от конфигурации.
// Штатная остановка через Shutdown не считается ошибкой.
func (s *HTTPServer) Start() error {
	var err error
	if s.config.IsHTTPSEnabled() {
		s.logger.Info("Starting HTTPS server",
			zap.String("address", s.config.ServerAddress),
			zap.String("cert", s.config.TLSCertFile),
			zap.String("key", s.config.TLSKeyFile))
		err = s.server.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile)
	} else {
		s.logger.Info("Starting HTTP server", zap.String("address", s.config.ServerAddress))
		err = s.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown останавливает сервер, дожидаясь завершения активных запросов
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	return nil
}

// InitLogger создает production логгер с уровнем level и функцию синхронизации
func InitLogger(level string) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}

	cleanup := func() {
		// Sync для stderr на linux возвращает EINVAL, ошибка не важна
		_ = logger.Sync()
	}

	return logger, cleanup, nil
}

// Gyg - фронт-контроллер сайта: разбирает запрос, разрешает контроллер,
// страницу и аргументы по белому списку и отдает ответ контроллера.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/InQaaaaGit/gyg.git/internal/app"
	"github.com/InQaaaaGit/gyg.git/internal/buildinfo"
	"github.com/InQaaaaGit/gyg.git/internal/config"
	"github.com/InQaaaaGit/gyg.git/internal/server"
	"go.uber.org/zap"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, syncLogger, err := server.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer syncLogger()

	logger.Info("Starting gyg", buildinfo.New(buildVersion, buildDate, buildCommit).Fields()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// run собирает приложение и обслуживает запросы до отмены ctx
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	application, err := app.NewApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.NewHTTPServer(application.GetServer(), cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

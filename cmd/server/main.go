// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/formatkit/internal/config"
	"github.com/unclebandit/formatkit/internal/db"
	"github.com/unclebandit/formatkit/internal/handler"
	"github.com/unclebandit/formatkit/internal/logging"
	"github.com/unclebandit/formatkit/internal/queue"
	"github.com/unclebandit/formatkit/internal/repository"
	"github.com/unclebandit/formatkit/internal/service"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if !envLoaded {
		logger.Info("no .env file found, relying on OS environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer conn.Close()

	customerRepo := &repository.CustomerRepository{DB: conn}
	customerService := &service.CustomerService{
		CustomerRepo: customerRepo,
		ImportTopic:  cfg.ImportQueue,
		Logger:       logger,
	}

	// Without a broker, imports are handled in-process.
	if cfg.AMQPURL != "" {
		q, err := queue.DialAMQP(cfg.AMQPURL, logger)
		if err != nil {
			logger.Fatal("queue unavailable", zap.Error(err))
		}
		defer q.Close()
		customerService.Queue = q
	} else {
		q := queue.NewInMemoryQueue(logger)
		if err := queue.StartImportSubscriber(ctx, q, cfg.ImportQueue, customerService, logger); err != nil {
			logger.Fatal("start import subscriber", zap.Error(err))
		}
		defer q.Wait()
		customerService.Queue = q
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.NewHandler(customerService, logger).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/unclebandit/formatkit/internal/config"
	"github.com/unclebandit/formatkit/internal/db"
	"github.com/unclebandit/formatkit/internal/logging"
	"github.com/unclebandit/formatkit/internal/queue"
	"github.com/unclebandit/formatkit/internal/repository"
	"github.com/unclebandit/formatkit/internal/service"
)

func main() {
	cfg, _, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.AMQPURL == "" {
		logger.Fatal("AMQP_URL is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer conn.Close()

	customerService := &service.CustomerService{
		CustomerRepo: &repository.CustomerRepository{DB: conn},
		Logger:       logger,
	}

	q, err := queue.DialAMQP(cfg.AMQPURL, logger)
	if err != nil {
		logger.Fatal("queue unavailable", zap.Error(err))
	}
	defer q.Close()

	if err := queue.StartImportSubscriber(ctx, q, cfg.ImportQueue, customerService, logger); err != nil {
		logger.Fatal("register consumer", zap.Error(err))
	}

	logger.Info("worker running, waiting for imports", zap.String("queue", cfg.ImportQueue))
	<-ctx.Done()
}

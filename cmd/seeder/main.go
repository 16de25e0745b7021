// cmd/seeder/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/unclebandit/formatkit/internal/config"
	"github.com/unclebandit/formatkit/internal/db"
	"github.com/unclebandit/formatkit/internal/logging"
	"github.com/unclebandit/formatkit/internal/model"
	"github.com/unclebandit/formatkit/internal/repository"
	"github.com/unclebandit/formatkit/internal/service"
)

func main() {
	var file string
	var batchSize int

	cmd := &cobra.Command{
		Use:           "seeder",
		Short:         "Load seed customers into the database",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed(cmd.Context(), file, batchSize)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed/customers.yaml", "YAML file with a customers list")
	cmd.Flags().IntVarP(&batchSize, "batch", "b", 100, "Customers per import batch")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func seed(ctx context.Context, file string, batchSize int) error {
	cfg, _, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	batches, err := readBatches(file, batchSize)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", file, err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	svc := &service.CustomerService{
		CustomerRepo: &repository.CustomerRepository{DB: conn},
		Logger:       logger,
	}

	if err := seedBatches(ctx, svc, batches, logger); err != nil {
		return fmt.Errorf("seed %s: %w", file, err)
	}
	logger.Info("database seeding completed", zap.String("file", file), zap.Int("batches", len(batches)))
	return nil
}

// seedBatches drains batches through a worker and fails if any batch did.
func seedBatches(ctx context.Context, importer service.Importer, batches []model.ImportBatch, logger *zap.Logger) error {
	jobChan := make(chan model.ImportBatch, len(batches))
	for _, b := range batches {
		jobChan <- b
	}
	close(jobChan)

	if failed := service.NewWorker(importer, jobChan, logger).Start(ctx); failed > 0 {
		return fmt.Errorf("%d of %d batches failed", failed, len(batches))
	}
	return ctx.Err()
}

// readBatches loads the seed file and splits it into batches of size n.
func readBatches(path string, n int) ([]model.ImportBatch, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed model.ImportBatch
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return chunk(seed.Customers, n), nil
}

func chunk(customers []model.Customer, n int) []model.ImportBatch {
	if n < 1 {
		n = 1
	}
	var out []model.ImportBatch
	for len(customers) > 0 {
		end := min(n, len(customers))
		out = append(out, model.ImportBatch{Customers: customers[:end]})
		customers = customers[end:]
	}
	return out
}

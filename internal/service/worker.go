package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/unclebandit/formatkit/internal/model"
)

// Importer is the part of CustomerService the worker needs.
type Importer interface {
	Import(ctx context.Context, customers []model.Customer) (int, error)
}

// Worker processes import batches
type Worker struct {
	Importer Importer
	JobChan  <-chan model.ImportBatch
	Logger   *zap.Logger
}

// Constructor
func NewWorker(importer Importer, jobChan <-chan model.ImportBatch, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		Importer: importer,
		JobChan:  jobChan,
		Logger:   logger,
	}
}

// Start processes batches until the channel is closed or ctx is done and
// returns how many batches failed. A failed batch is logged and skipped.
func (w *Worker) Start(ctx context.Context) (failed int) {
	for {
		select {
		case <-ctx.Done():
			return failed
		case batch, ok := <-w.JobChan:
			if !ok {
				return failed
			}
			n, err := w.Importer.Import(ctx, batch.Customers)
			if err != nil {
				failed++
				w.Logger.Error("import batch failed", zap.Int("written", n), zap.Error(err))
				continue
			}
			w.Logger.Debug("import batch done", zap.Int("written", n))
		}
	}
}

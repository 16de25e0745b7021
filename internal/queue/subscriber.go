package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/unclebandit/formatkit/internal/model"
)

// Importer stores a batch of customers.
type Importer interface {
	Import(ctx context.Context, customers []model.Customer) (int, error)
}

// StartImportSubscriber wires importer to topic. Payloads that cannot be
// decoded are logged and dropped; import errors are returned so the queue
// retries them.
func StartImportSubscriber(ctx context.Context, q Queue, topic string, importer Importer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	err := q.Subscribe(topic, func(payload any) error {
		batch, err := DecodeBatch(payload)
		if err != nil {
			logger.Warn("invalid import payload", zap.String("topic", topic), zap.Error(err))
			return nil // no retry
		}
		_, err = importer.Import(ctx, batch.Customers)
		return err
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	return nil
}

// DecodeBatch accepts the payload shapes producers publish: an ImportBatch
// (by value or pointer), a bare customer slice, or its JSON encoding.
func DecodeBatch(payload any) (model.ImportBatch, error) {
	switch p := payload.(type) {
	case model.ImportBatch:
		return p, nil
	case *model.ImportBatch:
		if p == nil {
			return model.ImportBatch{}, fmt.Errorf("nil batch")
		}
		return *p, nil
	case []model.Customer:
		return model.ImportBatch{Customers: p}, nil
	case json.RawMessage:
		return decodeBatchJSON(p)
	case []byte:
		return decodeBatchJSON(p)
	}
	return model.ImportBatch{}, fmt.Errorf("unexpected payload type %T", payload)
}

func decodeBatchJSON(data []byte) (model.ImportBatch, error) {
	var batch model.ImportBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return model.ImportBatch{}, fmt.Errorf("decode batch: %w", err)
	}
	return batch, nil
}

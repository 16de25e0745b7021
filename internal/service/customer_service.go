package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/formatkit/internal/errors"
	"github.com/unclebandit/formatkit/internal/model"
	"github.com/unclebandit/formatkit/internal/queue"
	"github.com/unclebandit/formatkit/internal/repository"
)

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Queue        queue.Queue
	ImportTopic  string
	Logger       *zap.Logger
}

func (s *CustomerService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Profiles loads every stored customer and returns them keyed by id.
func (s *CustomerService) Profiles(ctx context.Context) (map[model.CustomerID]model.CustomerProfile, error) {
	customers, err := s.CustomerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return TransformCustomers(customers), nil
}

// Profile returns a single stored customer without its id.
func (s *CustomerService) Profile(ctx context.Context, id model.CustomerID) (model.CustomerProfile, error) {
	c, err := s.CustomerRepo.GetByID(ctx, id)
	if err != nil {
		return model.CustomerProfile{}, fmt.Errorf("get customer %s: %w", id, err)
	}
	if c == nil {
		return model.CustomerProfile{}, appErrors.NewCustomerNotFound(string(id))
	}
	return c.Profile(), nil
}

// QueueImport publishes the batch for asynchronous import.
func (s *CustomerService) QueueImport(customers []model.Customer) error {
	if s.Queue == nil {
		return fmt.Errorf("no queue configured")
	}
	topic := s.ImportTopic
	if topic == "" {
		topic = queue.TopicCustomerImports
	}
	if err := s.Queue.Publish(topic, model.ImportBatch{Customers: customers}); err != nil {
		return fmt.Errorf("publish import: %w", err)
	}
	s.logger().Info("customer import queued", zap.String("topic", topic), zap.Int("customers", len(customers)))
	return nil
}

// Import deduplicates the batch (last write wins) and upserts every
// resulting profile. It returns how many rows were written.
func (s *CustomerService) Import(ctx context.Context, customers []model.Customer) (int, error) {
	profiles := TransformCustomers(customers)
	written := 0
	for _, id := range firstSeenIDs(customers) {
		if err := s.CustomerRepo.Upsert(ctx, id, profiles[id]); err != nil {
			return written, fmt.Errorf("upsert customer %s: %w", id, err)
		}
		written++
	}
	s.logger().Info("customers imported", zap.Int("received", len(customers)), zap.Int("written", written))
	return written, nil
}

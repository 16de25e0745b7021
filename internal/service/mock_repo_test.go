package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/unclebandit/formatkit/internal/model"
)

// MockCustomerRepo stores customers in memory
type MockCustomerRepo struct {
	mu      sync.Mutex
	rows    map[model.CustomerID]model.CustomerProfile
	order   []model.CustomerID
	failAt  int // Upsert call that fails, 1-based; 0 disables
	upserts int
}

func NewMockCustomerRepo(customers ...model.Customer) *MockCustomerRepo {
	r := &MockCustomerRepo{rows: map[model.CustomerID]model.CustomerProfile{}}
	for _, c := range customers {
		_ = r.Upsert(context.Background(), c.ID, c.Profile())
	}
	r.upserts = 0
	return r
}

func (m *MockCustomerRepo) GetByID(_ context.Context, id model.CustomerID) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &model.Customer{ID: id, Name: p.Name, Age: p.Age, IsSubscribed: p.IsSubscribed}, nil
}

func (m *MockCustomerRepo) ListAll(_ context.Context) ([]model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Customer, 0, len(m.order))
	for _, id := range m.order {
		p := m.rows[id]
		out = append(out, model.Customer{ID: id, Name: p.Name, Age: p.Age, IsSubscribed: p.IsSubscribed})
	}
	return out, nil
}

func (m *MockCustomerRepo) Upsert(_ context.Context, id model.CustomerID, p model.CustomerProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	if m.failAt != 0 && m.upserts == m.failAt {
		return errors.New("write failed")
	}
	if _, ok := m.rows[id]; !ok {
		m.order = append(m.order, id)
	}
	m.rows[id] = p
	return nil
}

func (m *MockCustomerRepo) Upserts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upserts
}

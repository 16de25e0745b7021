package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unclebandit/formatkit/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	GetByID(ctx context.Context, id model.CustomerID) (*model.Customer, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
	Upsert(ctx context.Context, id model.CustomerID, p model.CustomerProfile) error
}

// CustomerRepository is the Postgres implementation
type CustomerRepository struct {
	DB *sql.DB
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id model.CustomerID) (*model.Customer, error) {
	query := `
        SELECT id, name, age, is_subscribed
        FROM customers
        WHERE id = $1
    `
	row := r.DB.QueryRowContext(ctx, query, string(id))

	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Age, &c.IsSubscribed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, err
	}
	return &c, nil
}

// ListAll fetches all customers ordered by id
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	query := `
        SELECT id, name, age, is_subscribed
        FROM customers
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Age, &c.IsSubscribed); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Upsert writes a profile under id, replacing any existing row
func (r *CustomerRepository) Upsert(ctx context.Context, id model.CustomerID, p model.CustomerProfile) error {
	query := `
        INSERT INTO customers (id, name, age, is_subscribed)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE
        SET name = EXCLUDED.name, age = EXCLUDED.age, is_subscribed = EXCLUDED.is_subscribed
    `
	_, err := r.DB.ExecContext(ctx, query, string(id), p.Name, p.Age, p.IsSubscribed)
	return err
}

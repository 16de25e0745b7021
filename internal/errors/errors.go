// internal/errors/errors.go
package appErrors

import "fmt"

// ErrInvalidColor is returned when a value is neither #rgb nor #rrggbb.
type ErrInvalidColor struct {
	Color string
}

func (e *ErrInvalidColor) Error() string {
	return fmt.Sprintf("invalid hex color: %s", e.Color)
}

// NewInvalidColor builds an ErrInvalidColor for the offending value.
func NewInvalidColor(color string) error {
	return &ErrInvalidColor{Color: color}
}

// ErrCustomerNotFound reports a lookup for an unknown customer id.
type ErrCustomerNotFound struct {
	CustomerID string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with ID %s not found", e.CustomerID)
}

func NewCustomerNotFound(id string) error {
	return &ErrCustomerNotFound{CustomerID: id}
}

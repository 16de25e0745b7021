// internal/model/customer.go
package model

// Customer is an input record. Its ID is the key of the transformed mapping.
type Customer struct {
	ID           CustomerID `db:"id" json:"id" yaml:"id"`
	Name         string     `db:"name" json:"name" yaml:"name"`
	Age          Age        `db:"age" json:"age" yaml:"age"`
	IsSubscribed bool       `db:"is_subscribed" json:"is_subscribed" yaml:"is_subscribed"`
}

// CustomerProfile is a Customer without its ID.
type CustomerProfile struct {
	Name         string `db:"name" json:"name" yaml:"name"`
	Age          Age    `db:"age" json:"age" yaml:"age"`
	IsSubscribed bool   `db:"is_subscribed" json:"is_subscribed" yaml:"is_subscribed"`
}

// Profile copies the non-key fields of c.
func (c Customer) Profile() CustomerProfile {
	return CustomerProfile{Name: c.Name, Age: c.Age, IsSubscribed: c.IsSubscribed}
}

// ImportBatch is the payload published on the import queue.
type ImportBatch struct {
	Customers []Customer `json:"customers" yaml:"customers"`
}

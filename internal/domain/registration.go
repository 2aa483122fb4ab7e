package domain

import "time"

// Registration types
const (
	TypeCustomer = "customer" // Customer registration
	TypeSupplier = "supplier" // Supplier registration
)

// Registration statuses
const (
	StatusActive  = "active"  // Approved registration
	StatusPending = "pending" // Awaiting review
)

// CustomerSupplier is one customer or supplier signup record
type CustomerSupplier struct {
	ID               string    `json:"id"`                // Unique registration ID
	Name             string    `json:"name"`              // Contact name
	Email            string    `json:"email"`             // Email, unique within its type
	Phone            string    `json:"phone"`             // Phone number
	Company          string    `json:"company,omitempty"` // Optional company name
	Address          string    `json:"address"`           // Postal address
	Type             string    `json:"type"`              // customer or supplier
	RegistrationDate time.Time `json:"registrationDate"`  // When the record was created
	Status           string    `json:"status"`            // active or pending
}

// RegistrationStats aggregates registration counts per type and status
type RegistrationStats struct {
	TotalCustomers   int `json:"totalCustomers"`   // All customers
	TotalSuppliers   int `json:"totalSuppliers"`   // All suppliers
	ActiveCustomers  int `json:"activeCustomers"`  // Customers with status active
	ActiveSuppliers  int `json:"activeSuppliers"`  // Suppliers with status active
	PendingCustomers int `json:"pendingCustomers"` // Customers with status pending
	PendingSuppliers int `json:"pendingSuppliers"` // Suppliers with status pending
}

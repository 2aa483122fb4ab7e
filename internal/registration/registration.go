package registration

import (
	"context" // Context for storage operations
	"regexp"  // Email shape validation
	"strings" // Case folding and trimming
	"time"    // Registration timestamps

	"hardware_store/internal/domain"  // Domain models
	"hardware_store/internal/storage" // Key-value storage abstraction
	"hardware_store/internal/utils"   // ID generation

	"github.com/sirupsen/logrus" // Logging library
)

// Storage keys: customers and suppliers live in independent partitions
const (
	customersKey = "sagar_hardware_customers" // Customer partition
	suppliersKey = "sagar_hardware_suppliers" // Supplier partition
)

// emailRegex validates the rough shape of an email address
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Store manages customer and supplier signup records. Email uniqueness is
// enforced within a partition only; a customer and a supplier may share an
// address.
type Store struct {
	kv storage.Store // Injected key-value storage
}

// NewStore creates a registration store over the given storage backend
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Input carries the caller-supplied fields of a new registration
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	Address string `json:"address"`
	Type    string `json:"type"` // customer or supplier
}

// Update is a partial registration patch; nil fields are left unchanged.
// Type is deliberately not patchable: changing it would strand the record in
// the wrong partition.
type Update struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address *string `json:"address,omitempty"`
	Status  *string `json:"status,omitempty"`
}

// partitionKey maps a registration type to its storage key
func partitionKey(recordType string) string {
	if recordType == domain.TypeSupplier {
		return suppliersKey
	}
	return customersKey
}

// records reads one partition; storage failures degrade to an empty list
func (s *Store) records(ctx context.Context, key string) []domain.CustomerSupplier {
	var recs []domain.CustomerSupplier
	found, err := s.kv.Get(ctx, key, &recs)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to read registrations from storage")
		return nil
	}
	if !found {
		return nil
	}
	return recs
}

// storeRecords persists one partition
func (s *Store) storeRecords(ctx context.Context, key string, recs []domain.CustomerSupplier) {
	if err := s.kv.Set(ctx, key, recs); err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to store registrations")
	}
}

// StoredCustomers returns the customer partition
func (s *Store) StoredCustomers(ctx context.Context) []domain.CustomerSupplier {
	return s.records(ctx, customersKey)
}

// StoredSuppliers returns the supplier partition
func (s *Store) StoredSuppliers(ctx context.Context) []domain.CustomerSupplier {
	return s.records(ctx, suppliersKey)
}

// EmailExists reports whether an email is taken within one type's partition
func (s *Store) EmailExists(ctx context.Context, email, recordType string) bool {
	for _, r := range s.records(ctx, partitionKey(recordType)) {
		if strings.EqualFold(r.Email, email) {
			return true
		}
	}
	return false
}

// Register validates and appends a new customer or supplier record.
// New records always start with status pending.
func (s *Store) Register(ctx context.Context, input Input) (domain.Result, string) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.Fail("Name is required"), ""
	}
	if strings.TrimSpace(input.Email) == "" {
		return domain.Fail("Email is required"), ""
	}
	if strings.TrimSpace(input.Phone) == "" {
		return domain.Fail("Phone number is required"), ""
	}
	if strings.TrimSpace(input.Address) == "" {
		return domain.Fail("Address is required"), ""
	}
	if input.Type != domain.TypeCustomer && input.Type != domain.TypeSupplier {
		return domain.Fail("Registration type must be customer or supplier"), ""
	}
	if !emailRegex.MatchString(input.Email) {
		return domain.Fail("Please enter a valid email address"), ""
	}
	// Uniqueness is scoped to the record's own partition
	if s.EmailExists(ctx, input.Email, input.Type) {
		return domain.Fail("Email already registered as " + input.Type), ""
	}
	record := domain.CustomerSupplier{
		ID:               utils.NewID(""),
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Company:          input.Company,
		Address:          input.Address,
		Type:             input.Type,
		RegistrationDate: time.Now(),
		Status:           domain.StatusPending,
	}
	key := partitionKey(input.Type)
	recs := append(s.records(ctx, key), record)
	s.storeRecords(ctx, key, recs)
	label := "Customer"
	if input.Type == domain.TypeSupplier {
		label = "Supplier"
	}
	return domain.OK(label + " registered successfully"), record.ID
}

// AllRegistrations returns customers followed by suppliers
func (s *Store) AllRegistrations(ctx context.Context) []domain.CustomerSupplier {
	return append(s.StoredCustomers(ctx), s.StoredSuppliers(ctx)...)
}

// ByID returns a registration from either partition, or nil when absent
func (s *Store) ByID(ctx context.Context, id string) *domain.CustomerSupplier {
	key, recs, idx := s.locate(ctx, id)
	if key == "" {
		return nil
	}
	return &recs[idx]
}

// UpdateRegistration patches a record in whichever partition holds it.
// An email change is re-checked for uniqueness within the same type.
func (s *Store) UpdateRegistration(ctx context.Context, id string, patch Update) domain.Result {
	key, recs, idx := s.locate(ctx, id)
	if key == "" {
		return domain.Fail("Record not found")
	}
	record := &recs[idx]
	if patch.Email != nil && !strings.EqualFold(*patch.Email, record.Email) {
		if s.EmailExists(ctx, *patch.Email, record.Type) {
			return domain.Fail("Email already exists")
		}
	}
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Email != nil {
		record.Email = *patch.Email
	}
	if patch.Phone != nil {
		record.Phone = *patch.Phone
	}
	if patch.Company != nil {
		record.Company = *patch.Company
	}
	if patch.Address != nil {
		record.Address = *patch.Address
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	s.storeRecords(ctx, key, recs)
	if record.Type == domain.TypeSupplier {
		return domain.OK("Supplier updated successfully")
	}
	return domain.OK("Customer updated successfully")
}

// Delete removes a record from whichever partition holds it
func (s *Store) Delete(ctx context.Context, id string) domain.Result {
	key, recs, idx := s.locate(ctx, id)
	if key == "" {
		return domain.Fail("Record not found")
	}
	deleted := recs[idx]
	recs = append(recs[:idx], recs[idx+1:]...)
	s.storeRecords(ctx, key, recs)
	if deleted.Type == domain.TypeSupplier {
		return domain.OK("Supplier deleted successfully")
	}
	return domain.OK("Customer deleted successfully")
}

// UpdateStatus sets a record's status; a thin wrapper over UpdateRegistration
func (s *Store) UpdateStatus(ctx context.Context, id, status string) domain.Result {
	if status != domain.StatusActive && status != domain.StatusPending {
		return domain.Fail("Status must be active or pending")
	}
	return s.UpdateRegistration(ctx, id, Update{Status: &status})
}

// Stats aggregates registration counts per type and status
func (s *Store) Stats(ctx context.Context) domain.RegistrationStats {
	customers := s.StoredCustomers(ctx)
	suppliers := s.StoredSuppliers(ctx)
	stats := domain.RegistrationStats{
		TotalCustomers: len(customers),
		TotalSuppliers: len(suppliers),
	}
	for _, c := range customers {
		switch c.Status {
		case domain.StatusActive:
			stats.ActiveCustomers++
		case domain.StatusPending:
			stats.PendingCustomers++
		}
	}
	for _, sup := range suppliers {
		switch sup.Status {
		case domain.StatusActive:
			stats.ActiveSuppliers++
		case domain.StatusPending:
			stats.PendingSuppliers++
		}
	}
	return stats
}

// Search matches registrations against name, email, company and address
// case-insensitively; phone is compared as a raw substring. An empty type
// searches the union of both partitions.
func (s *Store) Search(ctx context.Context, query, recordType string) []domain.CustomerSupplier {
	var recs []domain.CustomerSupplier
	if recordType != domain.TypeSupplier {
		recs = append(recs, s.StoredCustomers(ctx)...)
	}
	if recordType != domain.TypeCustomer {
		recs = append(recs, s.StoredSuppliers(ctx)...)
	}
	if strings.TrimSpace(query) == "" {
		return recs
	}
	term := strings.ToLower(query)
	var matched []domain.CustomerSupplier
	for _, r := range recs {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Email), term) ||
			strings.Contains(r.Phone, query) ||
			strings.Contains(strings.ToLower(r.Company), term) ||
			strings.Contains(strings.ToLower(r.Address), term) {
			matched = append(matched, r)
		}
	}
	return matched
}

// locate finds a record by ID, searching the customer partition first.
// It returns the partition key, the partition's records and the index, or
// an empty key when the ID is unknown.
func (s *Store) locate(ctx context.Context, id string) (string, []domain.CustomerSupplier, int) {
	for _, key := range []string{customersKey, suppliersKey} {
		recs := s.records(ctx, key)
		for i, r := range recs {
			if r.ID == id {
				return key, recs, i
			}
		}
	}
	return "", nil, -1
}

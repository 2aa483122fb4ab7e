package storage

import (
	"context"       // Context for database operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error matching

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// KVEntry is the single table backing the MySQL storage backend:
// one row per collection key, the serialized collection as the value.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:191"` // Collection key
	Value []byte // JSON-serialized collection
}

// TableName keeps the table name stable across GORM naming strategies
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormStore persists collections in a MySQL key-value table
type GormStore struct {
	db *gorm.DB // Underlying GORM handle
}

// NewGormStore wraps an existing GORM handle
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// OpenMySQL connects to MySQL and migrates the key-value table
func OpenMySQL(dsn string) (*GormStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		return nil, err
	}
	// AutoMigrate creates the kv table and its primary key if missing
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, err
	}
	logrus.Info("MySQL key-value storage ready")
	return NewGormStore(db), nil
}

// Get reads the row under key and unmarshals its value into dest
func (s *GormStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "`key` = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other database error
	}
	return true, json.Unmarshal(entry.Value, dest)
}

// Set marshals value and upserts the row under key
func (s *GormStore) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	entry := KVEntry{Key: key, Value: b}
	return s.db.WithContext(ctx).Save(&entry).Error // Insert or update by primary key
}

// Delete removes the row under key
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVEntry{}, "`key` = ?", key).Error
}

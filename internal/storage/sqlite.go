// internal/storage/sqlite.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is a persisted key/value row
type Record struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Payload   []byte    `gorm:"not null" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Record) TableName() string {
	return "storage_records"
}

// SQLiteStore persists snapshots in a local SQLite database, for installs
// where a single database file beats a directory of JSON files.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (creating if needed) the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load reads the value stored for key
func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var record Record
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return record.Payload, nil
}

// Save writes the value for key
func (s *SQLiteStore) Save(ctx context.Context, key string, data []byte) error {
	record := Record{
		Key:       key,
		Payload:   data,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored for key
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&Record{}).Error
}

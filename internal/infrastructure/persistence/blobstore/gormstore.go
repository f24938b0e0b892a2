package blobstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// blobRecord is the single-table schema backing the sqlite store
type blobRecord struct {
	Key       string `gorm:"primaryKey;size:128"`
	Data      []byte
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (blobRecord) TableName() string {
	return "blobs"
}

// GormStore keeps blobs in a sqlite database, one row per key
type GormStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (and migrates) the sqlite-backed store
func NewSQLiteStore(path string) (*GormStore, error) {
	if path == "" {
		path = "queijaria.db"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&blobRecord{}); err != nil {
		return nil, fmt.Errorf("migrating blobs table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Get reads the blob stored under key
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var rec blobRecord
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return rec.Data, nil
}

// Put upserts the blob under key
func (s *GormStore) Put(ctx context.Context, key string, data []byte) error {
	rec := blobRecord{Key: key, Data: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	return nil
}

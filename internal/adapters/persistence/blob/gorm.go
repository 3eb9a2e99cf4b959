package blob

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob represents the blobs table: one row per collection key
type Blob struct {
	Key   string `gorm:"primaryKey;size:64;column:blob_key"`
	Value []byte `gorm:"type:longblob;not null"`
}

func (Blob) TableName() string {
	return "blobs"
}

// gormStore persists each key as one row in MySQL
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed store, migrating the blobs table
func NewGormStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row Blob
	err := s.db.WithContext(ctx).Where("blob_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	row := Blob{Key: key, Value: value}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&row).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("blob_key = ?", key).Delete(&Blob{}).Error
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

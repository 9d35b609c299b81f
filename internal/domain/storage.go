package domain

import (
	"time"

	"gorm.io/gorm"
)

// StorageEntry struct - One persisted key-value pair, scoped by namespace
type StorageEntry struct {
	Namespace string    `gorm:"type:varchar(100);primaryKey"`
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"type:timestamp"`
}

// TableName func
func (e *StorageEntry) TableName() string {
	return "storage_entries"
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return ErrBackendUnavailable
	}
	return db.AutoMigrate(&StorageEntry{})
}

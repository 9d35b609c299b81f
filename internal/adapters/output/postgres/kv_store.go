package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"
	"storefront/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check to ensure KVStore implements PersistentStore interface
var _ output.PersistentStore = (*KVStore)(nil)

// KVStore struct - Secondary/Driven adapter storing key-value pairs in PostgreSQL
type KVStore struct {
	dbGorm    *gorm.DB
	namespace string
}

// NewKVStore func - Creates the store and migrates its table
func NewKVStore(dbGorm *gorm.DB, namespace string) (*KVStore, error) {
	logrus.Info("Migrate storage table ...")
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		return nil, fmt.Errorf("failed to migrate storage table: %w", err)
	}
	return &KVStore{
		dbGorm:    dbGorm,
		namespace: namespace,
	}, nil
}

// Get func - Reads one key
func (p *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry domain.StorageEntry
	err := p.dbGorm.WithContext(ctx).
		Where(p.condition(key)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set func - Upserts one key
func (p *KVStore) Set(ctx context.Context, key, value string) error {
	entry := domain.StorageEntry{
		Namespace: p.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := p.dbGorm.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// Delete func - Removes one key; missing keys are not an error
func (p *KVStore) Delete(ctx context.Context, key string) error {
	var entry domain.StorageEntry
	err := p.dbGorm.WithContext(ctx).
		Table(entry.TableName()).
		Where(p.condition(key)).
		Delete(&domain.StorageEntry{}).Error
	if err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

func (p *KVStore) condition(key string) map[string]interface{} {
	return map[string]interface{}{
		"namespace": p.namespace,
		"key":       key,
	}
}

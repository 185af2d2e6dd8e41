package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zamtimber/shop/internal/models"
)

// GormSlot stores slot values as rows of the cart_records table, one row
// per key, upserted on every save.
type GormSlot struct {
	DB *gorm.DB
}

func NewGormSlot(db *gorm.DB) (*GormSlot, error) {
	if err := db.AutoMigrate(&models.CartRecord{}); err != nil {
		return nil, err
	}
	return &GormSlot{DB: db}, nil
}

func (s *GormSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var rec models.CartRecord
	if err := s.DB.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec.Value, nil
}

func (s *GormSlot) Save(ctx context.Context, key string, value []byte) error {
	rec := models.CartRecord{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rec).Error
}

func (s *GormSlot) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Delete(&models.CartRecord{}, "key = ?", key).Error
}

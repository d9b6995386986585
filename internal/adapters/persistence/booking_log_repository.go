package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harborlane/freightflow-go/internal/application/common"
)

// GormBookingLogRepository is a GORM-based booking log
type GormBookingLogRepository struct {
	db *gorm.DB
}

// NewGormBookingLogRepository creates a new booking log repository
func NewGormBookingLogRepository(db *gorm.DB) *GormBookingLogRepository {
	return &GormBookingLogRepository{db: db}
}

// Append records one confirmed booking. A missing ID is filled in here so
// callers are free to leave entry identity to the storage layer.
func (r *GormBookingLogRepository) Append(ctx context.Context, entry *common.BookingLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	model := &BookingLogModel{
		ID:          entry.ID,
		QuoteID:     entry.QuoteID,
		Origin:      entry.Origin,
		Destination: entry.Destination,
		CarrierName: entry.CarrierName,
		Price:       entry.Price,
		Currency:    entry.Currency,
		BookingRef:  entry.BookingRef,
		CreatedAt:   entry.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append booking log entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first
func (r *GormBookingLogRepository) List(ctx context.Context, limit int) ([]*common.BookingLogEntry, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []BookingLogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list booking log entries: %w", err)
	}

	entries := make([]*common.BookingLogEntry, len(models))
	for i, m := range models {
		entries[i] = &common.BookingLogEntry{
			ID:          m.ID,
			QuoteID:     m.QuoteID,
			Origin:      m.Origin,
			Destination: m.Destination,
			CarrierName: m.CarrierName,
			Price:       m.Price,
			Currency:    m.Currency,
			BookingRef:  m.BookingRef,
			CreatedAt:   m.CreatedAt,
		}
	}
	return entries, nil
}

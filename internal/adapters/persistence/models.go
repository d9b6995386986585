package persistence

import "time"

// BookingLogModel represents the booking_log table. One row per confirmed
// booking; the backend remains the system of record.
type BookingLogModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	QuoteID     string    `gorm:"column:quote_id;not null"`
	Origin      string    `gorm:"column:origin;not null"`
	Destination string    `gorm:"column:destination;not null"`
	CarrierName string    `gorm:"column:carrier_name;not null"`
	Price       float64   `gorm:"column:price;not null"`
	Currency    string    `gorm:"column:currency;not null"`
	BookingRef  string    `gorm:"column:booking_ref;not null;uniqueIndex"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (BookingLogModel) TableName() string {
	return "booking_log"
}

package models

import "time"

type Reservation struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	TableID uint  `gorm:"not null;uniqueIndex:idx_table_event_time" json:"table_id"`
	Table   Table `gorm:"foreignKey:TableID" json:"table"`
	// GuestName disimpan sudah di-trim.
	GuestName string `gorm:"type:varchar(255);not null" json:"guest_name"`
	PartySize int    `gorm:"not null" json:"party_size"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`
	// Unique index (table_id, event_time) adalah pagar kedua terhadap
	// double-booking; pengecekan di service hanya first line of defense.
	EventTime time.Time `gorm:"not null;uniqueIndex:idx_table_event_time" json:"event_time"`
	Status    string    `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

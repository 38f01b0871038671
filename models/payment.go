package models

import (
	"time"
)

// Payment mencatat pembayaran order. Jumlah yang dibayar tidak direkonsiliasi
// terhadap total item di sini; itu urusan modul billing terpisah.
type Payment struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	OrderID uint      `json:"order_id" gorm:"not null;index"`
	Order   Order     `json:"-" gorm:"foreignKey:OrderID"`
	Method  string    `json:"method" gorm:"type:varchar(50);not null"`
	Amount  float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Tip     float64   `json:"tip" gorm:"type:decimal(10,2);default:0"`
	Note    string    `json:"note" gorm:"type:text"`
	PaidAt  time.Time `json:"paid_at" gorm:"not null"`
}

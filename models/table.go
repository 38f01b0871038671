package models

import "time"

type Table struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"label"`
	Seats     int       `gorm:"not null" json:"seats"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
